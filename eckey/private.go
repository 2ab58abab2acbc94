// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eckey

import (
	"github.com/btcsuite/btcd/btcec"

	"github.com/bitmark-inc/inboxd/fault"
)

const privateKeyLength = 32

// PrivateKey - secp256k1 signing key held by a client
type PrivateKey struct {
	key *btcec.PrivateKey
}

// NewPrivateKey - generate a fresh random key
func NewPrivateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - restore from the 32 byte scalar
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	if privateKeyLength != len(buffer) {
		return nil, fault.InvalidKeyLength
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), buffer)
	return &PrivateKey{key: key}, nil
}

// PublicKey - compressed 33 byte form
func (privateKey *PrivateKey) PublicKey() []byte {
	return privateKey.key.PubKey().SerializeCompressed()
}

// Bytes - the 32 byte scalar, zero padded
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.key.Serialize()
}

// Sign - deterministic recoverable signature: R ‖ S ‖ recovery id
func (privateKey *PrivateKey) Sign(digest []byte) ([]byte, error) {
	if DigestLength != len(digest) {
		return nil, fault.MalformedSignature
	}
	compact, err := btcec.SignCompact(btcec.S256(), privateKey.key, digest, true)
	if nil != err {
		return nil, err
	}
	signature := make([]byte, SignatureLength)
	copy(signature, compact[1:])
	signature[recoveryIDOffset] = compact[0] - compactHeaderBase - compactCompressed
	return signature, nil
}
