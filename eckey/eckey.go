// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eckey

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/inboxd/fault"
)

// sizes of the secp256k1 items carried in slots
const (
	PublicKeyLength  = 33
	SignatureLength  = 65
	DigestLength     = 32
	recoveryIDOffset = 64
	maximumRecoverID = 3

	// SignCompact header: 27 + recovery id + 4 for compressed keys
	compactHeaderBase = 27
	compactCompressed = 4
)

// Parse - decode a compressed public key, which must be on the curve
func Parse(buffer []byte) (*btcec.PublicKey, error) {
	if PublicKeyLength != len(buffer) {
		return nil, fault.InvalidKey
	}
	if 0x02 != buffer[0] && 0x03 != buffer[0] {
		return nil, fault.InvalidKey
	}
	key, err := btcec.ParsePubKey(buffer, btcec.S256())
	if nil != err {
		return nil, fault.InvalidKey
	}
	return key, nil
}

// Validate - check a compressed key without keeping the result
func Validate(buffer []byte) error {
	_, err := Parse(buffer)
	return err
}

// Recover - the compressed public key that produced a signature
//
// the signature is R ‖ S ‖ recovery id
func Recover(digest []byte, signature []byte) ([]byte, error) {
	if SignatureLength != len(signature) || DigestLength != len(digest) {
		return nil, fault.MalformedSignature
	}
	recoveryID := signature[recoveryIDOffset]
	if recoveryID > maximumRecoverID {
		return nil, fault.MalformedSignature
	}

	compact := make([]byte, 0, SignatureLength)
	compact = append(compact, compactHeaderBase+compactCompressed+recoveryID)
	compact = append(compact, signature[:recoveryIDOffset]...)

	key, _, err := btcec.RecoverCompact(btcec.S256(), compact, digest)
	if nil != err {
		return nil, fault.SignatureInvalid
	}
	return key.SerializeCompressed(), nil
}

// Verify - recover the signer and compare with the claimed key
func Verify(digest []byte, signature []byte, claimed []byte) error {
	if err := Validate(claimed); nil != err {
		return err
	}
	recovered, err := Recover(digest, signature)
	if nil != err {
		return err
	}
	if !bytes.Equal(recovered, claimed) {
		return fault.SignatureInvalid
	}
	return nil
}

// Keccak256 - legacy keccak digest of the concatenated items
func Keccak256(items ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, item := range items {
		h.Write(item)
	}
	return h.Sum(nil)
}
