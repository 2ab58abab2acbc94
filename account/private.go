// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/inboxd/fault"
)

// PrivateKey - signing half of a host identity
type PrivateKey struct {
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh random key
func NewPrivateKey() (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyFromBytes - accepts either a 32 byte seed or a 64 byte key
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	switch len(buffer) {
	case ed25519.SeedSize:
		return &PrivateKey{
			PrivateKey: ed25519.NewKeyFromSeed(buffer),
		}, nil
	case ed25519.PrivateKeySize:
		privateKey := make([]byte, ed25519.PrivateKeySize)
		copy(privateKey, buffer)
		return &PrivateKey{
			PrivateKey: privateKey,
		}, nil
	default:
		return nil, fault.InvalidKeyLength
	}
}

// Account - the public identity for this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := privateKey.PrivateKey.Public().(ed25519.PublicKey)
	return &Account{
		PublicKey: publicKey,
	}
}

// Sign - ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - the full 64 byte private key
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.PrivateKey[:]
}

// String - hex form, only used by the client key file
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.PrivateKey)
}
