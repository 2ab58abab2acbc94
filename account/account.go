// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/inboxd/fault"
)

// Account - a host identity, the ed25519 public key that signs
// transactions and identity bindings
type Account struct {
	PublicKey ed25519.PublicKey
}

// FromBase58 - this converts a Base58 encoded string and returns an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(decoded) {
		return nil, fault.CannotDecodeAccount
	}
	return FromBytes(decoded)
}

// FromBytes - create an account from the raw public key bytes
func FromBytes(accountBytes []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(accountBytes) {
		return nil, fault.InvalidKeyLength
	}
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, accountBytes)
	return &Account{
		PublicKey: publicKey,
	}, nil
}

// Bytes - fetch the public key as byte slice
func (account *Account) Bytes() []byte {
	return account.PublicKey[:]
}

// IsZero - true for the all zero key, which is never a valid signer
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// CheckSignature - check the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.InvalidKeyLength
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.Unauthorized
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.Unauthorized
	}
	return nil
}

// String - base58 encoding of the public key
func (account *Account) String() string {
	return base58.Encode(account.PublicKey)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	account.PublicKey = a.PublicKey
	return nil
}
