// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package encrypt - password protection for the client key file
//
// the password is stretched with argon2i into a 256 bit key which
// seals the data with AES-256-GCM; the result is stored as
// "hex(iv):hex(ciphertext)"
package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"

	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/inboxd/fault"
)

const (
	keySize       = 32
	separator     = ":"
	maxDataLength = 16384
)

// HashPassword - derive a key with a fresh salt
func HashPassword(password string) (*Salt, []byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	key, err := GenerateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}

	return salt, key, nil
}

// GenerateKey - argon2i hash of the password
func GenerateKey(password string, salt *Salt) ([]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     keySize,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	return argon2.Hash(ctx, []byte(password), salt.Bytes())
}

// Encrypt - seal data and convert to "iv:ciphertext" hex
func Encrypt(plaintext []byte, key []byte) (string, error) {

	l := len(plaintext)
	if 0 == l || l >= maxDataLength {
		return "", fault.CryptoFailed
	}

	gcm, err := newGCM(key)
	if nil != err {
		return "", err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); nil != err {
		return "", fault.CryptoFailed
	}

	ciphertext := gcm.Seal(nil, iv, plaintext, nil)

	return hex.EncodeToString(iv) + separator + hex.EncodeToString(ciphertext), nil
}

// Decrypt - open "iv:ciphertext" hex
//
// an authentication failure means the key, and so the password, is wrong
func Decrypt(data string, key []byte) ([]byte, error) {

	parts := strings.Split(data, separator)
	if 2 != len(parts) {
		return nil, fault.CryptoFailed
	}

	iv, err := hex.DecodeString(parts[0])
	if nil != err {
		return nil, err
	}
	ciphertext, err := hex.DecodeString(parts[1])
	if nil != err {
		return nil, err
	}

	gcm, err := newGCM(key)
	if nil != err {
		return nil, err
	}
	if gcm.NonceSize() != len(iv) {
		return nil, fault.CryptoFailed
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if nil != err {
		return nil, fault.WrongPassword
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if keySize != len(key) {
		return nil, fault.InvalidKeyLength
	}
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}
	return cipher.NewGCM(block)
}
