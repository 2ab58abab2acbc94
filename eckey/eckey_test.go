// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eckey_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/fault"
)

const generatorCompressed = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestKeccak256(t *testing.T) {
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(eckey.Keccak256()), "empty input")
	assert.Equal(t, eckey.Keccak256([]byte("ZKLAccount:abc")),
		eckey.Keccak256([]byte("ZKLAccount:"), []byte("abc")), "concatenation")
}

func TestParse(t *testing.T) {
	g := decodeHex(generatorCompressed)
	_, err := eckey.Parse(g)
	assert.NoError(t, err, "generator")

	notOnCurve := make([]byte, 33)
	notOnCurve[0] = 0x02
	notOnCurve[32] = 0x05
	assert.Equal(t, fault.InvalidKey, eckey.Validate(notOnCurve), "x = 5 is not on the curve")

	zero := make([]byte, 33)
	assert.Equal(t, fault.InvalidKey, eckey.Validate(zero), "zero key")

	wrongPrefix := append([]byte{}, g...)
	wrongPrefix[0] = 0x04
	assert.Equal(t, fault.InvalidKey, eckey.Validate(wrongPrefix), "uncompressed prefix")

	assert.Equal(t, fault.InvalidKey, eckey.Validate(g[:32]), "short")
}

func TestPrivateKeyOne(t *testing.T) {
	scalar := make([]byte, 32)
	scalar[31] = 1
	key, err := eckey.PrivateKeyFromBytes(scalar)
	require.NoError(t, err, "from bytes")
	assert.Equal(t, generatorCompressed, hex.EncodeToString(key.PublicKey()), "1·G")
	assert.Equal(t, scalar, key.Bytes(), "round trip")

	_, err = eckey.PrivateKeyFromBytes(scalar[1:])
	assert.Equal(t, fault.InvalidKeyLength, err, "short scalar")
}

func TestSignRecover(t *testing.T) {
	key, err := eckey.NewPrivateKey()
	require.NoError(t, err, "generate")

	digest := eckey.Keccak256([]byte("ZKLInbox:message"))
	signature, err := key.Sign(digest)
	require.NoError(t, err, "sign")
	require.Len(t, signature, eckey.SignatureLength, "signature length")
	assert.True(t, signature[64] <= 3, "recovery id range")

	recovered, err := eckey.Recover(digest, signature)
	require.NoError(t, err, "recover")
	assert.Equal(t, key.PublicKey(), recovered, "recovered key")
	assert.NoError(t, eckey.Verify(digest, signature, key.PublicKey()), "verify")
}

func TestVerifyRejectsBitFlip(t *testing.T) {
	key, err := eckey.NewPrivateKey()
	require.NoError(t, err, "generate")

	message := []byte("ZKLAccount:address")
	signature, err := key.Sign(eckey.Keccak256(message))
	require.NoError(t, err, "sign")

	flipped := append([]byte{}, message...)
	flipped[3] ^= 0x01
	err = eckey.Verify(eckey.Keccak256(flipped), signature, key.PublicKey())
	assert.Error(t, err, "flipped message must not verify")
	assert.True(t, fault.SignatureInvalid == err || fault.MalformedSignature == err, "error kind: %v", err)

	other, err := eckey.NewPrivateKey()
	require.NoError(t, err, "generate other")
	assert.Equal(t, fault.SignatureInvalid, eckey.Verify(eckey.Keccak256(message), signature, other.PublicKey()), "other claimed key")
}

func TestMalformedSignature(t *testing.T) {
	key, err := eckey.NewPrivateKey()
	require.NoError(t, err, "generate")

	digest := eckey.Keccak256([]byte("x"))
	signature, err := key.Sign(digest)
	require.NoError(t, err, "sign")

	_, err = eckey.Recover(digest, signature[:64])
	assert.Equal(t, fault.MalformedSignature, err, "missing recovery id")

	bad := append([]byte{}, signature...)
	bad[64] = 4
	_, err = eckey.Recover(digest, bad)
	assert.Equal(t, fault.MalformedSignature, err, "recovery id out of range")

	_, err = eckey.Recover(digest[:31], signature)
	assert.Equal(t, fault.MalformedSignature, err, "short digest")
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}
