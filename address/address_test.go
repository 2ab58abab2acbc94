// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
)

func testProgram() address.Address {
	var program address.Address
	for i := range program {
		program[i] = byte(i)
	}
	return program
}

func testOwner() []byte {
	owner := make([]byte, 33)
	owner[0] = 0x02
	for i := 1; i < len(owner); i += 1 {
		owner[i] = byte(i)
	}
	return owner
}

func TestDeriveKnownValue(t *testing.T) {
	a := address.Derive(testProgram(), address.InboxTag, testOwner(), 0)
	assert.Equal(t, "9mbrPdJrksy8CN1mQySFF6dV1XUTqJFd4G3APoTB3T2c", a.String(), "index 0")

	b := address.Derive(testProgram(), address.InboxTag, testOwner(), 1)
	assert.Equal(t, "Bh8FzNBPyUQ9DxwaDrKsMXUVBZ8DyJ37dbcXkEAj61Ag", b.String(), "index 1")
}

func TestDerivePure(t *testing.T) {
	a := address.Derive(testProgram(), address.InboxTag, testOwner(), 7)
	b := address.Derive(testProgram(), address.InboxTag, testOwner(), 7)
	assert.Equal(t, a, b, "same inputs same address")
	assert.NoError(t, address.Check(a, b), "check")
}

func TestDeriveSensitivity(t *testing.T) {
	base := address.Derive(testProgram(), address.InboxTag, testOwner(), 0)

	assert.NotEqual(t, base, address.Derive(testProgram(), address.InboxTag, testOwner(), 1), "disambiguator")
	assert.NotEqual(t, base, address.Derive(testProgram(), address.AccountTag, testOwner(), 0), "domain tag")

	otherProgram := testProgram()
	otherProgram[31] ^= 1
	assert.NotEqual(t, base, address.Derive(otherProgram, address.InboxTag, testOwner(), 0), "program")

	otherOwner := testOwner()
	otherOwner[32] ^= 1
	assert.NotEqual(t, base, address.Derive(testProgram(), address.InboxTag, otherOwner, 0), "owner")
}

func TestSeeds(t *testing.T) {
	seeds := address.Seeds(address.AccountTag, []byte{9, 9}, 0x01020304)
	require.Len(t, seeds, 3, "seed count")
	assert.Equal(t, []byte("zkl_account"), seeds[0], "tag")
	assert.Equal(t, []byte{9, 9}, seeds[1], "owner")
	assert.Equal(t, []byte{4, 3, 2, 1}, seeds[2], "little endian index")
}

func TestCheckMismatch(t *testing.T) {
	a := address.Derive(testProgram(), address.InboxTag, testOwner(), 0)
	b := a
	b[0] ^= 0x80
	err := address.Check(b, a)
	assert.Equal(t, fault.CodeAddressMismatch, fault.Code(err), "one bit differs")
}

func TestBase58(t *testing.T) {
	program := testProgram()
	assert.Equal(t, "1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE", program.String(), "encode")

	decoded, err := address.FromBase58(program.String())
	require.NoError(t, err, "decode")
	assert.Equal(t, program, decoded, "round trip")

	_, err = address.FromBase58("1thX6LZfHDZZKUs92")
	assert.Equal(t, fault.CannotDecodeAddress, err, "short")

	_, err = address.FromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodeAddress, err, "bad characters")

	assert.True(t, address.System.IsSystem(), "system")
	assert.False(t, program.IsSystem(), "not system")
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		Address address.Address `json:"address"`
	}
	in := wrapper{Address: testProgram()}
	buffer, err := json.Marshal(in)
	require.NoError(t, err, "marshal")
	assert.Equal(t, `{"address":"1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE"}`, string(buffer))

	var out wrapper
	require.NoError(t, json.Unmarshal(buffer, &out), "unmarshal")
	assert.Equal(t, in, out, "round trip")
}
