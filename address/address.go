// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/inboxd/fault"
)

// Length - bytes in a storage address
const Length = 32

// domain tags separating the address spaces
const (
	InboxTag   = "inbox"
	AccountTag = "zkl_account"
)

// appended after the program id so a derived address can never be
// produced by hashing a plain public key
const derivationMarker = "ProgramDerivedAddress"

// Address - a storage address or program id
type Address [Length]byte

// System - handle of the host's system allocator
var System = Address{}

// Derive - compute the storage address of a slot
//
// sha3-256(tag ‖ owner ‖ LE32(disambiguator) ‖ program ‖ marker)
func Derive(program Address, tag string, owner []byte, disambiguator uint32) Address {
	h := sha3.New256()
	for _, seed := range Seeds(tag, owner, disambiguator) {
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write([]byte(derivationMarker))

	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

// Seeds - the seed list handed to the system allocator
func Seeds(tag string, owner []byte, disambiguator uint32) [][]byte {
	index := make([]byte, 4)
	binary.LittleEndian.PutUint32(index, disambiguator)
	return [][]byte{
		[]byte(tag),
		owner,
		index,
	}
}

// Check - the presented address must equal the derived one
func Check(presented Address, expected Address) error {
	if presented != expected {
		return fault.Wrapf(fault.AddressMismatch, "presented: %s  expected: %s", presented, expected)
	}
	return nil
}

// FromBytes - copy a 32 byte buffer into an address
func FromBytes(buffer []byte) (Address, error) {
	var a Address
	if Length != len(buffer) {
		return a, fault.CannotDecodeAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the printable form
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.CannotDecodeAddress
	}
	return FromBytes(buffer)
}

// IsSystem - true for the system allocator handle
func (a Address) IsSystem() bool {
	return System == a
}

// String - base58 form
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - base58 for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - base58 from JSON
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
