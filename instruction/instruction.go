// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/inboxd/record"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the instruction types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as an instruction
	NullTag = TagType(iota)

	InitialiseInboxTag = TagType(iota) // create an inbox slot
	AppendRecordTag    = TagType(iota) // add one record
	ReadInboxTag       = TagType(iota) // ordered read, no mutation
	BindIdentityTag    = TagType(iota) // bind an EC identity to a host account

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed instructions are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Tag() TagType
	Pack() (Packed, error)
}

// byte limits for the variable fields
const (
	maxIdentityLength  = 64
	maxPayloadLength   = 4096
	maxSignatureLength = 128
)

// InitialiseInbox - create the inbox for owner at disambiguator
type InitialiseInbox struct {
	OwnerIdentity []byte `json:"ownerIdentity"`
	Disambiguator uint32 `json:"disambiguator"`
}

// AppendRecord - append one record to the inbox of owner
//
// owner and disambiguator let the processor recompute the slot address
type AppendRecord struct {
	OwnerIdentity []byte        `json:"ownerIdentity"`
	Disambiguator uint32        `json:"disambiguator"`
	Record        record.Record `json:"record"`
}

// ReadInbox - return the records sorted by timestamp
type ReadInbox struct {
	OwnerIdentity []byte `json:"ownerIdentity"`
	Disambiguator uint32 `json:"disambiguator"`
}

// BindIdentity - one time binding of an EC identity to the signer
type BindIdentity struct {
	ECIdentity    []byte `json:"ecIdentity"`
	ECSignature   []byte `json:"ecSignature"`
	HostSignature []byte `json:"hostSignature"`
	SequenceIndex uint32 `json:"sequenceIndex"`
}

// Tag - the type code of each variant
func (*InitialiseInbox) Tag() TagType { return InitialiseInboxTag }
func (*AppendRecord) Tag() TagType    { return AppendRecordTag }
func (*ReadInbox) Tag() TagType       { return ReadInboxTag }
func (*BindIdentity) Tag() TagType    { return BindIdentityTag }

// String - name of the tag for logging
func (tag TagType) String() string {
	switch tag {
	case InitialiseInboxTag:
		return "InitialiseInbox"
	case AppendRecordTag:
		return "AppendRecord"
	case ReadInboxTag:
		return "ReadInbox"
	case BindIdentityTag:
		return "BindIdentity"
	default:
		return "Invalid"
	}
}
