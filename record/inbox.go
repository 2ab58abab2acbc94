// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/inboxd/fault"
)

// State - inbox lifecycle
type State byte

// inbox states
const (
	Uninitialised State = 0
	Active        State = 1
)

// header offsets
const (
	stateOffset         = 0
	ownerIdentityOffset = 1
	ownerAccountOffset  = ownerIdentityOffset + IdentityLength
	disambiguatorOffset = ownerAccountOffset + AccountLength
	nextIndexOffset     = disambiguatorOffset + 4
	countOffset         = nextIndexOffset + 4
)

// Inbox - decoded inbox slot
type Inbox struct {
	Layout        Layout
	State         State
	OwnerIdentity []byte
	OwnerAccount  []byte
	Disambiguator uint32
	NextIndex     uint32
	Records       []Record
}

// UnpackInbox - decode a slot, the length must equal the layout size
func (layout Layout) UnpackInbox(buffer []byte) (*Inbox, error) {
	if layout.Size() != len(buffer) {
		return nil, fault.Wrapf(fault.InvalidLayout, "slot length: %d  expected: %d", len(buffer), layout.Size())
	}

	state := State(buffer[stateOffset])
	if Uninitialised != state && Active != state {
		return nil, fault.Wrapf(fault.InvalidLayout, "state: %d", state)
	}

	count := binary.LittleEndian.Uint32(buffer[countOffset:])
	if count > uint32(layout.Capacity) {
		return nil, fault.Wrapf(fault.InvalidLayout, "record count: %d  capacity: %d", count, layout.Capacity)
	}
	if Uninitialised == state && 0 != count {
		return nil, fault.Wrapf(fault.InvalidLayout, "uninitialised slot holds %d records", count)
	}
	if Uninitialised == state && !isZero(buffer[ownerIdentityOffset:HeaderLength]) {
		return nil, fault.Wrapf(fault.InvalidLayout, "uninitialised slot has a non-zero header")
	}
	if !isZero(buffer[HeaderLength+int(count)*RecordLength:]) {
		return nil, fault.Wrapf(fault.InvalidLayout, "non-zero bytes after record: %d", count)
	}

	inbox := &Inbox{
		Layout:        layout,
		State:         state,
		OwnerIdentity: cloneBytes(buffer[ownerIdentityOffset : ownerIdentityOffset+IdentityLength]),
		OwnerAccount:  cloneBytes(buffer[ownerAccountOffset : ownerAccountOffset+AccountLength]),
		Disambiguator: binary.LittleEndian.Uint32(buffer[disambiguatorOffset:]),
		NextIndex:     binary.LittleEndian.Uint32(buffer[nextIndexOffset:]),
		Records:       make([]Record, 0, count),
	}

	for i := 0; i < int(count); i += 1 {
		start := HeaderLength + i*RecordLength
		r, err := unpackRecord(buffer[start : start+RecordLength])
		if nil != err {
			return nil, err
		}
		inbox.Records = append(inbox.Records, r)
	}
	return inbox, nil
}

// Pack - encode to exactly Layout.Size() bytes
func (inbox *Inbox) Pack() ([]byte, error) {
	layout := inbox.Layout
	if 0 == layout.Capacity {
		return nil, fault.InvalidLayout
	}
	if len(inbox.Records) > layout.Capacity {
		return nil, fault.InboxFull
	}
	if Uninitialised != inbox.State && Active != inbox.State {
		return nil, fault.InvalidLayout
	}

	buffer := make([]byte, layout.Size())
	buffer[stateOffset] = byte(inbox.State)

	if Active == inbox.State {
		if IdentityLength != len(inbox.OwnerIdentity) {
			return nil, fault.InvalidKey
		}
		if AccountLength != len(inbox.OwnerAccount) {
			return nil, fault.InvalidKeyLength
		}
	}
	copy(buffer[ownerIdentityOffset:ownerIdentityOffset+IdentityLength], inbox.OwnerIdentity)
	copy(buffer[ownerAccountOffset:ownerAccountOffset+AccountLength], inbox.OwnerAccount)
	binary.LittleEndian.PutUint32(buffer[disambiguatorOffset:], inbox.Disambiguator)
	binary.LittleEndian.PutUint32(buffer[nextIndexOffset:], inbox.NextIndex)
	binary.LittleEndian.PutUint32(buffer[countOffset:], uint32(len(inbox.Records)))

	for i := range inbox.Records {
		start := HeaderLength + i*RecordLength
		if err := inbox.Records[i].packInto(buffer[start : start+RecordLength]); nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// IsFull - no room for another record
func (inbox *Inbox) IsFull() bool {
	return len(inbox.Records) >= inbox.Layout.Capacity
}
