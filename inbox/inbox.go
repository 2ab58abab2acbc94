// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox

import (
	"bytes"
	"sort"

	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/util"
	"github.com/bitmark-inc/inboxd/verifier"
)

// Initialise - activate an empty slot
//
// returns the new slot bytes, the input is never modified
func Initialise(layout record.Layout, slot []byte, ownerIdentity []byte, ownerAccount []byte, disambiguator uint32) ([]byte, error) {
	current, err := layout.UnpackInbox(slot)
	if nil != err {
		return nil, err
	}
	if record.Uninitialised != current.State {
		return nil, fault.AlreadyInitialised
	}
	if err := eckey.Validate(ownerIdentity); nil != err {
		return nil, err
	}
	if record.AccountLength != len(ownerAccount) {
		return nil, fault.InvalidKeyLength
	}

	next := &record.Inbox{
		Layout:        layout,
		State:         record.Active,
		OwnerIdentity: ownerIdentity,
		OwnerAccount:  ownerAccount,
		Disambiguator: disambiguator,
		NextIndex:     0,
		Records:       []record.Record{},
	}
	return next.Pack()
}

// Append - add one authenticated record
//
// slotAddress is the address the record signature must cover
func Append(layout record.Layout, slot []byte, slotAddress address.Address, r record.Record) ([]byte, error) {
	current, err := layout.UnpackInbox(slot)
	if nil != err {
		return nil, err
	}
	if record.Active != current.State {
		return nil, fault.NotInitialised
	}
	if current.IsFull() {
		return nil, fault.InboxFull
	}
	if len(r.Payload) > record.MaximumPayload {
		return nil, fault.Wrapf(fault.PayloadTooLarge, "payload: %d bytes", len(r.Payload))
	}
	if err := eckey.Validate(r.Sender); nil != err {
		return nil, fault.Wrapf(err, "sender")
	}
	if err := eckey.Validate(r.Ephemeral); nil != err {
		return nil, fault.Wrapf(err, "ephemeral")
	}
	if err := verifier.VerifyAppend(slotAddress, r.Content(), r.Signature, r.Sender); nil != err {
		return nil, err
	}

	nextIndex, saturated := util.SaturatingIncrement32(current.NextIndex)
	if saturated {
		return nil, fault.ArithmeticOverflow
	}

	current.NextIndex = nextIndex
	current.Records = append(current.Records, r.Clone())
	return current.Pack()
}

// Load - decode an active inbox
func Load(layout record.Layout, slot []byte) (*record.Inbox, error) {
	current, err := layout.UnpackInbox(slot)
	if nil != err {
		return nil, err
	}
	if record.Active != current.State {
		return nil, fault.NotInitialised
	}
	return current, nil
}

// ReadOrdered - copy of the records sorted by timestamp
//
// equal timestamps keep their append order
func ReadOrdered(current *record.Inbox) []record.Record {
	result := make([]record.Record, len(current.Records))
	for i := range current.Records {
		result[i] = current.Records[i].Clone()
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp < result[j].Timestamp
	})
	return result
}

// CheckOwner - the declared owner must be the one stored in the slot
func CheckOwner(current *record.Inbox, ownerIdentity []byte, disambiguator uint32) error {
	if !bytes.Equal(current.OwnerIdentity, ownerIdentity) || current.Disambiguator != disambiguator {
		return fault.Wrapf(fault.AddressMismatch, "slot belongs to another owner")
	}
	return nil
}
