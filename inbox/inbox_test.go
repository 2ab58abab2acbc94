// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/inbox"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/verifier"
)

type fixture struct {
	layout  record.Layout
	owner   *eckey.PrivateKey
	sender  *eckey.PrivateKey
	account []byte
	address address.Address
	slot    []byte
}

func newFixture(t *testing.T, layout record.Layout) *fixture {
	owner, err := eckey.NewPrivateKey()
	require.NoError(t, err, "owner key")
	sender, err := eckey.NewPrivateKey()
	require.NoError(t, err, "sender key")

	var program address.Address
	program[0] = 0x99

	f := &fixture{
		layout:  layout,
		owner:   owner,
		sender:  sender,
		account: bytes.Repeat([]byte{0x22}, 32),
		address: address.Derive(program, address.InboxTag, owner.PublicKey(), 0),
	}
	f.slot, err = inbox.Initialise(layout, make([]byte, layout.Size()), owner.PublicKey(), f.account, 0)
	require.NoError(t, err, "initialise")
	return f
}

func (f *fixture) signedRecord(t *testing.T, payload []byte, timestamp int64) record.Record {
	ephemeral, err := eckey.NewPrivateKey()
	require.NoError(t, err, "ephemeral key")
	r := record.Record{
		Sender:    f.sender.PublicKey(),
		Payload:   payload,
		Ephemeral: ephemeral.PublicKey(),
		Timestamp: timestamp,
	}
	r.Signature, err = f.sender.Sign(verifier.AppendDigest(f.address, r.Content()))
	require.NoError(t, err, "sign")
	return r
}

func (f *fixture) append(t *testing.T, r record.Record) error {
	slot, err := inbox.Append(f.layout, f.slot, f.address, r)
	if nil == err {
		require.Len(t, slot, len(f.slot), "same length")
		f.slot = slot
	}
	return err
}

func TestInitialise(t *testing.T) {
	f := newFixture(t, record.Message)

	current, err := inbox.Load(record.Message, f.slot)
	require.NoError(t, err, "load")
	assert.Equal(t, record.Active, current.State)
	assert.Equal(t, f.owner.PublicKey(), current.OwnerIdentity)
	assert.Equal(t, f.account, current.OwnerAccount)
	assert.Empty(t, current.Records)

	_, err = inbox.Initialise(record.Message, f.slot, f.owner.PublicKey(), f.account, 0)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestInitialiseRejects(t *testing.T) {
	empty := make([]byte, record.Fixed.Size())

	_, err := inbox.Initialise(record.Fixed, empty, make([]byte, 33), bytes.Repeat([]byte{1}, 32), 0)
	assert.Equal(t, fault.InvalidKey, err, "owner not on curve")

	_, err = inbox.Initialise(record.Fixed, empty[1:], make([]byte, 33), bytes.Repeat([]byte{1}, 32), 0)
	assert.Equal(t, fault.CodeInvalidLayout, fault.Code(err), "slot length")

	key, err := eckey.NewPrivateKey()
	require.NoError(t, err)
	_, err = inbox.Initialise(record.Fixed, empty, key.PublicKey(), []byte{1}, 0)
	assert.Equal(t, fault.InvalidKeyLength, err, "owner account")
}

func TestOrderedRead(t *testing.T) {
	f := newFixture(t, record.Message)

	require.NoError(t, f.append(t, f.signedRecord(t, bytes.Repeat([]byte{'a'}, 10), 100)), "first")
	require.NoError(t, f.append(t, f.signedRecord(t, bytes.Repeat([]byte{'b'}, 10), 50)), "second")

	current, err := inbox.Load(record.Message, f.slot)
	require.NoError(t, err, "load")
	assert.Equal(t, uint32(2), current.NextIndex, "next index")

	records := inbox.ReadOrdered(current)
	require.Len(t, records, 2)
	assert.Equal(t, int64(50), records[0].Timestamp)
	assert.Equal(t, int64(100), records[1].Timestamp)

	assert.Equal(t, int64(100), current.Records[0].Timestamp, "stored order unchanged")
}

func TestOrderedReadStable(t *testing.T) {
	f := newFixture(t, record.Fixed)
	timestamps := []int64{5, 3, 5, -1, 3}
	for i, ts := range timestamps {
		require.NoError(t, f.append(t, f.signedRecord(t, []byte{byte(i)}, ts)), "append %d", i)
	}

	current, err := inbox.Load(record.Fixed, f.slot)
	require.NoError(t, err, "load")
	records := inbox.ReadOrdered(current)

	payloadOrder := make([]byte, 0, len(records))
	for i, r := range records {
		if i > 0 {
			assert.True(t, records[i-1].Timestamp <= r.Timestamp, "sorted at %d", i)
		}
		payloadOrder = append(payloadOrder, r.Payload[0])
	}
	assert.Equal(t, []byte{3, 1, 4, 0, 2}, payloadOrder, "ties keep append order")
}

func TestCapacity(t *testing.T) {
	for _, layout := range []record.Layout{record.Fixed, record.Message} {
		f := newFixture(t, layout)
		for i := 0; i < layout.Capacity; i += 1 {
			require.NoError(t, f.append(t, f.signedRecord(t, []byte{1}, int64(i))), "%s: append %d", layout, i)
		}

		before := append([]byte{}, f.slot...)
		err := f.append(t, f.signedRecord(t, []byte{1}, 0))
		assert.Equal(t, fault.InboxFull, err, "%s: one past capacity", layout)
		assert.Equal(t, before, f.slot, "%s: unchanged", layout)
	}
}

func TestPayloadBound(t *testing.T) {
	f := newFixture(t, record.Fixed)

	assert.NoError(t, f.append(t, f.signedRecord(t, make([]byte, record.MaximumPayload), 1)), "maximum")

	before := append([]byte{}, f.slot...)
	err := f.append(t, f.signedRecord(t, make([]byte, record.MaximumPayload+1), 2))
	assert.Equal(t, fault.CodePayloadTooLarge, fault.Code(err), "one over")
	assert.Equal(t, before, f.slot, "unchanged")
}

func TestAppendRejects(t *testing.T) {
	f := newFixture(t, record.Fixed)

	// signed by someone other than the declared sender
	r := f.signedRecord(t, []byte("x"), 1)
	r.Sender = f.owner.PublicKey()
	assert.Equal(t, fault.CodeUnauthorized, fault.Code(f.append(t, r)), "wrong signer")

	// signature bound to the slot address
	r = f.signedRecord(t, []byte("x"), 1)
	other := f.address
	other[0] ^= 1
	_, err := inbox.Append(f.layout, f.slot, other, r)
	assert.Equal(t, fault.CodeUnauthorized, fault.Code(err), "replayed to another inbox")

	// any field change invalidates the signature
	r = f.signedRecord(t, []byte("x"), 1)
	r.Timestamp = 2
	assert.Equal(t, fault.CodeUnauthorized, fault.Code(f.append(t, r)), "timestamp changed")

	r = f.signedRecord(t, []byte("x"), 1)
	r.Signature = r.Signature[:64]
	assert.Equal(t, fault.CodeMalformedSignature, fault.Code(f.append(t, r)), "recovery id missing")

	for _, width := range []int{0, 10} {
		r = f.signedRecord(t, []byte("x"), 1)
		r.Signature = r.Signature[:width]
		assert.Equal(t, fault.CodeMalformedSignature, fault.Code(f.append(t, r)), "signature of %d bytes", width)
	}

	r = f.signedRecord(t, []byte("x"), 1)
	r.Ephemeral = make([]byte, 33)
	assert.Equal(t, fault.CodeInvalidKey, fault.Code(f.append(t, r)), "ephemeral not on curve")

	empty := make([]byte, record.Fixed.Size())
	_, err = inbox.Append(record.Fixed, empty, f.address, f.signedRecord(t, []byte("x"), 1))
	assert.Equal(t, fault.NotInitialised, err, "not initialised")

	current, err := inbox.Load(record.Fixed, f.slot)
	require.NoError(t, err, "load")
	assert.Empty(t, current.Records, "nothing stored")
}

func TestIndexSaturation(t *testing.T) {
	f := newFixture(t, record.Fixed)
	current, err := inbox.Load(record.Fixed, f.slot)
	require.NoError(t, err, "load")

	current.NextIndex = math.MaxUint32
	f.slot, err = current.Pack()
	require.NoError(t, err, "pack")

	before := append([]byte{}, f.slot...)
	err = f.append(t, f.signedRecord(t, []byte("x"), 1))
	assert.Equal(t, fault.ArithmeticOverflow, err, "no wrap")
	assert.Equal(t, before, f.slot, "unchanged")
}

func TestCheckOwner(t *testing.T) {
	f := newFixture(t, record.Fixed)
	current, err := inbox.Load(record.Fixed, f.slot)
	require.NoError(t, err, "load")

	assert.NoError(t, inbox.CheckOwner(current, f.owner.PublicKey(), 0))
	assert.Equal(t, fault.CodeAddressMismatch, fault.Code(inbox.CheckOwner(current, f.owner.PublicKey(), 1)))
	assert.Equal(t, fault.CodeAddressMismatch, fault.Code(inbox.CheckOwner(current, f.sender.PublicKey(), 0)))
}
