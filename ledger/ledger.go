// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - host runtime for the processor
//
// Calls touching the same storage address are serialised.  The slot
// is loaded from its pool, handed to the processor and written back
// in one Put only when the processor succeeded.
package ledger

import (
	"bytes"
	"time"

	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/instruction"
	"github.com/bitmark-inc/inboxd/metrics"
	"github.com/bitmark-inc/inboxd/processor"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/registry"
	"github.com/bitmark-inc/inboxd/storage"
	"github.com/bitmark-inc/logger"
)

// Service - the ledger operations offered to the rpc layer
type Service interface {
	Processor() *processor.Processor
	Submit(tx *Transaction) (*processor.Result, error)
	Read(ownerIdentity []byte, disambiguator uint32) ([]record.Record, error)
	Binding(host []byte) (*record.Binding, address.Address, error)
	RecipientKey(host []byte) ([]byte, address.Address, error)
}

// Ledger - serialised access to the slot pools
type Ledger struct {
	log       *logger.L
	processor *processor.Processor
	inboxes   storage.Handle
	bindings  storage.Handle
	locks     *keyedMutex
}

// New - create a ledger over the two slot pools
func New(log *logger.L, p *processor.Processor, inboxes storage.Handle, bindings storage.Handle) *Ledger {
	return &Ledger{
		log:       log,
		processor: p,
		inboxes:   inboxes,
		bindings:  bindings,
		locks:     newKeyedMutex(),
	}
}

// Processor - the processor executing calls
func (l *Ledger) Processor() *processor.Processor {
	return l.processor
}

// Submit - execute one transaction
func (l *Ledger) Submit(tx *Transaction) (*processor.Result, error) {
	started := time.Now()

	decoded, err := instruction.Packed(tx.Data).Unpack()
	if nil != err {
		l.log.Warnf("slot: %s  undecodable instruction: %s", tx.Slot, err)
		metrics.ObserveInstruction(instruction.InvalidTag.String(), err, started)
		return nil, err
	}
	tag := decoded.Tag()

	result, err := l.submit(tx, tag)
	metrics.ObserveInstruction(tag.String(), err, started)

	if nil != err {
		l.log.Warnf("slot: %s  %s rejected: %s  code: %s", tx.Slot, tag, err, fault.Code(err))
		return nil, err
	}
	l.log.Debugf("slot: %s  %s accepted", tx.Slot, tag)
	return result, nil
}

func (l *Ledger) submit(tx *Transaction, tag instruction.TagType) (*processor.Result, error) {
	pool, poolName, size := l.poolFor(tag)

	signed, err := tx.signed()
	if nil != err {
		return nil, err
	}

	unlock := l.locks.lock(tx.Slot)
	defer unlock()

	original := pool.Get(tx.Slot[:])
	if nil == original && !tx.Allocate {
		return nil, fault.Wrapf(fault.NotInitialised, "no slot at: %s", tx.Slot)
	}

	slot := &processor.Handle{
		Address: tx.Slot,
		Data:    original,
	}
	handles := []*processor.Handle{slot}

	if nil != tx.Caller {
		caller, err := address.FromBytes(tx.Caller.Bytes())
		if nil != err {
			return nil, err
		}
		handles = append(handles, &processor.Handle{
			Address: caller,
			Signer:  signed,
		})
	}
	if tx.Allocate {
		if 1 == len(handles) {
			return nil, fault.MissingHandle
		}
		handles = append(handles, &processor.Handle{
			Address: address.System,
		})
	}

	result, err := l.processor.Process(handles, tx.Data)
	if nil != err {
		return nil, err
	}

	if instruction.ReadInboxTag == tag || bytes.Equal(original, slot.Data) {
		return result, nil
	}

	if size != len(slot.Data) {
		fault.Panicf("slot: %s  %s produced %d bytes  expected: %d", tx.Slot, tag, len(slot.Data), size)
	}

	pool.Put(tx.Slot[:], slot.Data)
	metrics.SlotWrites.WithLabelValues(poolName).Inc()

	return result, nil
}

// select the pool and slot size for an instruction
func (l *Ledger) poolFor(tag instruction.TagType) (storage.Handle, string, int) {
	if instruction.BindIdentityTag == tag {
		return l.bindings, "bindings", record.BindingLength
	}
	return l.inboxes, "inboxes", l.processor.Layout().Size()
}

// Read - records of an inbox sorted by timestamp
func (l *Ledger) Read(ownerIdentity []byte, disambiguator uint32) ([]record.Record, error) {
	read := &instruction.ReadInbox{
		OwnerIdentity: ownerIdentity,
		Disambiguator: disambiguator,
	}
	packed, err := read.Pack()
	if nil != err {
		return nil, err
	}

	tx := &Transaction{
		Slot: l.processor.InboxAddress(ownerIdentity, disambiguator),
		Data: packed,
	}
	result, err := l.Submit(tx)
	if nil != err {
		return nil, err
	}
	return result.Records, nil
}

// Binding - the identity bound to a host account
func (l *Ledger) Binding(host []byte) (*record.Binding, address.Address, error) {
	a := l.processor.BindingAddress(host)

	unlock := l.locks.lock(a)
	defer unlock()

	slot := l.bindings.Get(a[:])
	if nil == slot {
		return nil, a, fault.NotInitialised
	}
	binding, err := registry.Lookup(slot)
	return binding, a, err
}

// RecipientKey - only the EC identity bound to a host account
func (l *Ledger) RecipientKey(host []byte) ([]byte, address.Address, error) {
	a := l.processor.BindingAddress(host)

	unlock := l.locks.lock(a)
	defer unlock()

	slot := l.bindings.Get(a[:])
	if nil == slot {
		return nil, a, fault.NotInitialised
	}
	key, err := record.ECIdentityFromSlot(slot)
	return key, a, err
}
