// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/hostsig"
	"github.com/bitmark-inc/inboxd/inbox"
	"github.com/bitmark-inc/inboxd/instruction"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/registry"
)

// positions in the handle list
const (
	slotHandle   = 0
	signerHandle = 1
	systemHandle = 2
)

// Handle - one storage slot presented by the host
type Handle struct {
	Address address.Address
	Data    []byte
	Signer  bool
}

// Result - outcome of a successful call
type Result struct {
	Tag     instruction.TagType
	Records []record.Record
}

// Processor - entry point for one program
type Processor struct {
	program  address.Address
	layout   record.Layout
	verifier hostsig.Verifier
}

// New - create a processor for the program id
func New(program address.Address, layout record.Layout, verifier hostsig.Verifier) *Processor {
	return &Processor{
		program:  program,
		layout:   layout,
		verifier: verifier,
	}
}

// Program - the program id addresses are derived from
func (p *Processor) Program() address.Address {
	return p.program
}

// Layout - the inbox preset
func (p *Processor) Layout() record.Layout {
	return p.layout
}

// InboxAddress - where the inbox of owner at disambiguator lives
func (p *Processor) InboxAddress(ownerIdentity []byte, disambiguator uint32) address.Address {
	return address.Derive(p.program, address.InboxTag, ownerIdentity, disambiguator)
}

// BindingAddress - where the identity binding of a host account lives
func (p *Processor) BindingAddress(host []byte) address.Address {
	return address.Derive(p.program, address.AccountTag, host, 0)
}

// Process - decode and execute one instruction
//
// handles are positional: slot, signer, optional system allocator.
// The slot data is replaced only when the whole call succeeds.
func (p *Processor) Process(handles []*Handle, data []byte) (*Result, error) {
	decoded, err := instruction.Packed(data).Unpack()
	if nil != err {
		return nil, err
	}
	if len(handles) <= slotHandle || nil == handles[slotHandle] {
		return nil, fault.MissingHandle
	}
	slot := handles[slotHandle]

	result := &Result{
		Tag: decoded.Tag(),
	}

	switch i := decoded.(type) {

	case *instruction.InitialiseInbox:
		signer, err := requireSigner(handles)
		if nil != err {
			return nil, err
		}
		expected := p.InboxAddress(i.OwnerIdentity, i.Disambiguator)
		if err := address.Check(slot.Address, expected); nil != err {
			return nil, err
		}
		buffer, err := slotBuffer(handles, p.layout.Size(), true)
		if nil != err {
			return nil, err
		}
		updated, err := inbox.Initialise(p.layout, buffer, i.OwnerIdentity, signer.Address[:], i.Disambiguator)
		if nil != err {
			return nil, err
		}
		slot.Data = updated

	case *instruction.AppendRecord:
		if _, err := requireSigner(handles); nil != err {
			return nil, err
		}
		expected := p.InboxAddress(i.OwnerIdentity, i.Disambiguator)
		if err := address.Check(slot.Address, expected); nil != err {
			return nil, err
		}
		buffer, err := slotBuffer(handles, p.layout.Size(), false)
		if nil != err {
			return nil, err
		}
		current, err := inbox.Load(p.layout, buffer)
		if nil != err {
			return nil, err
		}
		if err := inbox.CheckOwner(current, i.OwnerIdentity, i.Disambiguator); nil != err {
			return nil, err
		}
		updated, err := inbox.Append(p.layout, buffer, slot.Address, i.Record)
		if nil != err {
			return nil, err
		}
		slot.Data = updated

	case *instruction.ReadInbox:
		expected := p.InboxAddress(i.OwnerIdentity, i.Disambiguator)
		if err := address.Check(slot.Address, expected); nil != err {
			return nil, err
		}
		buffer, err := slotBuffer(handles, p.layout.Size(), false)
		if nil != err {
			return nil, err
		}
		current, err := inbox.Load(p.layout, buffer)
		if nil != err {
			return nil, err
		}
		if err := inbox.CheckOwner(current, i.OwnerIdentity, i.Disambiguator); nil != err {
			return nil, err
		}
		result.Records = inbox.ReadOrdered(current)

	case *instruction.BindIdentity:
		signer, err := requireSigner(handles)
		if nil != err {
			return nil, err
		}
		host := signer.Address[:]
		if err := address.Check(slot.Address, p.BindingAddress(host)); nil != err {
			return nil, err
		}
		buffer, err := slotBuffer(handles, record.BindingLength, true)
		if nil != err {
			return nil, err
		}
		request := &registry.Request{
			ECIdentity:    i.ECIdentity,
			ECSignature:   i.ECSignature,
			HostSignature: i.HostSignature,
			SequenceIndex: i.SequenceIndex,
		}
		updated, err := registry.Bind(p.verifier, buffer, slot.Address, host, request)
		if nil != err {
			return nil, err
		}
		slot.Data = updated

	default:
		return nil, fault.InvalidInstruction
	}

	return result, nil
}

// the second handle must be present and have signed the call
func requireSigner(handles []*Handle) (*Handle, error) {
	if len(handles) <= signerHandle || nil == handles[signerHandle] {
		return nil, fault.MissingHandle
	}
	signer := handles[signerHandle]
	if !signer.Signer {
		return nil, fault.MissingSigner
	}
	return signer, nil
}

// copy of the slot data, or a zeroed buffer when the slot is empty
// and the system allocator is present
func slotBuffer(handles []*Handle, size int, allocate bool) ([]byte, error) {
	data := handles[slotHandle].Data
	if 0 == len(data) && allocate && hasSystem(handles) {
		return make([]byte, size), nil
	}
	if size != len(data) {
		return nil, fault.Wrapf(fault.InvalidAccountData, "slot length: %d  expected: %d", len(data), size)
	}
	buffer := make([]byte, size)
	copy(buffer, data)
	return buffer, nil
}

func hasSystem(handles []*Handle) bool {
	return len(handles) > systemHandle && nil != handles[systemHandle] && handles[systemHandle].Address.IsSystem()
}
