// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/inboxd/fault"
)

const (
	initialisedOffset   = 0
	ecIdentityOffset    = 1
	ecSignatureOffset   = ecIdentityOffset + IdentityLength
	hostSignatureOffset = ecSignatureOffset + SignatureLength
	sequenceOffset      = hostSignatureOffset + HostSignatureLength
)

// Binding - decoded identity binding slot
type Binding struct {
	Initialised   bool
	ECIdentity    []byte
	ECSignature   []byte
	HostSignature []byte
	SequenceIndex uint32
}

// UnpackBinding - decode a BindingLength slot
func UnpackBinding(buffer []byte) (*Binding, error) {
	if BindingLength != len(buffer) {
		return nil, fault.Wrapf(fault.InvalidLayout, "binding length: %d  expected: %d", len(buffer), BindingLength)
	}

	var initialised bool
	switch buffer[initialisedOffset] {
	case 0:
	case 1:
		initialised = true
	default:
		return nil, fault.Wrapf(fault.InvalidLayout, "initialised flag: %d", buffer[initialisedOffset])
	}
	if !initialised && !isZero(buffer[ecIdentityOffset:]) {
		return nil, fault.Wrapf(fault.InvalidLayout, "uninitialised binding has non-zero fields")
	}

	return &Binding{
		Initialised:   initialised,
		ECIdentity:    cloneBytes(buffer[ecIdentityOffset:ecSignatureOffset]),
		ECSignature:   cloneBytes(buffer[ecSignatureOffset:hostSignatureOffset]),
		HostSignature: cloneBytes(buffer[hostSignatureOffset:sequenceOffset]),
		SequenceIndex: binary.LittleEndian.Uint32(buffer[sequenceOffset:]),
	}, nil
}

// Pack - encode to exactly BindingLength bytes
func (binding *Binding) Pack() ([]byte, error) {
	buffer := make([]byte, BindingLength)
	if !binding.Initialised {
		return buffer, nil
	}

	if IdentityLength != len(binding.ECIdentity) {
		return nil, fault.InvalidKey
	}
	if SignatureLength != len(binding.ECSignature) || HostSignatureLength != len(binding.HostSignature) {
		return nil, fault.MalformedSignature
	}

	buffer[initialisedOffset] = 1
	copy(buffer[ecIdentityOffset:], binding.ECIdentity)
	copy(buffer[ecSignatureOffset:], binding.ECSignature)
	copy(buffer[hostSignatureOffset:], binding.HostSignature)
	binary.LittleEndian.PutUint32(buffer[sequenceOffset:], binding.SequenceIndex)
	return buffer, nil
}

// ECIdentityFromSlot - read the bound key without decoding the rest
func ECIdentityFromSlot(buffer []byte) ([]byte, error) {
	if BindingLength != len(buffer) {
		return nil, fault.InvalidLayout
	}
	if 1 != buffer[initialisedOffset] {
		return nil, fault.NotInitialised
	}
	return cloneBytes(buffer[ecIdentityOffset:ecSignatureOffset]), nil
}
