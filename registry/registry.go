// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/hostsig"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/verifier"
)

// Request - the fields a caller supplies to bind an identity
type Request struct {
	ECIdentity    []byte
	ECSignature   []byte
	HostSignature []byte
	SequenceIndex uint32
}

// Bind - one time binding of an EC identity to a host account
//
// both signatures must cover "ZKLAccount:" + slotAddress; the slot
// is returned re-encoded and the input is never modified
func Bind(v hostsig.Verifier, slot []byte, slotAddress address.Address, host []byte, request *Request) ([]byte, error) {
	current, err := record.UnpackBinding(slot)
	if nil != err {
		return nil, err
	}
	if current.Initialised {
		return nil, fault.AlreadyInitialised
	}

	err = verifier.VerifyBinding(v, slotAddress, host, request.ECIdentity, request.ECSignature, request.HostSignature)
	if nil != err {
		return nil, err
	}

	next := &record.Binding{
		Initialised:   true,
		ECIdentity:    request.ECIdentity,
		ECSignature:   request.ECSignature,
		HostSignature: request.HostSignature,
		SequenceIndex: request.SequenceIndex,
	}
	return next.Pack()
}

// Lookup - the bound identity of an initialised slot
func Lookup(slot []byte) (*record.Binding, error) {
	current, err := record.UnpackBinding(slot)
	if nil != err {
		return nil, err
	}
	if !current.Initialised {
		return nil, fault.NotInitialised
	}
	return current, nil
}
