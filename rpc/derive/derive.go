// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derive - the Address RPC service
package derive

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/processor"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	methodDerive = "Address.Derive"

	kindInbox   = "inbox"
	kindAccount = "account"
)

// Address - type for the RPC
type Address struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Processor *processor.Processor
}

// New - create the Address service
func New(log *logger.L, limits ratelimit.Limits, p *processor.Processor) *Address {
	return &Address{
		Log:       log,
		Limiter:   ratelimit.New(limits),
		Processor: p,
	}
}

// DeriveArguments - arguments for RPC
//
// Kind "inbox": Owner is the hex EC identity
// Kind "account": Owner is the base58 host account, Disambiguator is ignored
type DeriveArguments struct {
	Kind          string `json:"kind"`
	Owner         string `json:"owner"`
	Disambiguator uint32 `json:"disambiguator"`
}

// DeriveReply - result from RPC
type DeriveReply struct {
	Program address.Address `json:"program"`
	Address address.Address `json:"address"`
}

// Derive - compute the storage address of an inbox or binding
func (a *Address) Derive(arguments *DeriveArguments, reply *DeriveReply) error {
	if err := ratelimit.Limit(a.Limiter, methodDerive); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Owner {
		return fault.MissingParameters
	}

	switch arguments.Kind {
	case kindInbox:
		owner, err := hex.DecodeString(arguments.Owner)
		if nil != err {
			return fault.Wrapf(fault.InvalidKey, "owner: %s", err)
		}
		reply.Address = a.Processor.InboxAddress(owner, arguments.Disambiguator)

	case kindAccount:
		host, err := account.FromBase58(arguments.Owner)
		if nil != err {
			return err
		}
		reply.Address = a.Processor.BindingAddress(host.Bytes())

	default:
		return fault.Wrapf(fault.MissingParameters, "kind: %q", arguments.Kind)
	}

	reply.Program = a.Processor.Program()
	return nil
}
