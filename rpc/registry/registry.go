// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/ledger"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	methodGet = "Registry.Get"
	methodKey = "Registry.Key"
)

// Registry - type for the RPC
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Service
}

// New - create the Registry service
func New(log *logger.L, limits ratelimit.Limits, service ledger.Service) *Registry {
	return &Registry{
		Log:     log,
		Limiter: ratelimit.New(limits),
		Ledger:  service,
	}
}

// GetArguments - arguments for RPC
type GetArguments struct {
	Account *account.Account `json:"account"`
}

// GetReply - the binding of a host account
type GetReply struct {
	Address       address.Address `json:"address"`
	ECIdentity    string          `json:"ecIdentity"`
	ECSignature   string          `json:"ecSignature"`
	HostSignature string          `json:"hostSignature"`
	SequenceIndex uint32          `json:"sequenceIndex"`
}

// Get - the EC identity bound to a host account
func (registry *Registry) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(registry.Limiter, methodGet); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Account || arguments.Account.IsZero() {
		return fault.MissingParameters
	}

	registry.Log.Infof("%s: account: %s", methodGet, arguments.Account)

	binding, a, err := registry.Ledger.Binding(arguments.Account.Bytes())
	if nil != err {
		return err
	}

	reply.Address = a
	reply.ECIdentity = hex.EncodeToString(binding.ECIdentity)
	reply.ECSignature = hex.EncodeToString(binding.ECSignature)
	reply.HostSignature = hex.EncodeToString(binding.HostSignature)
	reply.SequenceIndex = binding.SequenceIndex
	return nil
}

// KeyArguments - arguments for RPC
type KeyArguments struct {
	Account *account.Account `json:"account"`
}

// KeyReply - the EC identity inboxes for a host account are addressed to
type KeyReply struct {
	Address    address.Address `json:"address"`
	ECIdentity string          `json:"ecIdentity"`
}

// Key - the bound EC identity without the proofs
func (registry *Registry) Key(arguments *KeyArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(registry.Limiter, methodKey); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Account || arguments.Account.IsZero() {
		return fault.MissingParameters
	}

	registry.Log.Infof("%s: account: %s", methodKey, arguments.Account)

	key, a, err := registry.Ledger.RecipientKey(arguments.Account.Bytes())
	if nil != err {
		return err
	}

	reply.Address = a
	reply.ECIdentity = hex.EncodeToString(key)
	return nil
}
