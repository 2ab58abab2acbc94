// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/ledger"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	methodRead = "Inbox.Read"
)

// Inbox - type for the RPC
type Inbox struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Service
}

// Entry - one record in hex form
type Entry struct {
	Sender    string `json:"sender"`
	Payload   string `json:"payload"`
	Ephemeral string `json:"ephemeral"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// Entries - convert records for a reply, preserving order
func Entries(records []record.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			Sender:    hex.EncodeToString(r.Sender),
			Payload:   hex.EncodeToString(r.Payload),
			Ephemeral: hex.EncodeToString(r.Ephemeral),
			Timestamp: r.Timestamp,
			Signature: hex.EncodeToString(r.Signature),
		}
	}
	return entries
}

// New - create the Inbox service
func New(log *logger.L, limits ratelimit.Limits, service ledger.Service) *Inbox {
	return &Inbox{
		Log:     log,
		Limiter: ratelimit.New(limits),
		Ledger:  service,
	}
}

// ReadArguments - arguments for RPC
type ReadArguments struct {
	Owner         string `json:"owner"`
	Disambiguator uint32 `json:"disambiguator"`
}

// ReadReply - result from RPC
type ReadReply struct {
	Address address.Address `json:"address"`
	Records []Entry         `json:"records"`
}

// Read - records of an inbox sorted by timestamp
func (inbox *Inbox) Read(arguments *ReadArguments, reply *ReadReply) error {
	if err := ratelimit.Limit(inbox.Limiter, methodRead); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Owner {
		return fault.MissingParameters
	}

	owner, err := hex.DecodeString(arguments.Owner)
	if nil != err {
		return fault.Wrapf(fault.InvalidKey, "owner: %s", err)
	}

	inbox.Log.Infof("%s: owner: %x  disambiguator: %d", methodRead, owner, arguments.Disambiguator)

	records, err := inbox.Ledger.Read(owner, arguments.Disambiguator)
	if nil != err {
		return err
	}

	reply.Address = inbox.Ledger.Processor().InboxAddress(owner, arguments.Disambiguator)
	reply.Records = Entries(records)
	return nil
}
