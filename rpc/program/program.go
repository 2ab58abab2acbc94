// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/ledger"
	"github.com/bitmark-inc/inboxd/rpc/inbox"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	methodProcess = "Program.Process"
)

// Program - type for the RPC
type Program struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Service
}

// New - create the Program service
func New(log *logger.L, limits ratelimit.Limits, service ledger.Service) *Program {
	return &Program{
		Log:     log,
		Limiter: ratelimit.New(limits),
		Ledger:  service,
	}
}

// ProcessArguments - one signed transaction
//
// Instruction is the hex of the packed instruction; Signature is the
// caller's ed25519 signature over ledger.Transaction.Message
type ProcessArguments struct {
	Slot        address.Address   `json:"slot"`
	Caller      *account.Account  `json:"caller"`
	Allocate    bool              `json:"allocate"`
	Instruction string            `json:"instruction"`
	Signature   account.Signature `json:"signature"`
}

// ProcessReply - outcome of the call
//
// a rejected call is not an RPC error: Code and Name identify the
// failure and Message carries the diagnostic
type ProcessReply struct {
	Tag     string            `json:"tag"`
	Code    fault.FailureCode `json:"code"`
	Name    string            `json:"name"`
	Message string            `json:"message,omitempty"`
	Records []inbox.Entry     `json:"records,omitempty"`
}

// Process - execute one instruction against its slot
func (program *Program) Process(arguments *ProcessArguments, reply *ProcessReply) error {
	if err := ratelimit.Limit(program.Limiter, methodProcess); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Instruction {
		return fault.MissingParameters
	}

	data, err := hex.DecodeString(arguments.Instruction)
	if nil != err {
		return fault.Wrapf(fault.InvalidInstruction, "hex: %s", err)
	}

	tx := &ledger.Transaction{
		Slot:      arguments.Slot,
		Caller:    arguments.Caller,
		Allocate:  arguments.Allocate,
		Data:      data,
		Signature: arguments.Signature,
	}

	program.Log.Infof("%s: slot: %s  caller: %v  allocate: %t", methodProcess, tx.Slot, tx.Caller, tx.Allocate)

	result, err := program.Ledger.Submit(tx)

	code := fault.Code(err)
	reply.Code = code
	reply.Name = code.String()
	if nil != err {
		reply.Message = err.Error()
		return nil
	}

	reply.Tag = result.Tag.String()
	if 0 != len(result.Records) {
		reply.Records = inbox.Entries(result.Records)
	}
	return nil
}
