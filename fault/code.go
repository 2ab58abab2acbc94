// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// FailureCode - discrete code returned to the host for a rejected call
type FailureCode uint32

// the enumeration is part of the host interface: append only
const (
	Success FailureCode = iota
	CodeInvalidLayout
	CodePayloadTooLarge
	CodeInboxFull
	CodeInvalidKey
	CodeMalformedSignature
	CodeSignatureInvalid
	CodeUnauthorized
	CodeAddressMismatch
	CodeAlreadyInitialised
	CodeArithmeticOverflow
	CodeInvalidAccountData
	CodeInvalidInstruction
	CodeNotInitialised
	CodeMissingHandle
	CodeMissingSigner

	// any error not in the table below
	CodeUnknown FailureCode = 0xffffffff
)

var codes = []struct {
	err  error
	code FailureCode
}{
	{InvalidLayout, CodeInvalidLayout},
	{PayloadTooLarge, CodePayloadTooLarge},
	{InboxFull, CodeInboxFull},
	{InvalidKey, CodeInvalidKey},
	{MalformedSignature, CodeMalformedSignature},
	{SignatureInvalid, CodeSignatureInvalid},
	{Unauthorized, CodeUnauthorized},
	{AddressMismatch, CodeAddressMismatch},
	{AlreadyInitialised, CodeAlreadyInitialised},
	{ArithmeticOverflow, CodeArithmeticOverflow},
	{InvalidAccountData, CodeInvalidAccountData},
	{InvalidInstruction, CodeInvalidInstruction},
	{NotInitialised, CodeNotInitialised},
	{MissingHandle, CodeMissingHandle},
	{MissingSigner, CodeMissingSigner},
}

var names = map[FailureCode]string{
	Success:                "Success",
	CodeInvalidLayout:      "InvalidLayout",
	CodePayloadTooLarge:    "PayloadTooLarge",
	CodeInboxFull:          "InboxFull",
	CodeInvalidKey:         "InvalidKey",
	CodeMalformedSignature: "MalformedSignature",
	CodeSignatureInvalid:   "SignatureInvalid",
	CodeUnauthorized:       "Unauthorized",
	CodeAddressMismatch:    "AddressMismatch",
	CodeAlreadyInitialised: "AlreadyInitialized",
	CodeArithmeticOverflow: "ArithmeticOverflow",
	CodeInvalidAccountData: "InvalidAccountData",
	CodeInvalidInstruction: "InvalidInstruction",
	CodeNotInitialised:     "NotInitialised",
	CodeMissingHandle:      "MissingHandle",
	CodeMissingSigner:      "MissingSigner",
	CodeUnknown:            "Unknown",
}

// Code - map an error, possibly wrapped, to its failure code
func Code(err error) FailureCode {
	if nil == err {
		return Success
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}

// String - name of the failure code
func (code FailureCode) String() string {
	if s, ok := names[code]; ok {
		return s
	}
	return "Unknown"
}
