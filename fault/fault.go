// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// core errors - keep in alphabetic order
var (
	AddressMismatch    = InvalidError("presented storage address does not match derived address")
	AlreadyInitialised = ExistsError("already initialised")
	ArithmeticOverflow = ProcessError("counter overflow")
	InboxFull          = LengthError("inbox is full")
	InvalidAccountData = LengthError("invalid account data length")
	InvalidInstruction = RecordError("invalid instruction data")
	InvalidKey         = InvalidError("invalid compressed public key")
	InvalidLayout      = RecordError("invalid record layout")
	MalformedSignature = InvalidError("malformed signature")
	MissingHandle      = NotFoundError("missing storage handle")
	MissingSigner      = InvalidError("caller did not sign")
	NotInitialised     = NotFoundError("not initialised")
	PayloadTooLarge    = LengthError("payload reference too large")
	SignatureInvalid   = InvalidError("signature does not match identity")
	Unauthorized       = InvalidError("unauthorized")
)

// support errors - keep in alphabetic order
var (
	CannotDecodeAccount       = InvalidError("cannot decode account")
	CannotDecodeAddress       = InvalidError("cannot decode address")
	CertificateFileExists     = ExistsError("certificate file already exists")
	ConfigurationFailed       = InvalidError("configuration failed")
	CryptoFailed              = ProcessError("encryption failed")
	FileNotFound              = NotFoundError("file not found")
	IdentityNameAlreadyExists = ExistsError("identity name already exists")
	IdentityNameNotFound      = NotFoundError("identity name not found")
	InvalidIpAddress          = InvalidError("invalid IP address")
	InvalidKeyLength          = InvalidError("invalid key length")
	InvalidLoggerChannel      = ProcessError("invalid logger channel")
	InvalidPasswordLength     = InvalidError("invalid password length")
	InvalidPortNumber         = InvalidError("invalid port number")
	KeyFileExists             = ExistsError("key file already exists")
	MissingParameters         = InvalidError("missing parameters")
	NotInitialisedService     = NotFoundError("service not initialised")
	NotPrivateKey             = InvalidError("not a private key")
	PasswordMismatch          = InvalidError("password mismatch")
	RateLimiting              = InvalidError("rate limiting")
	UnknownLayout             = InvalidError("unknown inbox layout")
	WrongPassword             = InvalidError("wrong password")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }

// Diagnostic - an error together with a human readable explanation
//
// the underlying error is preserved so that Code and errors.Is still
// identify the failure
type Diagnostic struct {
	Err     error
	Message string
}

func (d *Diagnostic) Error() string {
	return d.Err.Error() + ": " + d.Message
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// Wrapf - attach a diagnostic to an error
func Wrapf(err error, format string, arguments ...interface{}) error {
	if nil == err {
		return nil
	}
	return &Diagnostic{
		Err:     err,
		Message: fmt.Sprintf(format, arguments...),
	}
}
