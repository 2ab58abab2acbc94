// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"os"

	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/record"
)

var (
	ErrIndexOutOfRange     = fault.InvalidError("inbox index out of range")
	ErrPayloadTooLarge     = fault.InvalidError("payload is too large")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredOwner       = fault.InvalidError("owner is required")
	ErrRequiredPayload     = fault.InvalidError("payload is required")
	ErrRequiredRecipient   = fault.InvalidError("recipient is required")
	ErrIncompatibleOptions = fault.InvalidError("incompatible options")
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// recipient is required
func checkRecipient(to string) (string, error) {
	if "" == to {
		return "", ErrRequiredRecipient
	}
	return to, nil
}

// owner is required
func checkOwner(owner string) (string, error) {
	if "" == owner {
		return "", ErrRequiredOwner
	}
	return owner, nil
}

// payload is required and must fit a record
func checkPayload(payload string) ([]byte, error) {
	if "" == payload {
		return nil, ErrRequiredPayload
	}
	if len(payload) > record.MaximumPayload {
		return nil, ErrPayloadTooLarge
	}
	return []byte(payload), nil
}

// the disambiguator is a 32 bit value
func checkIndex(index uint) (uint32, error) {
	if index > math.MaxUint32 {
		return 0, ErrIndexOutOfRange
	}
	return uint32(index), nil
}

// returns true if the path is a directory
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}
