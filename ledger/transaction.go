// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
)

// Transaction - one call submitted by a host account
//
// Caller may be nil for a read, in which case no signer handle is
// presented.  Allocate adds the system handle so that an empty slot
// can be created.
type Transaction struct {
	Slot      address.Address   `json:"slot"`
	Caller    *account.Account  `json:"caller"`
	Allocate  bool              `json:"allocate"`
	Data      []byte            `json:"data"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes covered by the caller's signature
//
//   slot ++ allocate(0/1) ++ instruction data
func (tx *Transaction) Message() []byte {
	message := make([]byte, 0, address.Length+1+len(tx.Data))
	message = append(message, tx.Slot[:]...)
	if tx.Allocate {
		message = append(message, 1)
	} else {
		message = append(message, 0)
	}
	return append(message, tx.Data...)
}

// Sign - set the caller and signature from a host private key
func (tx *Transaction) Sign(key *account.PrivateKey) {
	tx.Caller = key.Account()
	tx.Signature = key.Sign(tx.Message())
}

// signed - true if the caller's signature covers the message
func (tx *Transaction) signed() (bool, error) {
	if nil == tx.Caller {
		return false, nil
	}
	if 0 == len(tx.Signature) {
		return false, nil
	}
	if err := tx.Caller.CheckSignature(tx.Message(), tx.Signature); nil != err {
		return false, err
	}
	return true, nil
}
