// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/instruction"
	"github.com/bitmark-inc/inboxd/ledger"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/rpc/program"
	"github.com/bitmark-inc/inboxd/verifier"
)

// ErrRejected - the daemon refused the instruction
var ErrRejected = fault.ProcessError("instruction rejected")

// Signer - the keys of the calling identity
type Signer struct {
	Host *account.PrivateKey
	EC   *eckey.PrivateKey
}

// Submit - sign and send one transaction
//
// a rejection is returned as ErrRejected wrapped with the failure
// name, together with the reply
func (client *Client) Submit(tx *ledger.Transaction) (*program.ProcessReply, error) {
	arguments := program.ProcessArguments{
		Slot:        tx.Slot,
		Caller:      tx.Caller,
		Allocate:    tx.Allocate,
		Instruction: hex.EncodeToString(tx.Data),
		Signature:   tx.Signature,
	}

	client.printJson("Process Request", arguments)

	var reply program.ProcessReply
	if err := client.client.Call("Program.Process", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Process Reply", reply)

	if fault.Success != reply.Code {
		return &reply, fault.Wrapf(ErrRejected, "%s: %s", reply.Name, reply.Message)
	}
	return &reply, nil
}

// BindData - the binding to create
type BindData struct {
	Program address.Address
	Signer  Signer
}

// Bind - register the signer's EC identity against its host account
func (client *Client) Bind(data *BindData) (*program.ProcessReply, error) {
	tx, err := BindTransaction(data)
	if nil != err {
		return nil, err
	}
	return client.Submit(tx)
}

// BindTransaction - signed binding transaction
func BindTransaction(data *BindData) (*ledger.Transaction, error) {
	host := data.Signer.Host.Account().Bytes()
	slot := address.Derive(data.Program, address.AccountTag, host, 0)

	digest := verifier.BindingDigest(slot)
	ecSignature, err := data.Signer.EC.Sign(digest)
	if nil != err {
		return nil, err
	}

	bind := &instruction.BindIdentity{
		ECIdentity:    data.Signer.EC.PublicKey(),
		ECSignature:   ecSignature,
		HostSignature: data.Signer.Host.Sign(digest),
	}
	packed, err := bind.Pack()
	if nil != err {
		return nil, err
	}

	tx := &ledger.Transaction{
		Slot:     slot,
		Allocate: true,
		Data:     packed,
	}
	tx.Sign(data.Signer.Host)
	return tx, nil
}

// CreateData - the inbox to create
type CreateData struct {
	Program       address.Address
	Signer        Signer
	Disambiguator uint32
}

// CreateInbox - create an empty inbox owned by the signer
func (client *Client) CreateInbox(data *CreateData) (*program.ProcessReply, error) {
	tx, err := CreateTransaction(data)
	if nil != err {
		return nil, err
	}
	return client.Submit(tx)
}

// CreateTransaction - signed inbox creation transaction
func CreateTransaction(data *CreateData) (*ledger.Transaction, error) {
	owner := data.Signer.EC.PublicKey()

	create := &instruction.InitialiseInbox{
		OwnerIdentity: owner,
		Disambiguator: data.Disambiguator,
	}
	packed, err := create.Pack()
	if nil != err {
		return nil, err
	}

	tx := &ledger.Transaction{
		Slot:     address.Derive(data.Program, address.InboxTag, owner, data.Disambiguator),
		Allocate: true,
		Data:     packed,
	}
	tx.Sign(data.Signer.Host)
	return tx, nil
}

// SendData - one record for somebody else's inbox
type SendData struct {
	Program       address.Address
	Signer        Signer
	Recipient     []byte
	Disambiguator uint32
	Payload       []byte
	Ephemeral     []byte    // fresh key when nil
	Timestamp     time.Time // now when zero
}

// Send - append a signed record to the recipient's inbox
func (client *Client) Send(data *SendData) (*program.ProcessReply, error) {
	tx, err := SendTransaction(data)
	if nil != err {
		return nil, err
	}
	return client.Submit(tx)
}

// SendTransaction - signed append transaction
func SendTransaction(data *SendData) (*ledger.Transaction, error) {
	slot := address.Derive(data.Program, address.InboxTag, data.Recipient, data.Disambiguator)

	ephemeral := data.Ephemeral
	if nil == ephemeral {
		key, err := eckey.NewPrivateKey()
		if nil != err {
			return nil, err
		}
		ephemeral = key.PublicKey()
	}

	timestamp := data.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	r := record.Record{
		Sender:    data.Signer.EC.PublicKey(),
		Payload:   data.Payload,
		Ephemeral: ephemeral,
		Timestamp: timestamp.Unix(),
	}
	signature, err := data.Signer.EC.Sign(verifier.AppendDigest(slot, r.Content()))
	if nil != err {
		return nil, err
	}
	r.Signature = signature

	send := &instruction.AppendRecord{
		OwnerIdentity: data.Recipient,
		Disambiguator: data.Disambiguator,
		Record:        r,
	}
	packed, err := send.Pack()
	if nil != err {
		return nil, err
	}

	tx := &ledger.Transaction{
		Slot: slot,
		Data: packed,
	}
	tx.Sign(data.Signer.Host)
	return tx, nil
}
