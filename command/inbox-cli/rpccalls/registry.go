// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/rpc/registry"
)

// Lookup - the binding of a host account
func (client *Client) Lookup(acc *account.Account) (*registry.GetReply, error) {
	arguments := registry.GetArguments{
		Account: acc,
	}

	client.printJson("Lookup Request", arguments)

	var reply registry.GetReply
	if err := client.client.Call("Registry.Get", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Lookup Reply", reply)

	return &reply, nil
}

// RecipientKey - the EC identity a sender must address an inbox to
func (client *Client) RecipientKey(acc *account.Account) ([]byte, error) {
	arguments := registry.KeyArguments{
		Account: acc,
	}

	client.printJson("Key Request", arguments)

	var reply registry.KeyReply
	if err := client.client.Call("Registry.Key", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Key Reply", reply)

	key, err := hex.DecodeString(reply.ECIdentity)
	if nil != err {
		return nil, err
	}
	if err := eckey.Validate(key); nil != err {
		return nil, err
	}
	return key, nil
}
