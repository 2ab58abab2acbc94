// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/inboxd/rpc/derive"
)

// DeriveData - what address to compute
type DeriveData struct {
	Kind          string
	Owner         string
	Disambiguator uint32
}

// Derive - ask the daemon for an inbox or binding address
func (client *Client) Derive(data *DeriveData) (*derive.DeriveReply, error) {
	arguments := derive.DeriveArguments{
		Kind:          data.Kind,
		Owner:         data.Owner,
		Disambiguator: data.Disambiguator,
	}

	client.printJson("Derive Request", arguments)

	var reply derive.DeriveReply
	if err := client.client.Call("Address.Derive", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Derive Reply", reply)

	return &reply, nil
}
