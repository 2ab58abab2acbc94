// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"github.com/bitmark-inc/inboxd/rpc/inbox"
)

// ReadData - which inbox to read
type ReadData struct {
	Owner         []byte
	Disambiguator uint32
}

// Read - records of an inbox sorted by timestamp
func (client *Client) Read(data *ReadData) (*inbox.ReadReply, error) {
	arguments := inbox.ReadArguments{
		Owner:         hex.EncodeToString(data.Owner),
		Disambiguator: data.Disambiguator,
	}

	client.printJson("Read Request", arguments)

	var reply inbox.ReadReply
	if err := client.client.Call("Inbox.Read", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Read Reply", reply)

	return &reply, nil
}
