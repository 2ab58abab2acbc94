// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/rpc/node"
)

// GetInfo - request status from inboxd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return &reply, nil
}

// Program - the program id served by the daemon
func (client *Client) Program() (address.Address, error) {
	info, err := client.GetInfo()
	if nil != err {
		return address.Address{}, err
	}
	return info.Program, nil
}
