// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/inboxd/command/inbox-cli/rpccalls"
)

func runBind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := unlock(c, m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	program, err := programFor(m, client)
	if nil != err {
		return err
	}

	response, err := client.Bind(&rpccalls.BindData{
		Program: program,
		Signer:  signer,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
