// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inboxd/command/inbox-cli/rpccalls"
)

func runCreateInbox(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	index, err := checkIndex(c.Uint("index"))
	if nil != err {
		return err
	}

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

	if m.verbose {
		fmt.Fprintf(m.e, "program: %s\n", program)
		fmt.Fprintf(m.e, "index: %d\n", index)
	}

	response, err := client.CreateInbox(&rpccalls.CreateData{
		Program:       program,
		Signer:        signer,
		Disambiguator: index,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
