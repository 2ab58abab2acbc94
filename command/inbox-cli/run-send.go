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

func runSend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := checkRecipient(c.String("to"))
	if nil != err {
		return err
	}

	payload, err := checkPayload(c.String("payload"))
	if nil != err {
		return err
	}

	index, err := checkIndex(c.Uint("index"))
	if nil != err {
		return err
	}

	recipient, err := accountFor(m, to)
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

	// the recipient's inbox is keyed by its published EC identity
	key, err := client.RecipientKey(recipient)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "program: %s\n", program)
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "index: %d\n", index)
	}

	response, err := client.Send(&rpccalls.SendData{
		Program:       program,
		Signer:        signer,
		Recipient:     key,
		Disambiguator: index,
		Payload:       payload,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
