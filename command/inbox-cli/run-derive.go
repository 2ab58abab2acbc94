// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/inboxd/command/inbox-cli/rpccalls"
)

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c.String("owner"))
	if nil != err {
		return err
	}

	index, err := checkIndex(c.Uint("index"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Derive(&rpccalls.DeriveData{
		Kind:          c.String("kind"),
		Owner:         owner,
		Disambiguator: index,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
