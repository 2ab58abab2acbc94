// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runLookup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("account")
	if "" == name {
		var err error
		name, err = identityName(c, m)
		if nil != err {
			return err
		}
	}

	acc, err := accountFor(m, name)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Lookup(acc)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
