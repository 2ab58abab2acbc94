// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/eckey"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	acc := c.String("account")
	ecIdentity := c.String("ec")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
		fmt.Fprintf(m.e, "ec: %s\n", ecIdentity)
	}

	if "" != acc {
		err = m.config.AddReceiveOnlyIdentity(name, description, acc, ecIdentity)
		if nil != err {
			return err
		}

	} else if "" == ecIdentity {
		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		host, err := account.NewPrivateKey()
		if nil != err {
			return err
		}
		ec, err := eckey.NewPrivateKey()
		if nil != err {
			return err
		}

		err = m.config.AddIdentity(name, description, host, ec, password)
		if nil != err {
			return err
		}

	} else {
		return ErrIncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}
