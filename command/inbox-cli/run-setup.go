// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/command/inbox-cli/configuration"
	"github.com/bitmark-inc/inboxd/eckey"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	program := c.String("program")
	if "" != program {
		if _, err := address.FromBase58(program); nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "program: %s\n", program)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := configuration.New(connect)
	config.Program = program

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

	err = config.AddIdentity(name, description, host, ec, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}
