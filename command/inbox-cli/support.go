// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/command/inbox-cli/rpccalls"
	"github.com/bitmark-inc/inboxd/eckey"
)

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// the --identity flag or the configured default
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return checkName(name)
}

// decrypt the keys of the current identity
func unlock(c *cli.Context, m *metadata) (rpccalls.Signer, error) {
	name, err := identityName(c, m)
	if nil != err {
		return rpccalls.Signer{}, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return rpccalls.Signer{}, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return rpccalls.Signer{}, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  account: %s\n", name, private.Host.Account())
	}

	return rpccalls.Signer{
		Host: private.Host,
		EC:   private.EC,
	}, nil
}

func newClient(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.config.Connect)
	}
	return rpccalls.NewClient(m.config.Connect, m.verbose, m.e)
}

// configured program or the one the daemon runs
func programFor(m *metadata, client *rpccalls.Client) (address.Address, error) {
	if "" != m.config.Program {
		return address.FromBase58(m.config.Program)
	}
	return client.Program()
}

// an identity name from the configuration or a base58 host account
func accountFor(m *metadata, s string) (*account.Account, error) {
	if _, ok := m.config.Identities[s]; ok {
		return m.config.Account(s)
	}
	return account.FromBase58(s)
}

// an identity name from the configuration or a hex EC identity
func ecIdentityFor(m *metadata, s string) ([]byte, error) {
	if _, ok := m.config.Identities[s]; ok {
		return m.config.ECIdentity(s)
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	if err := eckey.Validate(b); nil != err {
		return nil, err
	}
	return b, nil
}
