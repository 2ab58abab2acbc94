// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/eckey"
)

type generatedKeys struct {
	Account        string `json:"account"`
	HostPrivateKey string `json:"host_private_key"`
	ECIdentity     string `json:"ec_identity"`
	ECPrivateKey   string `json:"ec_private_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	host, err := account.NewPrivateKey()
	if nil != err {
		return err
	}
	ec, err := eckey.NewPrivateKey()
	if nil != err {
		return err
	}

	keys := generatedKeys{
		Account:        host.Account().String(),
		HostPrivateKey: hex.EncodeToString(host.Bytes()),
		ECIdentity:     hex.EncodeToString(ec.PublicKey()),
		ECPrivateKey:   hex.EncodeToString(ec.Bytes()),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "generated account: %s\n", keys.Account)
	}

	return printJson(m.w, keys)
}
