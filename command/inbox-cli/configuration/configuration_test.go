// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/command/inbox-cli/configuration"
	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/fault"
)

func newKeys(t *testing.T) (*account.PrivateKey, *eckey.PrivateKey) {
	host, err := account.NewPrivateKey()
	require.NoError(t, err, "host key")
	ec, err := eckey.NewPrivateKey()
	require.NoError(t, err, "ec key")
	return host, ec
}

func TestAddIdentityAndUnlock(t *testing.T) {
	config := configuration.New("127.0.0.1:2130")
	host, ec := newKeys(t)

	err := config.AddIdentity("alice", "first", host, ec, "alice-password")
	require.NoError(t, err, "add identity")
	assert.Equal(t, "alice", config.DefaultIdentity, "default identity")

	acc, err := config.Account("alice")
	require.NoError(t, err, "account")
	assert.Equal(t, host.Account().Bytes(), acc.Bytes(), "account")

	ecIdentity, err := config.ECIdentity("alice")
	require.NoError(t, err, "ec identity")
	assert.Equal(t, ec.PublicKey(), ecIdentity, "ec identity")

	private, err := config.Private("alice-password", "alice")
	require.NoError(t, err, "unlock")
	assert.Equal(t, host.Bytes(), private.Host.Bytes(), "host key")
	assert.Equal(t, ec.Bytes(), private.EC.Bytes(), "ec key")
	assert.Equal(t, "first", private.Description, "description")

	_, err = config.Private("wrong", "alice")
	assert.Equal(t, fault.WrongPassword, err, "wrong password")

	err = config.AddIdentity("alice", "again", host, ec, "x")
	assert.Equal(t, fault.IdentityNameAlreadyExists, err, "duplicate")
}

func TestReceiveOnlyIdentity(t *testing.T) {
	config := configuration.New("127.0.0.1:2130")
	host, _ := newKeys(t)

	err := config.AddReceiveOnlyIdentity("bob", "friend", host.Account().String(), "")
	require.NoError(t, err, "add receive only")

	_, err = config.Private("anything", "bob")
	assert.Equal(t, fault.NotPrivateKey, err, "no private data")

	err = config.AddReceiveOnlyIdentity("carol", "friend", host.Account().String(), "0011")
	assert.Error(t, err, "invalid ec identity")

	_, err = config.Identity("dave")
	assert.Equal(t, fault.IdentityNameNotFound, err, "missing identity")
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "inbox-cli")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "inbox-cli.json")

	config := configuration.New("localhost:2130")
	config.Program = "Bs8R8nqWKtG7XegRsN1WoBcXfxhKdJfee5zBie4hveeT"
	host, ec := newKeys(t)
	require.NoError(t, config.AddIdentity("alice", "first", host, ec, "password"), "add")

	require.NoError(t, configuration.Save(fileName, config), "first save")
	require.NoError(t, configuration.Save(fileName, config), "second save")

	_, err = os.Stat(fileName + ".bk")
	assert.NoError(t, err, "backup kept")

	info, err := os.Stat(fileName)
	require.NoError(t, err, "saved file")
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "file permissions")

	loaded, err := configuration.Load(fileName)
	require.NoError(t, err, "load")
	assert.Equal(t, config, loaded, "loaded configuration")

	private, err := loaded.Private("password", "alice")
	require.NoError(t, err, "unlock after load")
	assert.Equal(t, ec.Bytes(), private.EC.Bytes(), "ec key after load")
}
