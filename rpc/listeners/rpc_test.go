// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/inboxd/counter"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/rpc/certificate"
	"github.com/bitmark-inc/inboxd/rpc/fixtures"
	"github.com/bitmark-inc/inboxd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

var fixtureDir = filepath.Join("..", "fixtures")

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}

	s := rpc.NewServer()
	require.Nil(t, s.Register(Add{}), "register")

	tlsConfig, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(fixtureDir),
		fixtures.Key(fixtureDir),
	)
	require.Nil(t, err, "certificate")

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), counter.New(nil), s, tlsConfig, fin)
	require.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	require.Nil(t, err, "wrong Serve")
	defer l.Stop()

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	require.Nil(t, err, "dial")

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRpcListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:1234"},
	}

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), counter.New(nil), rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerWhenEmptyListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{},
	}

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), counter.New(nil), rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerWhenInvalidListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"localhost:1234"},
	}

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), counter.New(nil), rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
	assert.Equal(t, fault.InvalidIpAddress, err, "wrong error")
}
