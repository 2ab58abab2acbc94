// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/inboxd/counter"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/ledger"
	"github.com/bitmark-inc/inboxd/metrics"
	"github.com/bitmark-inc/inboxd/rpc/certificate"
	"github.com/bitmark-inc/inboxd/rpc/listeners"
	"github.com/bitmark-inc/inboxd/rpc/node"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
	"github.com/bitmark-inc/inboxd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener
	services *server.Services

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// open connections
var connectionCountRPC = counter.New(metrics.Connections)

// Initialise - start the JSON RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, service ledger.Service, inboxes node.Pool, bindings node.Pool, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	s, services := server.Create(log, version, configuration.Limits, service, inboxes, bindings, connectionCountRPC)

	listener, err := listeners.NewRPC(
		configuration,
		log,
		connectionCountRPC,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = listener.Serve()
	if nil != err {
		listener.Stop()
		return err
	}

	globalData.listener = listener
	globalData.services = services

	// all data initialised
	globalData.initialised = true

	return nil
}

// SetLimits - apply reloaded rate limits
func SetLimits(limits ratelimit.Configuration) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialisedService
	}

	globalData.log.Infof("rate limits: %+v", limits)
	globalData.services.SetLimits(limits)
	return nil
}

// Finalise - stop the listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialisedService
	}

	globalData.log.Info("shutting down…")
	globalData.listener.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
