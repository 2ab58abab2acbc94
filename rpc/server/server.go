// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/inboxd/counter"
	"github.com/bitmark-inc/inboxd/ledger"
	"github.com/bitmark-inc/inboxd/rpc/derive"
	"github.com/bitmark-inc/inboxd/rpc/inbox"
	"github.com/bitmark-inc/inboxd/rpc/node"
	"github.com/bitmark-inc/inboxd/rpc/program"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
	"github.com/bitmark-inc/inboxd/rpc/registry"
	"github.com/bitmark-inc/logger"
)

// Services - the registered RPC services
type Services struct {
	Program  *program.Program
	Inbox    *inbox.Inbox
	Registry *registry.Registry
	Address  *derive.Address
	Node     *node.Node
}

// Create - register all services on a new server
func Create(log *logger.L, version string, limits ratelimit.Configuration, service ledger.Service, inboxes node.Pool, bindings node.Pool, rpcCount *counter.Counter) (*rpc.Server, *Services) {

	start := time.Now().UTC()
	p := service.Processor()

	services := &Services{
		Program:  program.New(log, limits.Program, service),
		Inbox:    inbox.New(log, limits.Inbox, service),
		Registry: registry.New(log, limits.Registry, service),
		Address:  derive.New(log, limits.Address, p),
		Node:     node.New(log, limits.Node, start, version, p, inboxes, bindings, rpcCount),
	}

	server := rpc.NewServer()

	_ = server.Register(services.Program)
	_ = server.Register(services.Inbox)
	_ = server.Register(services.Registry)
	_ = server.Register(services.Address)
	_ = server.Register(services.Node)

	return server, services
}

// SetLimits - apply new rates to the running services
func (services *Services) SetLimits(limits ratelimit.Configuration) {
	ratelimit.Apply(services.Program.Limiter, limits.Program)
	ratelimit.Apply(services.Inbox.Limiter, limits.Inbox)
	ratelimit.Apply(services.Registry.Limiter, limits.Registry)
	ratelimit.Apply(services.Address.Limiter, limits.Address)
	ratelimit.Apply(services.Node.Limiter, limits.Node)
}
