// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/counter"
	"github.com/bitmark-inc/inboxd/processor"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	methodInfo = "Node.Info"
)

// Pool - a slot pool that can report its size
type Pool interface {
	Count() int
}

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Processor *processor.Processor
	Inboxes   Pool
	Bindings  Pool
	counter   *counter.Counter
}

// New - create the Node service
func New(log *logger.L, limits ratelimit.Limits, start time.Time, version string, p *processor.Processor, inboxes Pool, bindings Pool, count *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   ratelimit.New(limits),
		Start:     start,
		Version:   version,
		Processor: p,
		Inboxes:   inboxes,
		Bindings:  bindings,
		counter:   count,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version  string          `json:"version"`
	Uptime   string          `json:"uptime"`
	Program  address.Address `json:"program"`
	Layout   string          `json:"layout"`
	Capacity int             `json:"capacity"`
	SlotSize int             `json:"slotSize"`
	RPCs     uint64          `json:"rpcs"`
	Inboxes  int             `json:"inboxes"`
	Bindings int             `json:"bindings"`
}

// Info - status of the daemon
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter, methodInfo); nil != err {
		return err
	}

	layout := node.Processor.Layout()

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).Round(time.Second).String()
	reply.Program = node.Processor.Program()
	reply.Layout = layout.Name
	reply.Capacity = layout.Capacity
	reply.SlotSize = layout.Size()
	if nil != node.counter {
		reply.RPCs = node.counter.Uint64()
	}
	if nil != node.Inboxes {
		reply.Inboxes = node.Inboxes.Count()
	}
	if nil != node.Bindings {
		reply.Bindings = node.Bindings.Count()
	}
	return nil
}
