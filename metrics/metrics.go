// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus collectors for the daemon
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bitmark-inc/inboxd/fault"
)

const namespace = "inboxd"

var (
	// Instructions - processed instructions by tag and failure code
	Instructions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instructions_total",
			Help:      "Total instructions processed",
		},
		[]string{"tag", "code"},
	)

	// ProcessDuration - time spent in the processor, including slot load/store
	ProcessDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "process_duration_seconds",
			Help:      "Instruction processing duration",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"tag"},
	)

	// SlotWrites - slots persisted by pool
	SlotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_writes_total",
			Help:      "Total slots written",
		},
		[]string{"pool"},
	)

	// RPCRequests - RPC calls by method
	RPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total RPC requests",
		},
		[]string{"method"},
	)

	// RateLimitHits - RPC calls refused by the rate limiter
	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_hits_total",
			Help:      "Total rate limited RPC requests",
		},
		[]string{"method"},
	)

	// Slots - allocated slots by pool, sampled periodically
	Slots = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "slots",
			Help:      "Allocated slots",
		},
		[]string{"pool"},
	)

	// Connections - open RPC connections
	Connections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rpc_connections",
			Help:      "Current RPC connections",
		},
	)
)

// ObserveInstruction - count one processed instruction
func ObserveInstruction(tag string, err error, started time.Time) {
	Instructions.WithLabelValues(tag, fault.Code(err).String()).Inc()
	ProcessDuration.WithLabelValues(tag).Observe(time.Since(started).Seconds())
}
