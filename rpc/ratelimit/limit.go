// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/metrics"
)

// Limits - sustained requests per second and burst for one service
type Limits struct {
	Rate  float64 `gluamapper:"rate" json:"rate"`
	Burst int     `gluamapper:"burst" json:"burst"`
}

// New - limiter for the given limits
func New(limits Limits) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(limits.Rate), limits.Burst)
}

// Apply - change the sustained rate of a running limiter
//
// the burst is fixed when the limiter is created
func Apply(limiter *rate.Limiter, limits Limits) {
	limiter.SetLimit(rate.Limit(limits.Rate))
}

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter, method string) error {
	metrics.RPCRequests.WithLabelValues(method).Inc()
	r := limiter.Reserve()
	if !r.OK() {
		metrics.RateLimitHits.WithLabelValues(method).Inc()
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Configuration - limits for each RPC service
type Configuration struct {
	Program  Limits `gluamapper:"program" json:"program"`
	Inbox    Limits `gluamapper:"inbox" json:"inbox"`
	Registry Limits `gluamapper:"registry" json:"registry"`
	Address  Limits `gluamapper:"address" json:"address"`
	Node     Limits `gluamapper:"node" json:"node"`
}

// Default - limits used when the configuration file omits them
func Default() Configuration {
	return Configuration{
		Program:  Limits{Rate: 200, Burst: 100},
		Inbox:    Limits{Rate: 200, Burst: 100},
		Registry: Limits{Rate: 200, Burst: 100},
		Address:  Limits{Rate: 500, Burst: 200},
		Node:     Limits{Rate: 10, Burst: 20},
	}
}
