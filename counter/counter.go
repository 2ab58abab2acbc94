// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter - open connection count, optionally mirrored to a gauge
type Counter struct {
	value uint64
	gauge prometheus.Gauge
}

// New - counter reporting to gauge, which may be nil
func New(gauge prometheus.Gauge) *Counter {
	return &Counter{
		gauge: gauge,
	}
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	n := atomic.AddUint64(&c.value, 1)
	if nil != c.gauge {
		c.gauge.Inc()
	}
	return n
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	n := atomic.AddUint64(&c.value, ^uint64(0))
	if nil != c.gauge {
		c.gauge.Dec()
	}
	return n
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.value)
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
