// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/metrics"
)

func TestObserveInstruction(t *testing.T) {
	ok := metrics.Instructions.WithLabelValues("AppendRecord", "Success")
	full := metrics.Instructions.WithLabelValues("AppendRecord", "InboxFull")

	okBefore := testutil.ToFloat64(ok)
	fullBefore := testutil.ToFloat64(full)

	metrics.ObserveInstruction("AppendRecord", nil, time.Now())
	metrics.ObserveInstruction("AppendRecord", fault.InboxFull, time.Now())
	metrics.ObserveInstruction("AppendRecord", fault.Wrapf(fault.InboxFull, "capacity: %d", 100), time.Now())

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok), "success count")
	assert.Equal(t, fullBefore+2, testutil.ToFloat64(full), "inbox full count")
}
