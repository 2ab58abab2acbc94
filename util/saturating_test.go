// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inboxd/util"
)

func TestSaturatingIncrement32(t *testing.T) {
	v, saturated := util.SaturatingIncrement32(7)
	assert.Equal(t, uint32(8), v)
	assert.False(t, saturated)

	v, saturated = util.SaturatingIncrement32(math.MaxUint32 - 1)
	assert.Equal(t, uint32(math.MaxUint32), v)
	assert.False(t, saturated)

	v, saturated = util.SaturatingIncrement32(math.MaxUint32)
	assert.Equal(t, uint32(math.MaxUint32), v, "never wraps")
	assert.True(t, saturated)
}
