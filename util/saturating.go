// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math"
)

// SaturatingIncrement32 - add one unless already at the maximum
//
// the second value is true when no increment was possible
func SaturatingIncrement32(value uint32) (uint32, bool) {
	if math.MaxUint32 == value {
		return value, true
	}
	return value + 1, false
}
