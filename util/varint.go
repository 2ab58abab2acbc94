// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, high bit set
// while more bytes follow; the ninth byte carries a full eight bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	if value < 0x80 {
		return append(result, byte(value))
	}

	for i := 0; i < Varint64MaximumBytes && value != 0; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		result = append(result, byte(value|ext))
		value >>= 7
	}
	return result
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer); {
		b := uint64(buffer[count])
		count += 1
		if count == Varint64MaximumBytes {
			return result | b<<shift, count
		}
		result |= b & 0x7f << shift
		if 0 == b&0x80 {
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// ClippedVarint64 - return a positive clipped value as an int
// any value outside the range minimum..maximum is an error
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}
	if value > uint64(maximum) || value < uint64(minimum) {
		return 0, 0
	}
	return int(value), count
}

// ToZigZag64 - map a signed value so small magnitudes encode short
func ToZigZag64(value int64) []byte {
	return ToVarint64(uint64(value<<1) ^ uint64(value>>63))
}

// FromZigZag64 - inverse of ToZigZag64, same count semantics as FromVarint64
func FromZigZag64(buffer []byte) (int64, int) {
	u, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}
	return int64(u>>1) ^ -int64(u&1), count
}
