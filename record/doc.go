// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - fixed width slot layouts
//
// Every slot reserves the full width for each record so the size of a
// slot depends only on its layout.  All integers are little endian.
//
// inbox slot:
//
//   0    u8      state
//   1    [33]    owner identity (compressed secp256k1)
//   34   [32]    owner account (ed25519)
//   66   u32     disambiguator
//   70   u32     next index
//   74   u32     record count
//   78   n × RecordLength
//
// record:
//
//   [33] sender ‖ u32 payload length ‖ [1024] payload ‖ [33] ephemeral ‖ i64 timestamp ‖ [65] signature
//
// binding slot:
//
//   u8 initialised ‖ [33] ec identity ‖ [65] ec signature ‖ [64] host signature ‖ u32 sequence index
package record
