// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the on-disk slot store
//
// A single LevelDB database is split into pools.  Each pool is
// defined by a prefix byte obtained from the prefix tag in the struct
// listing the available pools.
//
// Notes:
// 1. each pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++      = concatenation of byte data
// 3. address = 32 byte derived storage address
// 4. a value is always the complete slot, written in one Put
//
// Slots:
//
//   I ++ address               - inbox slot
//                                data: inbox header ++ (capacity * record slot)
//   R ++ address               - identity binding slot
//                                data: binding slot
//
// Version:
//
//   0x00 ++ "VERSION"          - database version (big endian uint32)
package storage
