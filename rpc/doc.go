// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC over TLS
//
// services:
//
//   Program.Process  - submit one signed instruction
//   Inbox.Read       - records of an inbox sorted by timestamp
//   Registry.Get     - identity bound to a host account
//   Registry.Key     - only the bound EC identity, for senders
//   Address.Derive   - storage address of an inbox or binding
//   Node.Info        - daemon status
package rpc
