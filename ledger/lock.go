// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/inboxd/address"
)

// one mutex per storage address, dropped when no longer referenced
type keyedMutex struct {
	sync.Mutex
	entries map[address.Address]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	references int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		entries: make(map[address.Address]*lockEntry),
	}
}

// lock - acquire the address; call the returned function to release
func (k *keyedMutex) lock(a address.Address) func() {
	k.Lock()
	entry, ok := k.entries[a]
	if !ok {
		entry = &lockEntry{}
		k.entries[a] = entry
	}
	entry.references += 1
	k.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		k.Lock()
		entry.references -= 1
		if 0 == entry.references {
			delete(k.entries, a)
		}
		k.Unlock()
	}
}

// number of addresses currently held or waited on
func (k *keyedMutex) size() int {
	k.Lock()
	defer k.Unlock()
	return len(k.entries)
}
