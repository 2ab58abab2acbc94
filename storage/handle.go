// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - access to one pool of slots
type Handle interface {
	Get(key []byte) []byte
	Has(key []byte) bool
	Put(key []byte, value []byte)
	Delete(key []byte)
}

// PoolHandle - a prefixed region of the slot database
type PoolHandle struct {
	prefix   byte
	limit    []byte
	readOnly bool
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a complete slot
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Put nil database")
		return
	}
	if p.readOnly {
		logger.Panic("pool.Put read only database")
		return
	}

	prefixedKey := p.prefixKey(key)
	err := poolData.db.Put(prefixedKey, value, nil)
	logger.PanicIfError("pool.Put", err)

	poolData.cache.Set(dbPut, string(prefixedKey), copyBytes(value))
}

// Delete - remove a slot
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Delete nil database")
		return
	}

	prefixedKey := p.prefixKey(key)
	err := poolData.db.Delete(prefixedKey, nil)
	logger.PanicIfError("pool.Delete", err)

	poolData.cache.Set(dbDelete, string(prefixedKey), nil)
}

// Get - read a slot
//
// returns nil if the key is not present; the result is a copy and
// may be modified by the caller
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return nil
	}

	prefixedKey := p.prefixKey(key)
	if value, found := poolData.cache.Get(string(prefixedKey)); found {
		return copyBytes(value)
	}

	value, err := poolData.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)

	poolData.cache.Set(dbPut, string(prefixedKey), copyBytes(value))
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return false
	}

	prefixedKey := p.prefixKey(key)
	if value, found := poolData.cache.Get(string(prefixedKey)); found {
		return nil != value
	}

	value, err := poolData.db.Has(prefixedKey, nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// Count - number of slots in the pool
func (p *PoolHandle) Count() int {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return 0
	}

	maxRange := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
	iter := poolData.db.NewIterator(&maxRange, nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		n += 1
	}
	logger.PanicIfError("pool.Count", iter.Error())
	return n
}

func copyBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
