// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	cleanupInterval   = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

// recently read or written slots, keyed by prefixed key
//
// a deleted key is remembered so a later Get does not fall through
// to the database
type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// second result is false if the key is not cached; a cached delete
// returns nil, true
func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true
	}

	return data.value, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}

func (c *dbCache) Count() int {
	return c.cache.ItemCount()
}
