// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inboxd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/inboxd/data", util.EnsureAbsolute("/var/lib/inboxd", "data"))
	assert.Equal(t, "/etc/inboxd.conf", util.EnsureAbsolute("/var/lib/inboxd", "/etc/./inboxd.conf"))
}
