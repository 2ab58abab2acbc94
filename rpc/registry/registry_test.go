// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"encoding/hex"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/ledger/mocks"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/rpc/fixtures"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
	"github.com/bitmark-inc/inboxd/rpc/registry"
	"github.com/bitmark-inc/logger"
)

var limits = ratelimit.Limits{Rate: 100, Burst: 100}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host, _ := account.NewPrivateKey()
	a := address.Address{8, 8}
	binding := &record.Binding{
		Initialised:   true,
		ECIdentity:    []byte{0x03, 1, 2},
		ECSignature:   []byte{4, 5},
		HostSignature: []byte{6, 7},
		SequenceIndex: 11,
	}

	m := mocks.NewMockService(ctl)
	m.EXPECT().Binding(host.Account().Bytes()).Return(binding, a, nil).Times(1)

	r := registry.New(logger.New(fixtures.LogCategory), limits, m)

	var reply registry.GetReply
	err := r.Get(&registry.GetArguments{Account: host.Account()}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, a, reply.Address, "wrong address")
	assert.Equal(t, hex.EncodeToString(binding.ECIdentity), reply.ECIdentity, "wrong identity")
	assert.Equal(t, "0405", reply.ECSignature, "wrong ec signature")
	assert.Equal(t, "0607", reply.HostSignature, "wrong host signature")
	assert.Equal(t, uint32(11), reply.SequenceIndex, "wrong sequence index")
}

func TestGetNotBound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host, _ := account.NewPrivateKey()

	m := mocks.NewMockService(ctl)
	m.EXPECT().Binding(gomock.Any()).Return(nil, address.Address{}, fault.NotInitialised).Times(1)

	r := registry.New(logger.New(fixtures.LogCategory), limits, m)

	var reply registry.GetReply
	err := r.Get(&registry.GetArguments{Account: host.Account()}, &reply)
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}

func TestGetMissingAccount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := registry.New(logger.New(fixtures.LogCategory), limits, mocks.NewMockService(ctl))

	var reply registry.GetReply
	assert.Equal(t, fault.MissingParameters, r.Get(&registry.GetArguments{}, &reply), "nil account")
	assert.Equal(t, fault.MissingParameters, r.Get(&registry.GetArguments{Account: &account.Account{PublicKey: make([]byte, 32)}}, &reply), "zero account")
}

func TestKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host, _ := account.NewPrivateKey()
	a := address.Address{9, 9}
	key := []byte{0x02, 0xaa, 0xbb}

	m := mocks.NewMockService(ctl)
	m.EXPECT().RecipientKey(host.Account().Bytes()).Return(key, a, nil).Times(1)
	m.EXPECT().Binding(gomock.Any()).Times(0)

	r := registry.New(logger.New(fixtures.LogCategory), limits, m)

	var reply registry.KeyReply
	err := r.Key(&registry.KeyArguments{Account: host.Account()}, &reply)
	assert.Nil(t, err, "wrong Key")
	assert.Equal(t, a, reply.Address, "wrong address")
	assert.Equal(t, "02aabb", reply.ECIdentity, "wrong identity")
}

func TestKeyNotBound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host, _ := account.NewPrivateKey()

	m := mocks.NewMockService(ctl)
	m.EXPECT().RecipientKey(gomock.Any()).Return(nil, address.Address{}, fault.NotInitialised).Times(1)

	r := registry.New(logger.New(fixtures.LogCategory), limits, m)

	var reply registry.KeyReply
	assert.Equal(t, fault.NotInitialised, r.Key(&registry.KeyArguments{Account: host.Account()}, &reply), "wrong error")
	assert.Equal(t, fault.MissingParameters, r.Key(&registry.KeyArguments{}, &reply), "nil account")
}
