// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/hostsig"
	"github.com/bitmark-inc/inboxd/instruction"
	"github.com/bitmark-inc/inboxd/ledger"
	"github.com/bitmark-inc/inboxd/processor"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/storage/mocks"
	"github.com/bitmark-inc/inboxd/verifier"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	os.Mkdir(testingDirName, 0o700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	})

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

var program = address.Address{0x4c, 0x45, 0x44, 0x47}

// map backed pool behind a gomock handle
type memoryPool struct {
	sync.Mutex
	slots  map[string][]byte
	handle *mocks.MockHandle
	puts   int
}

func newMemoryPool(ctl *gomock.Controller) *memoryPool {
	p := &memoryPool{
		slots:  make(map[string][]byte),
		handle: mocks.NewMockHandle(ctl),
	}
	p.handle.EXPECT().Get(gomock.Any()).DoAndReturn(func(key []byte) []byte {
		p.Lock()
		defer p.Unlock()
		value, ok := p.slots[string(key)]
		if !ok {
			return nil
		}
		c := make([]byte, len(value))
		copy(c, value)
		return c
	}).AnyTimes()
	p.handle.EXPECT().Put(gomock.Any(), gomock.Any()).Do(func(key []byte, value []byte) {
		p.Lock()
		defer p.Unlock()
		c := make([]byte, len(value))
		copy(c, value)
		p.slots[string(key)] = c
		p.puts += 1
	}).AnyTimes()
	return p
}

func (p *memoryPool) writes() int {
	p.Lock()
	defer p.Unlock()
	return p.puts
}

type user struct {
	ec   *eckey.PrivateKey
	host *account.PrivateKey
}

func newUser(t *testing.T) *user {
	ec, err := eckey.NewPrivateKey()
	require.NoError(t, err, "ec key")
	host, err := account.NewPrivateKey()
	require.NoError(t, err, "host key")
	return &user{ec: ec, host: host}
}

func setupLedger(t *testing.T) (*ledger.Ledger, *memoryPool, *memoryPool, *gomock.Controller) {
	ctl := gomock.NewController(t)
	inboxes := newMemoryPool(ctl)
	bindings := newMemoryPool(ctl)
	p := processor.New(program, record.Fixed, hostsig.Native{})
	l := ledger.New(logger.New("ledger"), p, inboxes.handle, bindings.handle)
	return l, inboxes, bindings, ctl
}

func packed(t *testing.T, i instruction.Instruction) []byte {
	data, err := i.Pack()
	require.NoError(t, err, "pack")
	return data
}

func createInbox(t *testing.T, l *ledger.Ledger, owner *user) address.Address {
	slot := l.Processor().InboxAddress(owner.ec.PublicKey(), 0)
	tx := &ledger.Transaction{
		Slot:     slot,
		Allocate: true,
		Data:     packed(t, &instruction.InitialiseInbox{OwnerIdentity: owner.ec.PublicKey()}),
	}
	tx.Sign(owner.host)
	_, err := l.Submit(tx)
	require.NoError(t, err, "create inbox")
	return slot
}

func appendTransaction(t *testing.T, slot address.Address, owner *user, sender *user, timestamp int64) *ledger.Transaction {
	ephemeral, err := eckey.NewPrivateKey()
	require.NoError(t, err, "ephemeral")
	r := record.Record{
		Sender:    sender.ec.PublicKey(),
		Payload:   []byte("https://example.com/payload"),
		Ephemeral: ephemeral.PublicKey(),
		Timestamp: timestamp,
	}
	r.Signature, err = sender.ec.Sign(verifier.AppendDigest(slot, r.Content()))
	require.NoError(t, err, "sign record")

	tx := &ledger.Transaction{
		Slot: slot,
		Data: packed(t, &instruction.AppendRecord{OwnerIdentity: owner.ec.PublicKey(), Record: r}),
	}
	tx.Sign(sender.host)
	return tx
}

func TestCreateAppendRead(t *testing.T) {
	l, inboxes, bindings, ctl := setupLedger(t)
	defer ctl.Finish()

	owner := newUser(t)
	sender := newUser(t)

	slot := createInbox(t, l, owner)
	assert.Equal(t, 1, inboxes.writes(), "create writes")

	for _, ts := range []int64{30, 10, 20} {
		_, err := l.Submit(appendTransaction(t, slot, owner, sender, ts))
		require.NoError(t, err, "append %d", ts)
	}
	assert.Equal(t, 4, inboxes.writes(), "append writes")
	assert.Equal(t, 0, bindings.writes(), "binding writes")

	records, err := l.Read(owner.ec.PublicKey(), 0)
	require.NoError(t, err, "read")
	require.Len(t, records, 3)
	assert.Equal(t, int64(10), records[0].Timestamp)
	assert.Equal(t, int64(20), records[1].Timestamp)
	assert.Equal(t, int64(30), records[2].Timestamp)

	assert.Equal(t, 4, inboxes.writes(), "read must not write")
}

func TestUnsignedCreate(t *testing.T) {
	l, inboxes, _, ctl := setupLedger(t)
	defer ctl.Finish()

	owner := newUser(t)
	tx := &ledger.Transaction{
		Slot:     l.Processor().InboxAddress(owner.ec.PublicKey(), 0),
		Caller:   owner.host.Account(),
		Allocate: true,
		Data:     packed(t, &instruction.InitialiseInbox{OwnerIdentity: owner.ec.PublicKey()}),
	}

	_, err := l.Submit(tx)
	assert.Equal(t, fault.CodeMissingSigner, fault.Code(err), "unsigned create")
	assert.Equal(t, 0, inboxes.writes(), "no write")
}

func TestForgedTransactionSignature(t *testing.T) {
	l, inboxes, _, ctl := setupLedger(t)
	defer ctl.Finish()

	owner := newUser(t)
	other := newUser(t)

	tx := &ledger.Transaction{
		Slot:     l.Processor().InboxAddress(owner.ec.PublicKey(), 0),
		Allocate: true,
		Data:     packed(t, &instruction.InitialiseInbox{OwnerIdentity: owner.ec.PublicKey()}),
	}
	tx.Sign(other.host)
	tx.Caller = owner.host.Account()

	_, err := l.Submit(tx)
	assert.Equal(t, fault.CodeUnauthorized, fault.Code(err), "forged signature")
	assert.Equal(t, 0, inboxes.writes(), "no write")
}

func TestCreateTwice(t *testing.T) {
	l, inboxes, _, ctl := setupLedger(t)
	defer ctl.Finish()

	owner := newUser(t)
	createInbox(t, l, owner)

	tx := &ledger.Transaction{
		Slot:     l.Processor().InboxAddress(owner.ec.PublicKey(), 0),
		Allocate: true,
		Data:     packed(t, &instruction.InitialiseInbox{OwnerIdentity: owner.ec.PublicKey()}),
	}
	tx.Sign(owner.host)

	_, err := l.Submit(tx)
	assert.Equal(t, fault.CodeAlreadyInitialised, fault.Code(err), "second create")
	assert.Equal(t, 1, inboxes.writes(), "single write")
}

func TestReadMissingInbox(t *testing.T) {
	l, _, _, ctl := setupLedger(t)
	defer ctl.Finish()

	owner := newUser(t)
	_, err := l.Read(owner.ec.PublicKey(), 9)
	assert.Equal(t, fault.CodeNotInitialised, fault.Code(err), "missing inbox")
}

func TestUndecodableInstruction(t *testing.T) {
	l, _, _, ctl := setupLedger(t)
	defer ctl.Finish()

	_, err := l.Submit(&ledger.Transaction{Data: []byte{0x7f}})
	assert.Equal(t, fault.CodeInvalidInstruction, fault.Code(err), "bad tag")
}

func TestBindAndLookup(t *testing.T) {
	l, inboxes, bindings, ctl := setupLedger(t)
	defer ctl.Finish()

	u := newUser(t)
	host := u.host.Account().Bytes()

	_, _, err := l.Binding(host)
	assert.Equal(t, fault.NotInitialised, err, "lookup before bind")
	_, _, err = l.RecipientKey(host)
	assert.Equal(t, fault.NotInitialised, err, "key before bind")

	slot := l.Processor().BindingAddress(host)
	digest := verifier.BindingDigest(slot)
	ecSignature, err := u.ec.Sign(digest)
	require.NoError(t, err, "ec sign")

	tx := &ledger.Transaction{
		Slot:     slot,
		Allocate: true,
		Data: packed(t, &instruction.BindIdentity{
			ECIdentity:    u.ec.PublicKey(),
			ECSignature:   ecSignature,
			HostSignature: u.host.Sign(digest),
		}),
	}
	tx.Sign(u.host)

	_, err = l.Submit(tx)
	require.NoError(t, err, "bind")
	assert.Equal(t, 1, bindings.writes(), "binding writes")
	assert.Equal(t, 0, inboxes.writes(), "inbox writes")

	binding, a, err := l.Binding(host)
	require.NoError(t, err, "lookup")
	assert.Equal(t, slot, a, "binding address")
	assert.Equal(t, u.ec.PublicKey(), binding.ECIdentity, "bound identity")

	key, a, err := l.RecipientKey(host)
	require.NoError(t, err, "recipient key")
	assert.Equal(t, slot, a, "key address")
	assert.Equal(t, binding.ECIdentity, key, "recipient key")

	_, err = l.Submit(tx)
	assert.Equal(t, fault.CodeAlreadyInitialised, fault.Code(err), "second bind")
	assert.Equal(t, 1, bindings.writes(), "single binding write")
}

func TestConcurrentAppends(t *testing.T) {
	l, _, _, ctl := setupLedger(t)
	defer ctl.Finish()

	owner := newUser(t)
	slot := createInbox(t, l, owner)

	const senders = 8
	transactions := make([]*ledger.Transaction, senders)
	for i := range transactions {
		transactions[i] = appendTransaction(t, slot, owner, newUser(t), int64(i))
	}

	errs := make(chan error, senders)
	var wg sync.WaitGroup
	for _, tx := range transactions {
		wg.Add(1)
		go func(tx *ledger.Transaction) {
			defer wg.Done()
			_, err := l.Submit(tx)
			errs <- err
		}(tx)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err, "concurrent append")
	}

	records, err := l.Read(owner.ec.PublicKey(), 0)
	require.NoError(t, err, "read")
	assert.Len(t, records, senders, "no append lost")
}
