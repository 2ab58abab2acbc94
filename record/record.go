// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/inboxd/fault"
)

// Record - one appended entry, immutable once stored
type Record struct {
	Sender    []byte // compressed secp256k1
	Payload   []byte // reference to the encrypted payload
	Ephemeral []byte // compressed secp256k1
	Timestamp int64  // sender supplied
	Signature []byte // R ‖ S ‖ recovery id
}

// Content - the bytes covered by the sender's signature
//
// sender ‖ LE32(len) ‖ payload ‖ ephemeral ‖ LE64(timestamp)
func (r *Record) Content() []byte {
	buffer := make([]byte, 0, fixedFieldsLength+lengthFieldSize+len(r.Payload))
	buffer = append(buffer, r.Sender...)
	buffer = appendUint32(buffer, uint32(len(r.Payload)))
	buffer = append(buffer, r.Payload...)
	buffer = append(buffer, r.Ephemeral...)
	buffer = appendUint64(buffer, uint64(r.Timestamp))
	return buffer
}

// Clone - deep copy
func (r *Record) Clone() Record {
	return Record{
		Sender:    cloneBytes(r.Sender),
		Payload:   cloneBytes(r.Payload),
		Ephemeral: cloneBytes(r.Ephemeral),
		Timestamp: r.Timestamp,
		Signature: cloneBytes(r.Signature),
	}
}

// write into a RecordLength buffer
func (r *Record) packInto(buffer []byte) error {
	if len(r.Payload) > MaximumPayload {
		return fault.PayloadTooLarge
	}
	if IdentityLength != len(r.Sender) || IdentityLength != len(r.Ephemeral) {
		return fault.InvalidKey
	}
	if SignatureLength != len(r.Signature) {
		return fault.MalformedSignature
	}

	n := copy(buffer, r.Sender)
	binary.LittleEndian.PutUint32(buffer[n:], uint32(len(r.Payload)))
	n += lengthFieldSize
	copy(buffer[n:], r.Payload)
	n += MaximumPayload
	n += copy(buffer[n:], r.Ephemeral)
	binary.LittleEndian.PutUint64(buffer[n:], uint64(r.Timestamp))
	n += timestampSize
	copy(buffer[n:], r.Signature)
	return nil
}

// read from a RecordLength buffer
func unpackRecord(buffer []byte) (Record, error) {
	n := 0
	take := func(length int) []byte {
		b := cloneBytes(buffer[n : n+length])
		n += length
		return b
	}

	sender := take(IdentityLength)
	payloadLength := binary.LittleEndian.Uint32(buffer[n:])
	n += lengthFieldSize
	if payloadLength > MaximumPayload {
		return Record{}, fault.Wrapf(fault.InvalidLayout, "payload length: %d", payloadLength)
	}
	payload := cloneBytes(buffer[n : n+int(payloadLength)])
	if !isZero(buffer[n+int(payloadLength) : n+MaximumPayload]) {
		return Record{}, fault.Wrapf(fault.InvalidLayout, "payload padding after: %d bytes", payloadLength)
	}
	n += MaximumPayload
	ephemeral := take(IdentityLength)
	timestamp := int64(binary.LittleEndian.Uint64(buffer[n:]))
	n += timestampSize
	signature := take(SignatureLength)

	return Record{
		Sender:    sender,
		Payload:   payload,
		Ephemeral: ephemeral,
		Timestamp: timestamp,
		Signature: signature,
	}, nil
}

func appendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// encoding is canonical: every byte not covered by a field is zero
func isZero(b []byte) bool {
	for _, v := range b {
		if 0 != v {
			return false
		}
	}
	return true
}

func cloneBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
