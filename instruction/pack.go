// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/util"
)

// Pack - Varint64(tag) followed by the fields in struct order
func (i *InitialiseInbox) Pack() (Packed, error) {
	if len(i.OwnerIdentity) > maxIdentityLength {
		return nil, fault.InvalidInstruction
	}
	message := util.ToVarint64(uint64(InitialiseInboxTag))
	message = appendBytes(message, i.OwnerIdentity)
	message = appendUint64(message, uint64(i.Disambiguator))
	return message, nil
}

// Pack - Varint64(tag) followed by the fields in struct order with the
// record signature last
func (a *AppendRecord) Pack() (Packed, error) {
	r := &a.Record
	if len(a.OwnerIdentity) > maxIdentityLength ||
		len(r.Sender) > maxIdentityLength ||
		len(r.Ephemeral) > maxIdentityLength ||
		len(r.Payload) > maxPayloadLength ||
		len(r.Signature) > maxSignatureLength {
		return nil, fault.InvalidInstruction
	}
	message := util.ToVarint64(uint64(AppendRecordTag))
	message = appendBytes(message, a.OwnerIdentity)
	message = appendUint64(message, uint64(a.Disambiguator))
	message = appendBytes(message, r.Sender)
	message = appendBytes(message, r.Payload)
	message = appendBytes(message, r.Ephemeral)
	message = append(message, util.ToZigZag64(r.Timestamp)...)
	message = appendBytes(message, r.Signature)
	return message, nil
}

// Pack - Varint64(tag) followed by the fields in struct order
func (r *ReadInbox) Pack() (Packed, error) {
	if len(r.OwnerIdentity) > maxIdentityLength {
		return nil, fault.InvalidInstruction
	}
	message := util.ToVarint64(uint64(ReadInboxTag))
	message = appendBytes(message, r.OwnerIdentity)
	message = appendUint64(message, uint64(r.Disambiguator))
	return message, nil
}

// Pack - Varint64(tag) followed by the fields in struct order
func (b *BindIdentity) Pack() (Packed, error) {
	if len(b.ECIdentity) > maxIdentityLength ||
		len(b.ECSignature) > maxSignatureLength ||
		len(b.HostSignature) > maxSignatureLength {
		return nil, fault.InvalidInstruction
	}
	message := util.ToVarint64(uint64(BindIdentityTag))
	message = appendBytes(message, b.ECIdentity)
	message = appendBytes(message, b.ECSignature)
	message = appendBytes(message, b.HostSignature)
	message = appendUint64(message, uint64(b.SequenceIndex))
	return message, nil
}

// append a bytes with length prefix
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append a a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	return append(buffer, valueBytes...)
}
