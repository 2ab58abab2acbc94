// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"math"

	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/record"
	"github.com/bitmark-inc/inboxd/util"
)

// cursor over a packed instruction
type reader struct {
	buffer Packed
	n      int
	failed bool
}

func (r *reader) bytes(maximum int) []byte {
	if r.failed {
		return nil
	}
	length, count := util.FromVarint64(r.buffer[r.n:])
	if 0 == count || length > uint64(maximum) || uint64(len(r.buffer)-r.n-count) < length {
		r.failed = true
		return nil
	}
	r.n += count
	b := make([]byte, length)
	copy(b, r.buffer[r.n:r.n+int(length)])
	r.n += int(length)
	return b
}

func (r *reader) uint32() uint32 {
	if r.failed {
		return 0
	}
	value, count := util.FromVarint64(r.buffer[r.n:])
	if 0 == count || value > math.MaxUint32 {
		r.failed = true
		return 0
	}
	r.n += count
	return uint32(value)
}

func (r *reader) int64() int64 {
	if r.failed {
		return 0
	}
	value, count := util.FromZigZag64(r.buffer[r.n:])
	if 0 == count {
		r.failed = true
		return 0
	}
	r.n += count
	return value
}

// Unpack - turn a byte slice into an instruction
//
// must cast result to correct type
//
// e.g.
//   switch tx := result.(type) {
//   case *instruction.AppendRecord:
//
// the whole buffer must be consumed
func (packed Packed) Unpack() (Instruction, error) {
	tag, n := util.ClippedVarint64(packed, int(NullTag)+1, int(InvalidTag)-1)
	if 0 == n {
		return nil, fault.Wrapf(fault.InvalidInstruction, "unknown tag")
	}

	r := &reader{buffer: packed, n: n}
	var result Instruction

	switch TagType(tag) {
	case InitialiseInboxTag:
		result = &InitialiseInbox{
			OwnerIdentity: r.bytes(maxIdentityLength),
			Disambiguator: r.uint32(),
		}

	case AppendRecordTag:
		a := &AppendRecord{
			OwnerIdentity: r.bytes(maxIdentityLength),
			Disambiguator: r.uint32(),
		}
		a.Record = record.Record{
			Sender:    r.bytes(maxIdentityLength),
			Payload:   r.bytes(maxPayloadLength),
			Ephemeral: r.bytes(maxIdentityLength),
			Timestamp: r.int64(),
			Signature: r.bytes(maxSignatureLength),
		}
		result = a

	case ReadInboxTag:
		result = &ReadInbox{
			OwnerIdentity: r.bytes(maxIdentityLength),
			Disambiguator: r.uint32(),
		}

	case BindIdentityTag:
		result = &BindIdentity{
			ECIdentity:    r.bytes(maxIdentityLength),
			ECSignature:   r.bytes(maxSignatureLength),
			HostSignature: r.bytes(maxSignatureLength),
			SequenceIndex: r.uint32(),
		}
	}

	if r.failed {
		return nil, fault.Wrapf(fault.InvalidInstruction, "truncated %s", TagType(tag))
	}
	if r.n != len(packed) {
		return nil, fault.Wrapf(fault.InvalidInstruction, "%d trailing bytes", len(packed)-r.n)
	}
	return result, nil
}
