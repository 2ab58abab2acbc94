// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hostsig

import (
	"encoding/binary"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/inboxd/fault"
)

// layout of the verify instruction
const (
	headerLength       = 16
	signatureOffset    = headerLength
	publicKeyOffset    = signatureOffset + ed25519.SignatureSize
	messageOffset      = publicKeyOffset + ed25519.PublicKeySize
	sameInstruction    = 0xffff
	signatureCount     = 1
	headerPadding      = 0
	MaximumMessageSize = 0xffff - messageOffset
)

// Verifier - host capability that checks an ed25519 proof
//
// the data is a verify instruction as built by NewInstruction
type Verifier interface {
	Verify(instruction []byte) error
}

// Request - decoded verify instruction
type Request struct {
	Signature []byte
	PublicKey []byte
	Message   []byte
}

// NewInstruction - build the verify instruction for one signature
//
//   0   u8   count (1)
//   1   u8   padding
//   2   u16  signature offset
//   4   u16  signature instruction index
//   6   u16  public key offset
//   8   u16  public key instruction index
//   10  u16  message offset
//   12  u16  message length
//   14  u16  message instruction index
//   16  ...  signature ‖ public key ‖ message
func NewInstruction(publicKey []byte, signature []byte, message []byte) ([]byte, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}
	if ed25519.SignatureSize != len(signature) {
		return nil, fault.MalformedSignature
	}
	if len(message) > MaximumMessageSize {
		return nil, fault.InvalidInstruction
	}

	buffer := make([]byte, messageOffset+len(message))
	buffer[0] = signatureCount
	buffer[1] = headerPadding
	binary.LittleEndian.PutUint16(buffer[2:], signatureOffset)
	binary.LittleEndian.PutUint16(buffer[4:], sameInstruction)
	binary.LittleEndian.PutUint16(buffer[6:], publicKeyOffset)
	binary.LittleEndian.PutUint16(buffer[8:], sameInstruction)
	binary.LittleEndian.PutUint16(buffer[10:], messageOffset)
	binary.LittleEndian.PutUint16(buffer[12:], uint16(len(message)))
	binary.LittleEndian.PutUint16(buffer[14:], sameInstruction)

	copy(buffer[signatureOffset:], signature)
	copy(buffer[publicKeyOffset:], publicKey)
	copy(buffer[messageOffset:], message)
	return buffer, nil
}

// Parse - decode a single signature verify instruction
//
// offsets must reference this instruction and lie within it
func Parse(instruction []byte) (*Request, error) {
	if len(instruction) < headerLength {
		return nil, fault.InvalidInstruction
	}
	if signatureCount != instruction[0] {
		return nil, fault.InvalidInstruction
	}

	field := func(n int) int {
		return int(binary.LittleEndian.Uint16(instruction[2+2*n:]))
	}
	sigOffset, sigIndex := field(0), field(1)
	keyOffset, keyIndex := field(2), field(3)
	msgOffset, msgLength, msgIndex := field(4), field(5), field(6)

	if sameInstruction != sigIndex || sameInstruction != keyIndex || sameInstruction != msgIndex {
		return nil, fault.InvalidInstruction
	}

	extract := func(offset int, length int) ([]byte, error) {
		if offset < headerLength || offset+length > len(instruction) {
			return nil, fault.InvalidInstruction
		}
		return instruction[offset : offset+length], nil
	}

	signature, err := extract(sigOffset, ed25519.SignatureSize)
	if nil != err {
		return nil, err
	}
	publicKey, err := extract(keyOffset, ed25519.PublicKeySize)
	if nil != err {
		return nil, err
	}
	message, err := extract(msgOffset, msgLength)
	if nil != err {
		return nil, err
	}
	return &Request{
		Signature: signature,
		PublicKey: publicKey,
		Message:   message,
	}, nil
}

// Native - verifier running in process with ed25519
type Native struct{}

// Verify - parse and check the proof
func (Native) Verify(instruction []byte) error {
	request, err := Parse(instruction)
	if nil != err {
		return err
	}
	if !ed25519.Verify(request.PublicKey, request.Message, request.Signature) {
		return fault.Unauthorized
	}
	return nil
}
