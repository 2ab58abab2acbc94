// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verifier

import (
	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/hostsig"
)

// message domain tags
const (
	AccountTag = "ZKLAccount"
	InboxTag   = "ZKLInbox"
)

// DomainMessage - "<tag>:" + base58(address) followed by any content
func DomainMessage(tag string, a address.Address, content ...[]byte) []byte {
	message := []byte(tag + ":" + a.String())
	for _, c := range content {
		message = append(message, c...)
	}
	return message
}

// Digest - the 32 byte hash every signature covers
func Digest(message []byte) []byte {
	return eckey.Keccak256(message)
}

// BindingDigest - digest signed by both keys of a binding
func BindingDigest(a address.Address) []byte {
	return Digest(DomainMessage(AccountTag, a))
}

// AppendDigest - digest signed by the sender of a record
func AppendDigest(a address.Address, content []byte) []byte {
	return Digest(DomainMessage(InboxTag, a, content))
}

// VerifyEC - the recovered signer must be the claimed identity
//
// an absent signature has no recovery id and is MalformedSignature
func VerifyEC(digest []byte, signature []byte, claimed []byte) error {
	return eckey.Verify(digest, signature, claimed)
}

// VerifyHost - ed25519 proof over the same digest, checked by the host
//
// any failure, including an absent signature, is Unauthorized
func VerifyHost(v hostsig.Verifier, host []byte, digest []byte, signature []byte) error {
	if nil == v || 0 == len(signature) {
		return fault.Unauthorized
	}
	instruction, err := hostsig.NewInstruction(host, signature, digest)
	if nil != err {
		return fault.Wrapf(fault.Unauthorized, "host proof: %s", err)
	}
	if err := v.Verify(instruction); nil != err {
		return fault.Wrapf(fault.Unauthorized, "host proof: %s", err)
	}
	return nil
}

// VerifyBinding - both signatures over "ZKLAccount:" + address
func VerifyBinding(v hostsig.Verifier, a address.Address, host []byte, ecIdentity []byte, ecSignature []byte, hostSignature []byte) error {
	digest := BindingDigest(a)
	if err := VerifyEC(digest, ecSignature, ecIdentity); nil != err {
		return err
	}
	return VerifyHost(v, host, digest, hostSignature)
}

// VerifyAppend - the sender must have signed this record for this inbox
func VerifyAppend(a address.Address, content []byte, signature []byte, sender []byte) error {
	err := VerifyEC(AppendDigest(a, content), signature, sender)
	switch err {
	case nil:
		return nil
	case fault.InvalidKey, fault.MalformedSignature:
		return err
	default:
		return fault.Wrapf(fault.Unauthorized, "sender signature: %s", err)
	}
}
