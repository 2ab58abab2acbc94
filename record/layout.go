// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strings"

	"github.com/bitmark-inc/inboxd/fault"
)

// byte sizes for the various fields
const (
	IdentityLength      = 33
	AccountLength       = 32
	SignatureLength     = 65
	HostSignatureLength = 64
	MaximumPayload      = 1024

	lengthFieldSize = 4
	timestampSize   = 8

	// sender + ephemeral + timestamp + signature
	fixedFieldsLength = 2*IdentityLength + timestampSize + SignatureLength

	HeaderLength  = 1 + IdentityLength + AccountLength + 4 + 4 + 4
	RecordLength  = fixedFieldsLength + lengthFieldSize + MaximumPayload
	BindingLength = 1 + IdentityLength + SignatureLength + HostSignatureLength + 4
)

// Layout - a capacity preset for inbox slots
type Layout struct {
	Name     string
	Capacity int
}

// the presets
var (
	Message = Layout{Name: "message", Capacity: 100}
	Fixed   = Layout{Name: "fixed", Capacity: 10}
)

// Size - exact byte length of a slot in this layout
func (layout Layout) Size() int {
	return HeaderLength + layout.Capacity*RecordLength
}

// LayoutForName - select a preset by its configuration name
func LayoutForName(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Message.Name:
		return Message, nil
	case Fixed.Name:
		return Fixed, nil
	default:
		return Layout{}, fault.UnknownLayout
	}
}

func (layout Layout) String() string {
	return layout.Name
}
