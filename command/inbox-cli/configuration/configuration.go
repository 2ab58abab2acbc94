// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the client identity file
//
// JSON holding the server connection and a set of named identities.
// Each identity pairs an ed25519 host key with a secp256k1 EC key;
// both private keys are kept encrypted under the identity password.
package configuration

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/inboxd/account"
	"github.com/bitmark-inc/inboxd/command/inbox-cli/encrypt"
	"github.com/bitmark-inc/inboxd/eckey"
	"github.com/bitmark-inc/inboxd/fault"
)

const (
	hostKeyLength = 64
	ecKeyLength   = 32
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Connect         string              `json:"connect"`
	Program         string              `json:"program,omitempty"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	ECIdentity  string `json:"ec_identity"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Private - decrypted keys of one identity
type Private struct {
	Host        *account.PrivateKey
	EC          *eckey.PrivateKey
	Description string
}

// New - empty configuration
func New(connect string) *Configuration {
	return &Configuration{
		Connect:    connect,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - write to a temporary file then swap it in, keeping one backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}
	b = append(b, '\n')

	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if nil != err {
		return err
	}
	_, err = f.Write(b)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		os.Remove(tempFile)
		return err
	}

	if err := os.Remove(previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	if err := os.Rename(filename, previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}
	return &id, nil
}

// Account - public host account of a named identity
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return account.FromBase58(id.Account)
}

// ECIdentity - public EC key of a named identity
func (config *Configuration) ECIdentity(name string) ([]byte, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return hex.DecodeString(id.ECIdentity)
}

// AddIdentity - store an encrypted identity
func (config *Configuration) AddIdentity(name string, description string, host *account.PrivateKey, ec *eckey.PrivateKey, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	salt, key, err := encrypt.HashPassword(password)
	if nil != err {
		return err
	}

	plaintext := make([]byte, 0, hostKeyLength+ecKeyLength)
	plaintext = append(plaintext, host.Bytes()...)
	plaintext = append(plaintext, ec.Bytes()...)

	data, err := encrypt.Encrypt(plaintext, key)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     host.Account().String(),
		ECIdentity:  hex.EncodeToString(ec.PublicKey()),
		Data:        data,
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}
	return nil
}

// AddReceiveOnlyIdentity - store the public part of somebody else's identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string, ecIdentity string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	if _, err := account.FromBase58(acc); nil != err {
		return err
	}
	if "" != ecIdentity {
		b, err := hex.DecodeString(ecIdentity)
		if nil != err {
			return err
		}
		if err := eckey.Validate(b); nil != err {
			return err
		}
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
		ECIdentity:  ecIdentity,
	}
	return nil
}

// Private - decrypt the keys of a named identity
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	if "" == id.Data || "" == id.Salt {
		return nil, fault.NotPrivateKey
	}

	salt := new(encrypt.Salt)
	if err := salt.UnmarshalText([]byte(id.Salt)); nil != err {
		return nil, err
	}

	key, err := encrypt.GenerateKey(password, salt)
	if nil != err {
		return nil, err
	}

	plaintext, err := encrypt.Decrypt(id.Data, key)
	if nil != err {
		return nil, err
	}
	if hostKeyLength+ecKeyLength != len(plaintext) {
		return nil, fault.InvalidKeyLength
	}

	host, err := account.PrivateKeyFromBytes(plaintext[:hostKeyLength])
	if nil != err {
		return nil, err
	}
	ec, err := eckey.PrivateKeyFromBytes(plaintext[hostKeyLength:])
	if nil != err {
		return nil, err
	}

	return &Private{
		Host:        host,
		EC:          ec,
		Description: id.Description,
	}, nil
}
