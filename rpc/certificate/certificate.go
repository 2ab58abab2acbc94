// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Fingerprint - SHA3-256 of the DER certificate
type Fingerprint [32]byte

// Get - verify a PEM certificate and key and return the TLS setup
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, Fingerprint, error) {
	var fin Fingerprint

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - read the certificate and key files then Get
func Load(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, Fingerprint, error) {
	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s cannot read certificate: %q  error: %s", name, certificateFile, err)
		return nil, Fingerprint{}, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s cannot read private key: %q  error: %s", name, keyFile, err)
		return nil, Fingerprint{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// fingerprint - compute the fingerprint of a certificate
//
// openssl x509 -outform DER -in inboxd-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) Fingerprint {
	return sha3.Sum256(certificate)
}
