// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

const (
	dir = "testing"

	// LogCategory - logger channel used by tests
	LogCategory = "testing"

	certificateFile = "test.crt"
	keyFile         = "test.key"
)

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	removeTestFiles()
	_ = os.Mkdir(dir, 0o700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeTestFiles()
}

func removeTestFiles() {
	_ = os.RemoveAll(dir)
}

// Certificate - PEM certificate in the fixture directory
func Certificate(fixtureDir string) string {
	return readFile(filepath.Join(fixtureDir, certificateFile))
}

// Key - PEM private key in the fixture directory
func Key(fixtureDir string) string {
	return readFile(filepath.Join(fixtureDir, keyFile))
}

// CertificateFile - path of the fixture certificate
func CertificateFile(fixtureDir string) string {
	return filepath.Join(fixtureDir, certificateFile)
}

// KeyFile - path of the fixture private key
func KeyFile(fixtureDir string) string {
	return filepath.Join(fixtureDir, keyFile)
}

func readFile(name string) string {
	data, err := ioutil.ReadFile(name)
	if nil != err {
		panic(err)
	}
	return string(data)
}
