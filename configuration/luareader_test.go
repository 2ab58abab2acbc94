// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/inboxd/configuration"
	"github.com/bitmark-inc/inboxd/fault"
)

type limits struct {
	Rate  float64 `gluamapper:"rate"`
	Burst int     `gluamapper:"burst"`
}

type sample struct {
	DataDirectory string   `gluamapper:"data_directory"`
	InboxLayout   string   `gluamapper:"inbox_layout"`
	Maximum       int      `gluamapper:"maximum"`
	Listen        []string `gluamapper:"listen"`
	Limits        limits   `gluamapper:"limits"`
	Name          string   `gluamapper:"name"`
}

var sampleFile = filepath.Join("testdata", "sample.conf")

func TestParseConfigurationFile(t *testing.T) {
	var s sample
	err := configuration.ParseConfigurationFile(sampleFile, &s)
	require.NoError(t, err, "parse")

	assert.Equal(t, "/var/lib/inboxd", s.DataDirectory, "data directory")
	assert.Equal(t, "fixed", s.InboxLayout, "layout")
	assert.Equal(t, 21, s.Maximum, "computed value")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, s.Listen, "listen")
	assert.Equal(t, limits{Rate: 12.5, Burst: 40}, s.Limits, "limits")
	assert.Equal(t, "default", s.Name, "name")
}

func TestParseConfigurationFileArguments(t *testing.T) {
	var s sample
	err := configuration.ParseConfigurationFile(sampleFile, &s, "override")
	require.NoError(t, err, "parse")
	assert.Equal(t, "override", s.Name, "name from arg[1]")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	var s sample
	err := configuration.ParseConfigurationFile(filepath.Join("testdata", "absent.conf"), &s)
	assert.Error(t, err, "missing file")
}

// write a chunk of Lua to a temporary configuration file
func luaFile(t *testing.T, source string) string {
	f, err := ioutil.TempFile("", "inboxd-*.conf")
	require.NoError(t, err, "temporary file")
	defer f.Close()

	_, err = f.WriteString(source)
	require.NoError(t, err, "write configuration")
	return f.Name()
}

func TestParseConfigurationFileEnvironment(t *testing.T) {
	os.Setenv("INBOXD_TEST_DIRECTORY", "/tmp/inboxd")
	defer os.Unsetenv("INBOXD_TEST_DIRECTORY")

	var s sample
	fileName := luaFile(t, `return { data_directory = os.getenv("INBOXD_TEST_DIRECTORY") }`)
	defer os.Remove(fileName)

	err := configuration.ParseConfigurationFile(fileName, &s)
	require.NoError(t, err, "parse")
	assert.Equal(t, "/tmp/inboxd", s.DataDirectory, "from environment")
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	var s sample

	number := luaFile(t, "return 42")
	defer os.Remove(number)
	err := configuration.ParseConfigurationFile(number, &s)
	assert.True(t, fault.IsErrInvalid(err), "number returned")

	nothing := luaFile(t, "local x = 1")
	defer os.Remove(nothing)
	err = configuration.ParseConfigurationFile(nothing, &s)
	assert.True(t, fault.IsErrInvalid(err), "nothing returned")
}

func TestParseConfigurationFileSyntax(t *testing.T) {
	var s sample
	fileName := luaFile(t, "return {")
	defer os.Remove(fileName)

	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Error(t, err, "syntax error")
}
