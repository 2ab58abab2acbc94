// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/inboxd/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
//
// arg[0] is the file name; arg[1..n] are the optional extra arguments
func ParseConfigurationFile(fileName string, config interface{}, arguments ...string) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	for _, a := range arguments {
		arg.Append(lua.LString(a))
	}
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); nil != err {
		return err
	}
	return mapResult(L, config)
}

// the chunk must leave one table on the stack
func mapResult(L *lua.LState, config interface{}) error {
	if 0 == L.GetTop() {
		return fault.Wrapf(fault.ConfigurationFailed, "no table returned")
	}
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.Wrapf(fault.ConfigurationFailed, "returned: %s  expected: table", L.Get(L.GetTop()).Type())
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
