// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before an abort
var panicLog struct {
	sync.Mutex
	log *logger.L
}

// Initialise - open the log channel used by Criticalf and Panicf
//
// must be called after logger.Initialise
func Initialise() error {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		return AlreadyInitialised
	}
	panicLog.log = logger.New("PANIC")
	if nil == panicLog.log {
		return InvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any pending output
func Finalise() {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		panicLog.log.Flush()
		panicLog.log = nil
	}
}

// Criticalf - log a formatted message prefixed with the caller's position
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log a formatted message then abort
//
// only used when an internal invariant is broken; a rejected call is
// reported with an error instead
func Panicf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
	message := fmt.Sprintf(format, arguments...)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		format = fmt.Sprintf("(%q:%d) ", file, line) + format
	}

	panicLog.Lock()
	defer panicLog.Unlock()

	if nil == panicLog.log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	panicLog.log.Criticalf(format, arguments...)
	panicLog.log.Flush()
}
