// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// logger.Initialise must have been called first
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panic - log the error with its caller then panic with the error
// itself so that recover sees the classified value
func Panic(err error) {
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) %s", file, line, err)
	} else {
		internalCriticalf("%s", err)
	}
	panic(err)
}

// Panicf - panic with a formatted message wrapping a classified error
func Panicf(err error, format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) %s: %s", file, line, err, message)
	} else {
		internalCriticalf("%s: %s", err, message)
	}
	panic(fmt.Errorf("%w: %s", err, message))
}

// internal routine that ignores an uninitialised logger channel;
// library users that never call Initialise only see the panic
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
