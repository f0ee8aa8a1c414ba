//
// (C) Copyright 2019-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging

import "sync/atomic"

// LogLevel is the most verbose class of message a logger emits.
type LogLevel int32

// Levels in increasing verbosity.
const (
	LogLevelDisabled LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelDebug
)

var levelNames = [...]string{
	LogLevelDisabled: "DISABLED",
	LogLevelError:    "ERROR",
	LogLevelInfo:     "INFO",
	LogLevelDebug:    "DEBUG",
}

// Set atomically stores the level.
func (ll *LogLevel) Set(newLevel LogLevel) {
	atomic.StoreInt32((*int32)(ll), int32(newLevel))
}

// Get atomically loads the level.
func (ll *LogLevel) Get() LogLevel {
	return LogLevel(atomic.LoadInt32((*int32)(ll)))
}

func (ll LogLevel) String() string {
	if ll < 0 || int(ll) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[ll]
}
