//
// (C) Copyright 2019-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging

import (
	"io"
	"log"
)

const (
	// DefaultLogLevel is the level of a new command line logger.
	DefaultLogLevel = LogLevelInfo

	debugLogFlags = log.Lmicroseconds | log.Lshortfile
	testLogFlags  = log.LstdFlags
)

// NewCommandLineLoggerTo returns a command line logger writing to the
// supplied streams. Informational messages are unadorned, errors carry
// an "ERROR: " prefix and debug messages carry a timestamp and source.
func NewCommandLineLoggerTo(stdout, stderr io.Writer) *LeveledLogger {
	return newLeveledLogger(DefaultLogLevel,
		newSink(LogLevelDebug, stderr, "DEBUG ", debugLogFlags),
		newSink(LogLevelInfo, stdout, "", 0),
		newSink(LogLevelError, stderr, "ERROR: ", 0),
	)
}

// NewTestLogger returns a debug-level logger sending everything, each
// line tagged with the prefix and level, into the returned buffer.
func NewTestLogger(prefix string) (*LeveledLogger, *LogBuffer) {
	var buf LogBuffer
	tag := func(level LogLevel) string {
		return prefix + " " + level.String() + " "
	}

	return newLeveledLogger(LogLevelDebug,
		newSink(LogLevelDebug, &buf, tag(LogLevelDebug), debugLogFlags),
		newSink(LogLevelInfo, &buf, tag(LogLevelInfo), testLogFlags),
		newSink(LogLevelError, &buf, tag(LogLevelError), testLogFlags),
	), &buf
}
