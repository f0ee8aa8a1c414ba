//
// (C) Copyright 2019-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package logging provides the leveled logger used for diagnostics.
// Decoded reports are written to stdout directly and never pass
// through it.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// frames between the caller of a Logger method and Output
const callDepth = 3

type (
	// Logger defines the logging interface used by the decoder tools.
	Logger interface {
		Debug(msg string)
		Debugf(format string, args ...interface{})
		Info(msg string)
		Infof(format string, args ...interface{})
		Error(msg string)
		Errorf(format string, args ...interface{})
	}

	outputter interface {
		Output(callDepth int, msg string) error
	}

	// sink writes the messages of a single level to one destination.
	sink struct {
		level  LogLevel
		dest   io.Writer
		prefix string
		flags  int
		out    outputter
	}

	// LeveledLogger routes each message to the sinks registered for
	// its level, dropping anything above the configured LogLevel.
	LeveledLogger struct {
		sync.RWMutex
		level LogLevel
		sinks []*sink
	}
)

var _ Logger = (*LeveledLogger)(nil)

func newSink(level LogLevel, dest io.Writer, prefix string, flags int) *sink {
	return &sink{
		level:  level,
		dest:   dest,
		prefix: prefix,
		flags:  flags,
		out:    log.New(dest, prefix, flags),
	}
}

func newLeveledLogger(level LogLevel, sinks ...*sink) *LeveledLogger {
	ll := &LeveledLogger{sinks: sinks}
	ll.SetLevel(level)
	return ll
}

// SetLevel sets the most verbose LogLevel that will be emitted.
func (ll *LeveledLogger) SetLevel(newLevel LogLevel) {
	ll.level.Set(newLevel)
}

// WithJSONOutput switches every sink to JSON-formatted entries tagged
// with the tool name.
func (ll *LeveledLogger) WithJSONOutput() *LeveledLogger {
	ll.Lock()
	defer ll.Unlock()

	for _, s := range ll.sinks {
		s.out = newJSONFormatter(s.dest, s.level, s.flags)
	}
	return ll
}

func (ll *LeveledLogger) emit(level LogLevel, msg string) {
	if ll.level.Get() < level {
		return
	}

	ll.RLock()
	defer ll.RUnlock()

	for _, s := range ll.sinks {
		if s.level != level {
			continue
		}
		if err := s.out.Output(callDepth, msg); err != nil {
			fmt.Fprintf(os.Stderr, "logger %s output failed: %s\n", level, err)
		}
	}
}

// Debug emits an unformatted debug message.
func (ll *LeveledLogger) Debug(msg string) {
	ll.emit(LogLevelDebug, msg)
}

// Debugf emits a formatted debug message.
func (ll *LeveledLogger) Debugf(format string, args ...interface{}) {
	ll.emit(LogLevelDebug, fmt.Sprintf(format, args...))
}

// Info emits an unformatted informational message.
func (ll *LeveledLogger) Info(msg string) {
	ll.emit(LogLevelInfo, msg)
}

// Infof emits a formatted informational message.
func (ll *LeveledLogger) Infof(format string, args ...interface{}) {
	ll.emit(LogLevelInfo, fmt.Sprintf(format, args...))
}

// Error emits an unformatted error message.
func (ll *LeveledLogger) Error(msg string) {
	ll.emit(LogLevelError, msg)
}

// Errorf emits a formatted error message.
func (ll *LeveledLogger) Errorf(format string, args ...interface{}) {
	ll.emit(LogLevelError, fmt.Sprintf(format, args...))
}

// LogBuffer is a bytes.Buffer safe for concurrent writers, used to
// capture log output in tests.
type LogBuffer struct {
	sync.Mutex
	buf bytes.Buffer
}

func (lb *LogBuffer) Write(p []byte) (int, error) {
	lb.Lock()
	defer lb.Unlock()
	return lb.buf.Write(p)
}

func (lb *LogBuffer) String() string {
	lb.Lock()
	defer lb.Unlock()
	return lb.buf.String()
}
