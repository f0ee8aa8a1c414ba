//
// (C) Copyright 2019-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"path"
	"runtime"
	"time"

	"github.com/txt-tools/txt_errcode/build"
)

// ISO8601 timestamps, with or without microseconds
const (
	iso8601NoMicro = "2006-01-02T15:04:05Z0700"
	iso8601        = "2006-01-02T15:04:05.000000Z0700"
)

// jsonEntry is one line of JSON log output.
type jsonEntry struct {
	Time     string `json:"time"`
	Level    string `json:"level"`
	Tool     string `json:"tool"`
	Register string `json:"register"`
	Source   string `json:"source,omitempty"`
	Message  string `json:"message"`
}

// jsonFormatter writes each message as a jsonEntry followed by a newline.
// It honors the LUTC, Lmicroseconds, Lshortfile and Llongfile flags
// of the sink it replaces.
type jsonFormatter struct {
	output io.Writer
	level  LogLevel
	flags  int
}

func newJSONFormatter(output io.Writer, level LogLevel, flags int) *jsonFormatter {
	return &jsonFormatter{
		output: output,
		level:  level,
		flags:  flags,
	}
}

func (f *jsonFormatter) timestamp(t time.Time) string {
	if f.flags&log.LUTC != 0 {
		t = t.UTC()
	}
	if f.flags&log.Lmicroseconds != 0 {
		return t.Format(iso8601)
	}
	return t.Format(iso8601NoMicro)
}

func (f *jsonFormatter) source(depth int) string {
	if f.flags&(log.Lshortfile|log.Llongfile) == 0 {
		return ""
	}

	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "???:0"
	}
	if f.flags&log.Lshortfile != 0 {
		file = path.Base(file)
	}
	return fmt.Sprintf("%s:%d", file, line)
}

func (f *jsonFormatter) Output(callDepth int, msg string) error {
	data, err := json.Marshal(jsonEntry{
		Time:     f.timestamp(time.Now()),
		Level:    f.level.String(),
		Tool:     build.ErrorCodeToolName,
		Register: build.ErrorCodeRegister,
		Source:   f.source(callDepth + 1),
		Message:  msg,
	})
	if err != nil {
		return err
	}

	_, err = f.output.Write(append(data, '\n'))
	return err
}
