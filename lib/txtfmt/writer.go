//
// (C) Copyright 2020-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txtfmt

import (
	"bytes"
	"io"
)

// ErrWriter captures the first write error and turns every later write
// into a no-op, so a sequence of Fprintf calls needs a single check.
type ErrWriter struct {
	writer io.Writer
	Err    error
}

// NewErrWriter returns an initialized ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{writer: w}
}

func (w *ErrWriter) Write(data []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}

	var n int
	n, w.Err = w.writer.Write(data)
	return n, w.Err
}

const defaultPadCount = 2

type (
	// IndentWriter prefixes every non-empty line written to it with
	// a fixed number of spaces.
	IndentWriter struct {
		writer    io.Writer
		pad       []byte
		lineStart bool
	}

	// IndentWriterOption configures the IndentWriter.
	IndentWriterOption func(*IndentWriter)
)

// WithPadCount sets the indent width.
func WithPadCount(count uint) IndentWriterOption {
	return func(w *IndentWriter) {
		w.pad = bytes.Repeat([]byte{' '}, int(count))
	}
}

// NewIndentWriter returns an initialized IndentWriter.
func NewIndentWriter(w io.Writer, opts ...IndentWriterOption) *IndentWriter {
	iw := &IndentWriter{
		writer:    w,
		lineStart: true,
	}
	WithPadCount(defaultPadCount)(iw)

	for _, opt := range opts {
		opt(iw)
	}
	return iw
}

// Write returns the number of bytes of data consumed; padding is not
// counted.
func (w *IndentWriter) Write(data []byte) (int, error) {
	var written int
	for len(data) > 0 {
		if w.lineStart && data[0] != '\n' {
			if _, err := w.writer.Write(w.pad); err != nil {
				return written, err
			}
		}

		chunk := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			chunk = data[:i+1]
		}

		n, err := w.writer.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		w.lineStart = chunk[len(chunk)-1] == '\n'
		data = data[len(chunk):]
	}

	return written, nil
}
