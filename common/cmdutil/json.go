//
// (C) Copyright 2021-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package cmdutil

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

type (
	// JSONOutputter defines an interface to be implemented by types
	// that can emit their results as JSON.
	JSONOutputter interface {
		EnableJSONOutput(bool)
		JSONOutputEnabled() bool
		OutputJSON(io.Writer, interface{}) error
	}

	// JSONOutputCmd is an embeddable type that extends a command with
	// JSON output capabilities.
	JSONOutputCmd struct {
		shouldEmitJSON bool
	}
)

var _ JSONOutputter = (*JSONOutputCmd)(nil)

// EnableJSONOutput toggles JSON output for the command.
func (cmd *JSONOutputCmd) EnableJSONOutput(emitJSON bool) {
	cmd.shouldEmitJSON = emitJSON
}

// JSONOutputEnabled reports whether the command should emit JSON.
func (cmd *JSONOutputCmd) JSONOutputEnabled() bool {
	return cmd.shouldEmitJSON
}

// OutputJSON writes the indented JSON form of the value followed by
// a newline.
func (cmd *JSONOutputCmd) OutputJSON(out io.Writer, in interface{}) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON output")
	}

	_, err = out.Write(append(data, '\n'))
	return err
}
