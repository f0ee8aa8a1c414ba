//
// (C) Copyright 2018-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package code is a central repository for all decoder fault codes.
package code

import (
	"encoding/json"
	"strconv"
)

// Code represents a stable fault code.
//
// NB: All faults should register their codes in the following
// blocks in order to avoid conflicts. New codes are always added
// at the bottom of their respective blocks so that values stay
// stable over time.
type Code int

// UnmarshalJSON implements a custom unmarshaler
// to convert an int or string code to a Code.
func (c *Code) UnmarshalJSON(data []byte) (err error) {
	var ic int
	if err = json.Unmarshal(data, &ic); err == nil {
		*c = Code(ic)
		return
	}

	var sc string
	if err = json.Unmarshal(data, &sc); err != nil {
		return
	}

	if ic, err = strconv.Atoi(sc); err == nil {
		*c = Code(ic)
	}
	return
}

const (
	// general fault codes
	Unknown Code = iota
)

const (
	// command line fault codes
	CliUnknown Code = iota + 100
	CliMissingErrorCode
	CliConflictingOptions
	CliCommandFileFailed
	CliUnknownShellCommand
)

const (
	// error code decoding fault codes
	TxtUnknown Code = iota + 200
	TxtBadErrorCode
)
