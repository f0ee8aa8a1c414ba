//
// (C) Copyright 2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"fmt"
	"strings"

	"github.com/txt-tools/txt_errcode/build"
	"github.com/txt-tools/txt_errcode/fault"
	"github.com/txt-tools/txt_errcode/fault/code"
)

var errMissingErrorCode = cliFault(
	code.CliMissingErrorCode,
	"no error code supplied",
	fmt.Sprintf("supply the %s register value as a hexadecimal argument", build.ErrorCodeRegister),
)

func errConflictingOptions(names ...string) *fault.Fault {
	return cliFault(
		code.CliConflictingOptions,
		fmt.Sprintf("%s cannot be used together", strings.Join(names, " and ")),
		"choose one of an error code, --list, --interactive or --cmd-file",
	)
}

func errCommandFileFailed(fileName string, reason error) *fault.Fault {
	f := cliFault(
		code.CliCommandFileFailed,
		fmt.Sprintf("command file %q failed", fileName),
		"check that the file is readable and holds one shell command per line",
	)
	f.Reasons = []string{reason.Error()}
	return f
}

func errUnknownShellCommand(name string) *fault.Fault {
	return cliFault(
		code.CliUnknownShellCommand,
		fmt.Sprintf("unknown command %q", name),
		"run 'help' to list the available commands",
	)
}

func cliFault(c code.Code, desc, res string) *fault.Fault {
	return &fault.Fault{
		Domain:      build.ErrorCodeToolName,
		Code:        c,
		Description: desc,
		Resolution:  res,
	}
}
