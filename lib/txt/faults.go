//
// (C) Copyright 2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txt

import (
	"fmt"

	"github.com/txt-tools/txt_errcode/fault"
	"github.com/txt-tools/txt_errcode/fault/code"
)

// FaultBadErrorCode creates a Fault for an input string that does not
// hold a 32-bit hexadecimal value.
func FaultBadErrorCode(in string, reasons ...string) *fault.Fault {
	return txtFault(
		code.TxtBadErrorCode,
		fmt.Sprintf("%q is not a valid TXT.ERRORCODE value", in),
		"supply the register value as 1 to 8 hexadecimal digits, optionally prefixed with 0x",
		reasons...,
	)
}

func txtFault(c code.Code, desc, res string, reasons ...string) *fault.Fault {
	return &fault.Fault{
		Domain:      "txt",
		Code:        c,
		Description: desc,
		Reasons:     reasons,
		Resolution:  res,
	}
}
