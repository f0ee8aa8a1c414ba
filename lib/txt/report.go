//
// (C) Copyright 2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/txt-tools/txt_errcode/lib/txtfmt"
)

const (
	genericHeader  = "Generic register values"
	cpuShutdownMsg = "CPU-initiated TXT-shutdown"
	acmShutdownMsg = "ACM-initiated TXT-shutdown"

	fieldIndent = 2
	classIndent = 4
	majorIndent = 6
)

type (
	// GenericFields are the register fields valid for every error code.
	GenericFields struct {
		Valid    bool   `json:"valid"`
		External bool   `json:"external"`
		Type1    uint16 `json:"type1"`
		SWSource bool   `json:"sw_source"`
		Type2    uint16 `json:"type2"`
	}

	// ACMFields are the register fields of an ACM-initiated shutdown.
	ACMFields struct {
		ModuleType     ModuleType     `json:"module_type"`
		ClassCode      ClassCode      `json:"class_code"`
		MajorErrorCode uint8          `json:"major_error_code"`
		MinorErrorCode uint16         `json:"minor_error_code"`
		ExtendedValue  uint8          `json:"extended_value"`
		Classification Classification `json:"classification"`
	}

	// Report is the decoded form of an ErrorCode.
	Report struct {
		ErrorCode ErrorCode     `json:"error_code"`
		Generic   GenericFields `json:"generic"`
		ACM       *ACMFields    `json:"acm,omitempty"`
	}
)

// Decode interprets the error code. It is total over all 32-bit values.
func Decode(ec ErrorCode) *Report {
	r := &Report{
		ErrorCode: ec,
		Generic: GenericFields{
			Valid:    ec.Valid(),
			External: ec.External(),
			Type1:    ec.Type1(),
			SWSource: ec.SWSource(),
			Type2:    ec.Type2(),
		},
	}

	if !ec.External() {
		return r
	}

	r.ACM = &ACMFields{
		ModuleType:     ec.ModuleType(),
		ClassCode:      ec.ClassCode(),
		MajorErrorCode: ec.MajorErrorCode(),
		MinorErrorCode: ec.MinorErrorCode(),
		ExtendedValue:  ec.ExtendedValue(),
		Classification: Classify(ec.ClassCode(), ec.MajorErrorCode()),
	}
	return r
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (r *Report) format(out io.Writer) {
	fields := txtfmt.NewIndentWriter(out, txtfmt.WithPadCount(fieldIndent))

	fmt.Fprintln(out, genericHeader)
	fmt.Fprintf(fields, "valid(%d)\n", flag(r.Generic.Valid))
	fmt.Fprintf(fields, "external(%d)\n", flag(r.Generic.External))
	fmt.Fprintf(fields, "type1(0x%02x)\n", r.Generic.Type1)
	fmt.Fprintf(fields, "sw_source(%d)\n", flag(r.Generic.SWSource))
	fmt.Fprintf(fields, "type2(%02x)\n", r.Generic.Type2)

	if r.ACM == nil {
		fmt.Fprintln(out, cpuShutdownMsg)
		return
	}

	fmt.Fprintln(out, acmShutdownMsg)
	fmt.Fprintf(fields, "module_type(%s)\n", r.ACM.ModuleType)
	fmt.Fprintf(fields, "class_code(0x%02x)\n", uint8(r.ACM.ClassCode))
	fmt.Fprintf(fields, "major_error_code(0x%02x)\n", r.ACM.MajorErrorCode)
	fmt.Fprintf(fields, "minor_error_code(0x%03x)\n", r.ACM.MinorErrorCode)

	class := txtfmt.NewIndentWriter(out, txtfmt.WithPadCount(classIndent))
	major := txtfmt.NewIndentWriter(out, txtfmt.WithPadCount(majorIndent))

	c := r.ACM.Classification
	if !c.KnownClass {
		fmt.Fprintln(class, c.Description)
		return
	}
	fmt.Fprintln(class, c.ClassName)
	fmt.Fprintln(major, c.Description)
}

// WriteTo writes the text report to the supplied writer.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	r.format(&buf)
	return buf.WriteTo(w)
}

func (r *Report) String() string {
	var buf bytes.Buffer
	r.format(&buf)
	return buf.String()
}

// Lines returns the text report split into lines, without
// line terminators.
func (r *Report) Lines() []string {
	return strings.Split(strings.TrimSuffix(r.String(), "\n"), "\n")
}
