//
// (C) Copyright 2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"fmt"
	"io"

	"github.com/txt-tools/txt_errcode/build"
	"github.com/txt-tools/txt_errcode/common/cmdutil"
	"github.com/txt-tools/txt_errcode/lib/txt"
	"github.com/txt-tools/txt_errcode/lib/txtfmt"
	"github.com/txt-tools/txt_errcode/logging"
)

const (
	classTitle       = "Class"
	nameTitle        = "Name"
	majorTitle       = "Major"
	descriptionTitle = "Description"
)

type (
	// errorCodeCmd carries the settings shared by the one-shot CLI
	// and the shell commands.
	errorCodeCmd struct {
		cmdutil.JSONOutputCmd
		log    logging.Logger
		stdout io.Writer
		strict bool
	}

	majorListing struct {
		MajorErrorCode uint8  `json:"major_error_code"`
		Description    string `json:"description"`
	}

	classListing struct {
		ClassCode uint8          `json:"class_code"`
		ClassName string         `json:"class_name"`
		Majors    []majorListing `json:"majors"`
	}

	versionInfo struct {
		Name     string `json:"name"`
		Version  string `json:"version"`
		Register string `json:"register"`
	}
)

func (cmd *errorCodeCmd) parse(in string) (txt.ErrorCode, error) {
	if cmd.strict {
		return txt.ParseErrorCodeStrict(in)
	}

	ec := txt.ParseErrorCode(in)
	cmd.log.Debugf("parsed %q as %s", in, ec)
	return ec, nil
}

func (cmd *errorCodeCmd) decode(in string) error {
	ec, err := cmd.parse(in)
	if err != nil {
		return err
	}

	report := txt.Decode(ec)
	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(cmd.stdout, report)
	}

	ew := txtfmt.NewErrWriter(cmd.stdout)
	fmt.Fprintf(ew, "Error code : %s\n", ec)
	report.WriteTo(ew)
	return ew.Err
}

func classListings() []classListing {
	var listings []classListing
	for _, cc := range txt.ClassCodes() {
		cl := classListing{
			ClassCode: uint8(cc),
			ClassName: cc.String(),
		}
		for _, major := range cc.MajorCodes() {
			cl.Majors = append(cl.Majors, majorListing{
				MajorErrorCode: major,
				Description:    txt.Classify(cc, major).Description,
			})
		}
		listings = append(listings, cl)
	}
	return listings
}

func (cmd *errorCodeCmd) list() error {
	listings := classListings()
	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(cmd.stdout, listings)
	}

	var rows []txtfmt.TableRow
	for _, cl := range listings {
		for _, ml := range cl.Majors {
			rows = append(rows, txtfmt.TableRow{
				classTitle:       fmt.Sprintf("0x%02x", cl.ClassCode),
				nameTitle:        cl.ClassName,
				majorTitle:       fmt.Sprintf("0x%02x", ml.MajorErrorCode),
				descriptionTitle: ml.Description,
			})
		}
	}

	tf := txtfmt.NewTableFormatter(classTitle, nameTitle, majorTitle, descriptionTitle)
	return tf.WriteTable(cmd.stdout, rows)
}

func (cmd *errorCodeCmd) version() error {
	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(cmd.stdout, versionInfo{
			Name:     build.ErrorCodeToolName,
			Version:  build.ToolVersion,
			Register: build.ErrorCodeRegister,
		})
	}

	_, err := fmt.Fprintln(cmd.stdout, build.String(build.ErrorCodeToolName))
	return err
}
