//
// (C) Copyright 2020-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package build provides an importable repository of variables set at build time.
package build

var (
	// ToolVersion should be set via linker flag using the value of TOOL_VERSION.
	ToolVersion string = "unset"
	// Revision should be set via linker flag using the value of the VCS revision.
	Revision string = ""
	// VCS should be set via linker flag using the name of the VCS used to build.
	VCS string = "git"
	// DirtyBuild should be set via linker flag if the build tree had local changes.
	DirtyBuild bool = false
	// ReleaseBuild should be set via linker flag for release builds.
	ReleaseBuild bool = false

	// ErrorCodeToolName defines a consistent name for the error code decoder.
	ErrorCodeToolName = "txt_errcode"
	// ErrorCodeRegister names the register whose contents are decoded.
	ErrorCodeRegister = "TXT.ERRORCODE"
)
