//
// (C) Copyright 2018-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package fault provides well-known errors carrying a stable code
// and an optional resolution hint for the operator.
package fault

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/txt-tools/txt_errcode/fault/code"
)

const (
	// ResolutionEmpty is equivalent to an empty string.
	ResolutionEmpty = ""
	// ResolutionUnknown indicates that there is no known
	// resolution for the fault.
	ResolutionUnknown = "no known resolution"
	// ResolutionNone indicates that the fault cannot be
	// resolved.
	ResolutionNone = "none"

	UnknownDomainStr      = "unknown"
	UnknownDescriptionStr = "unknown fault"
)

// UnknownFault represents an unknown fault.
var UnknownFault = &Fault{
	Code:       code.Unknown,
	Resolution: ResolutionUnknown,
}

// Fault represents a well-known error specific to a domain,
// along with an optional potential resolution for the error.
//
// It implements the error interface and can be used
// interchangeably with regular "dumb" errors.
type Fault struct {
	Domain      string    `json:"-"`
	Code        code.Code `json:"code"`
	Description string    `json:"description"`
	Reasons     []string  `json:"reasons,omitempty"`
	Resolution  string    `json:"resolution"`
}

func sanitizeDomain(inDomain string) (outDomain string) {
	outDomain = UnknownDomainStr
	if inDomain != "" {
		// keep the domain grep-friendly
		outDomain = strings.Join(
			strings.Fields(
				strings.Replace(inDomain, ":", " ", -1),
			), "_")
	}
	return
}

func sanitizeDescription(inDescription string) (outDescription string) {
	outDescription = UnknownDescriptionStr
	if inDescription != "" {
		outDescription = inDescription
	}
	return
}

func (f *Fault) Error() string {
	desc := sanitizeDescription(f.Description)
	if len(f.Reasons) > 0 {
		desc += ": " + strings.Join(f.Reasons, ", ")
	}
	return fmt.Sprintf("%s: code = %d description = %q",
		sanitizeDomain(f.Domain), f.Code, desc)
}

// Equals attempts to compare the given error to this one. If they both
// resolve to the same fault code, then they are considered equivalent.
func (f *Fault) Equals(raw error) bool {
	other, ok := errors.Cause(raw).(*Fault)
	if !ok {
		return false
	}
	return f.Code == other.Code
}

// Is allows a Fault to be used with the standard library errors.Is.
func (f *Fault) Is(raw error) bool {
	return f.Equals(raw)
}

// IsFault indicates whether or not the error is a Fault.
func IsFault(err error) bool {
	_, ok := errors.Cause(err).(*Fault)
	return ok
}

// ShowResolutionFor attempts to return the resolution string for the
// given error. If the error is not a fault or does not have a
// resolution set, then the string value of ResolutionUnknown
// is returned.
func ShowResolutionFor(raw error) string {
	fmtStr := "%s: code = %d resolution = %q"

	f, ok := errors.Cause(raw).(*Fault)
	if !ok {
		return fmt.Sprintf(fmtStr, UnknownDomainStr, code.Unknown, ResolutionUnknown)
	}
	if f.Resolution == ResolutionEmpty {
		return fmt.Sprintf(fmtStr, sanitizeDomain(f.Domain), f.Code, ResolutionUnknown)
	}
	return fmt.Sprintf(fmtStr, sanitizeDomain(f.Domain), f.Code, f.Resolution)
}

// HasResolution indicates whether or not the error has a resolution
// defined.
func HasResolution(raw error) bool {
	f, ok := errors.Cause(raw).(*Fault)
	if !ok || f.Resolution == ResolutionEmpty || f.Resolution == ResolutionUnknown {
		return false
	}
	return true
}

// GetCode returns the fault code for the error, or code.Unknown
// if the error is not a fault.
func GetCode(raw error) code.Code {
	f, ok := errors.Cause(raw).(*Fault)
	if !ok {
		return code.Unknown
	}
	return f.Code
}
