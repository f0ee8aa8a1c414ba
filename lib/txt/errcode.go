//
// (C) Copyright 2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txt

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode is the raw 32-bit contents of the TXT.ERRORCODE register.
//
// The register is made of two 16-bit halfwords, each of which has more
// than one reading. The low halfword holds either {type2, reserved} or,
// for ACM-initiated shutdowns, {module_type, class_code, major_error_code,
// sw_source}. The high halfword holds either {type1, external, valid} or
// {minor_error_code, reserved, padding}. The accessors below only select
// bits; the raw value is never modified.
type ErrorCode uint32

const (
	halfwordBits = 16
	halfwordMask = 0xffff
)

// bit positions within a halfword
const (
	type2Shift, type2Width       = 0, 15
	swSourceShift                = 15
	moduleTypeShift, moduleWidth = 0, 4
	classShift, classWidth       = 4, 6
	majorShift, majorWidth       = 10, 5

	type1Shift, type1Width       = 0, 14
	externalShift                = 14
	validShift                   = 15
	minorShift, minorWidth       = 0, 12
	extendedShift, extendedWidth = 0, 8
)

func (ec ErrorCode) low() uint16 {
	return uint16(ec & halfwordMask)
}

func (ec ErrorCode) high() uint16 {
	return uint16(ec >> halfwordBits)
}

func bits(half uint16, shift, width uint) uint16 {
	return (half >> shift) & (uint16(1)<<width - 1)
}

func bit(half uint16, shift uint) bool {
	return bits(half, shift, 1) != 0
}

// Valid reports whether the register contents are valid.
func (ec ErrorCode) Valid() bool {
	return bit(ec.high(), validShift)
}

// External reports whether the shutdown was initiated by an ACM
// rather than by the processor.
func (ec ErrorCode) External() bool {
	return bit(ec.high(), externalShift)
}

// Type1 returns the 14-bit type1 field.
func (ec ErrorCode) Type1() uint16 {
	return bits(ec.high(), type1Shift, type1Width)
}

// SWSource returns the software source bit.
func (ec ErrorCode) SWSource() bool {
	return bit(ec.low(), swSourceShift)
}

// Type2 returns the 15-bit type2 field.
func (ec ErrorCode) Type2() uint16 {
	return bits(ec.low(), type2Shift, type2Width)
}

// ModuleType returns the ACM module type. Only meaningful when External is set.
func (ec ErrorCode) ModuleType() ModuleType {
	return ModuleType(bits(ec.low(), moduleTypeShift, moduleWidth))
}

// ClassCode returns the ACM class code. Only meaningful when External is set.
func (ec ErrorCode) ClassCode() ClassCode {
	return ClassCode(bits(ec.low(), classShift, classWidth))
}

// MajorErrorCode returns the ACM major error code. Only meaningful when
// External is set.
func (ec ErrorCode) MajorErrorCode() uint8 {
	return uint8(bits(ec.low(), majorShift, majorWidth))
}

// MinorErrorCode returns the 12-bit ACM minor error code. Only meaningful
// when External is set.
func (ec ErrorCode) MinorErrorCode() uint16 {
	return bits(ec.high(), minorShift, minorWidth)
}

// ExtendedValue returns the low byte of the high halfword, an alternate
// reading of the minor error code bits.
func (ec ErrorCode) ExtendedValue() uint8 {
	return uint8(bits(ec.high(), extendedShift, extendedWidth))
}

func (ec ErrorCode) String() string {
	return fmt.Sprintf("0x%08x", uint32(ec))
}

// MarshalJSON renders the error code as a zero-padded hex string.
func (ec ErrorCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(ec.String())
}

// UnmarshalJSON accepts either a hex string or a JSON number.
func (ec *ErrorCode) UnmarshalJSON(data []byte) error {
	var num uint32
	if err := json.Unmarshal(data, &num); err == nil {
		*ec = ErrorCode(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.Wrap(err, "error code must be a string or number")
	}

	parsed, err := ParseErrorCodeStrict(str)
	if err != nil {
		return err
	}
	*ec = parsed
	return nil
}

// ModuleType identifies which ACM reported the error.
type ModuleType uint8

// ModuleTypeBIOSACM is the only named module type; any other value
// identifies the SINIT ACM.
const ModuleTypeBIOSACM ModuleType = 0

// IsSINIT reports whether the module type identifies the SINIT ACM.
func (mt ModuleType) IsSINIT() bool {
	return mt != ModuleTypeBIOSACM
}

func (mt ModuleType) String() string {
	if mt.IsSINIT() {
		return "SINIT"
	}
	return "BIOS ACM"
}

// MarshalJSON renders the module type by name.
func (mt ModuleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(mt.String())
}
