//
// (C) Copyright 2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txt

import (
	"math"
	"strconv"
	"strings"
)

const maxStrictDigits = 8

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func hexDigit(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// ParseErrorCode converts the input using the rules of the C library's
// strtol() with base 16, then truncates the result to 32 bits. It never
// fails: leading whitespace, an optional sign and an optional 0x prefix
// are accepted, parsing stops at the first non-hex character, input with
// no digits yields zero, and out-of-range values saturate to the signed
// 64-bit limits before truncation.
func ParseErrorCode(in string) ErrorCode {
	i := 0
	for i < len(in) && isSpace(in[i]) {
		i++
	}

	neg := false
	if i < len(in) && (in[i] == '+' || in[i] == '-') {
		neg = in[i] == '-'
		i++
	}

	// The prefix only counts if a hex digit follows it; "0x" alone is
	// read as the digit zero.
	if i+2 < len(in) && in[i] == '0' && (in[i+1] == 'x' || in[i+1] == 'X') {
		if _, ok := hexDigit(in[i+2]); ok {
			i += 2
		}
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var acc uint64
	overflow := false
	for ; i < len(in); i++ {
		d, ok := hexDigit(in[i])
		if !ok {
			break
		}
		if overflow || acc > limit>>4 || acc<<4|d > limit {
			overflow = true
			continue
		}
		acc = acc<<4 | d
	}

	switch {
	case overflow && neg:
		acc = uint64(1) << 63 // LONG_MIN
	case overflow:
		acc = math.MaxInt64 // LONG_MAX
	case neg:
		acc = -acc
	}
	return ErrorCode(uint32(acc))
}

// ParseErrorCodeStrict accepts only 1 to 8 hexadecimal digits with an
// optional 0x prefix and surrounding whitespace.
func ParseErrorCodeStrict(in string) (ErrorCode, error) {
	digits := strings.TrimSpace(in)
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}

	switch {
	case digits == "":
		return 0, FaultBadErrorCode(in, "no hexadecimal digits")
	case len(digits) > maxStrictDigits:
		return 0, FaultBadErrorCode(in, "more than 32 bits")
	}

	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, FaultBadErrorCode(in, "invalid hexadecimal digits")
	}
	return ErrorCode(val), nil
}
