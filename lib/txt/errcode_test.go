//
// (C) Copyright 2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txt

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/txt-tools/txt_errcode/common/test"
)

type fieldView struct {
	Valid, External, SWSource bool
	Type1, Type2, Minor       uint16
	Module                    ModuleType
	Class                     ClassCode
	Major, Extended           uint8
}

func viewOf(ec ErrorCode) fieldView {
	return fieldView{
		Valid:    ec.Valid(),
		External: ec.External(),
		SWSource: ec.SWSource(),
		Type1:    ec.Type1(),
		Type2:    ec.Type2(),
		Minor:    ec.MinorErrorCode(),
		Module:   ec.ModuleType(),
		Class:    ec.ClassCode(),
		Major:    ec.MajorErrorCode(),
		Extended: ec.ExtendedValue(),
	}
}

func TestTxt_ErrorCode_Fields(t *testing.T) {
	for name, tc := range map[string]struct {
		ec     ErrorCode
		expect fieldView
	}{
		"zero": {
			ec: 0,
		},
		"valid only": {
			ec:     0x80000000,
			expect: fieldView{Valid: true},
		},
		"external only": {
			ec:     0x40000000,
			expect: fieldView{External: true},
		},
		"sw source only": {
			ec:     0x00008000,
			expect: fieldView{SWSource: true},
		},
		"type1 fills high halfword below external": {
			ec:     0x3fff0000,
			expect: fieldView{Type1: 0x3fff, Minor: 0xfff, Extended: 0xff},
		},
		"type2 fills low halfword below sw source": {
			ec: 0x00007fff,
			expect: fieldView{
				Type2:  0x7fff,
				Module: 0xf,
				Class:  0x3f,
				Major:  0x1f,
			},
		},
		"acm entry sinit": {
			ec: 0xc1230c11,
			expect: fieldView{
				Valid:    true,
				External: true,
				Type1:    0x0123,
				Type2:    0x0c11,
				Minor:    0x123,
				Module:   1,
				Class:    ClassAcmEntry,
				Major:    3,
				Extended: 0x23,
			},
		},
		"all ones": {
			ec: 0xffffffff,
			expect: fieldView{
				Valid:    true,
				External: true,
				SWSource: true,
				Type1:    0x3fff,
				Type2:    0x7fff,
				Minor:    0xfff,
				Module:   0xf,
				Class:    0x3f,
				Major:    0x1f,
				Extended: 0xff,
			},
		},
		"reserved minor bits ignored": {
			ec:     0x30000000,
			expect: fieldView{Type1: 0x3000},
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expect, viewOf(tc.ec)); diff != "" {
				t.Fatalf("unexpected fields (-want, +got):\n%s\n", diff)
			}
		})
	}
}

func TestTxt_ErrorCode_String(t *testing.T) {
	for name, tc := range map[string]struct {
		ec  ErrorCode
		exp string
	}{
		"zero":     {0, "0x00000000"},
		"small":    {0x1f, "0x0000001f"},
		"all ones": {0xffffffff, "0xffffffff"},
		"mixed":    {0xC0001234, "0xc0001234"},
	} {
		t.Run(name, func(t *testing.T) {
			test.AssertEqual(t, tc.exp, tc.ec.String(), "")
			test.AssertEqual(t, tc.ec, ParseErrorCode(tc.ec.String()), "formatted value did not parse back")
		})
	}
}

func TestTxt_ErrorCode_UnmarshalJSON(t *testing.T) {
	for name, tc := range map[string]struct {
		in     string
		expEC  ErrorCode
		expErr error
	}{
		"number": {
			in:    `3221230132`,
			expEC: 0xc0001234,
		},
		"hex string": {
			in:    `"0xc0001234"`,
			expEC: 0xc0001234,
		},
		"bad string": {
			in:     `"zzz"`,
			expErr: FaultBadErrorCode("zzz", "invalid hexadecimal digits"),
		},
		"wrong type": {
			in:     `true`,
			expErr: errors.New("error code must be a string or number"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			var ec ErrorCode
			gotErr := json.Unmarshal([]byte(tc.in), &ec)
			test.CmpErr(t, tc.expErr, gotErr)
			if tc.expErr != nil {
				return
			}
			test.AssertEqual(t, tc.expEC, ec, "")
		})
	}
}

func TestTxt_ModuleType_String(t *testing.T) {
	test.AssertEqual(t, "BIOS ACM", ModuleTypeBIOSACM.String(), "")
	for mt := ModuleType(1); mt <= 0xf; mt++ {
		test.AssertEqual(t, "SINIT", mt.String(), "")
	}
}
