//
// (C) Copyright 2018-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package test provides helpers shared by the unit tests.
package test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertTrue asserts b is true.
func AssertTrue(t *testing.T, b bool, message string) {
	t.Helper()

	if !b {
		t.Fatal(message)
	}
}

// AssertEqual asserts b is equal to a.
func AssertEqual(t *testing.T, a, b interface{}, message string) {
	t.Helper()

	if reflect.DeepEqual(a, b) {
		return
	}
	if len(message) > 0 {
		message += ", "
	}
	t.Fatalf(message+"%#v != %#v", a, b)
}

// CmpErrBool compares two errors using a relaxed equivalence
// check: the wanted error text must be contained in the got error text.
func CmpErrBool(want, got error) bool {
	if want == got {
		return true
	}
	if want == nil || got == nil {
		return false
	}
	return strings.Contains(got.Error(), want.Error())
}

// CmpErr compares two errors for equality or at least close similarity
// in their messages.
func CmpErr(t *testing.T, want, got error) {
	t.Helper()

	if !CmpErrBool(want, got) {
		t.Fatalf("unexpected error\n(wanted: %v, got: %v)", want, got)
	}
}

// CmpAny compares two values and fails the test with a diff if they differ.
func CmpAny(t *testing.T, desc string, want, got interface{}, cmpOpts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Fatalf("unexpected %s (-want, +got):\n%s\n", desc, diff)
	}
}

// ShowBufferOnFailure displays captured output on test failure.
func ShowBufferOnFailure(t *testing.T, buf fmt.Stringer) {
	t.Helper()

	if t.Failed() {
		fmt.Printf("captured log output:\n%s", buf.String())
	}
}
