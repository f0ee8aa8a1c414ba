//
// (C) Copyright 2022-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/txt-tools/txt_errcode/common/test"
	"github.com/txt-tools/txt_errcode/fault"
	"github.com/txt-tools/txt_errcode/fault/code"
	"github.com/txt-tools/txt_errcode/lib/txt"
	"github.com/txt-tools/txt_errcode/logging"
)

func writeCmdFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cmds.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeOutput(ec txt.ErrorCode) string {
	return "Error code : " + ec.String() + "\n" + txt.Decode(ec).String()
}

func TestTxtErrcode_ParseOpts(t *testing.T) {
	cmdFile := writeCmdFile(t,
		"# decode two codes",
		"",
		"decode 0",
		"decode -s 0xc1230c11",
	)
	badCmdFile := writeCmdFile(t,
		"version",
		"bogus 1",
	)
	strictCmdFile := writeCmdFile(t,
		"decode --strict 12zz",
	)
	badCmdFileErr := errCommandFileFailed(badCmdFile,
		errors.Wrap(errUnknownShellCommand("bogus"), "line 2"))

	for name, tc := range map[string]struct {
		args      []string
		expStdout string
		expLog    []string
		expErr    error
		expCode   code.Code
	}{
		"no arguments": {
			expErr:  errMissingErrorCode,
			expCode: code.CliMissingErrorCode,
		},
		"unknown option": {
			args:   []string{"--bogus"},
			expErr: errors.New("unknown flag `bogus'"),
		},
		"help": {
			args: []string{"--help"},
			expLog: []string{
				"Usage:\n  txt_errcode [OPTIONS] <hexa_error_code>",
				"Available shell commands:",
				"decode",
			},
		},
		"zero": {
			args: []string{"0"},
			expStdout: strings.Join([]string{
				"Error code : 0x00000000",
				"Generic register values",
				"  valid(0)",
				"  external(0)",
				"  type1(0x00)",
				"  sw_source(0)",
				"  type2(00)",
				"CPU-initiated TXT-shutdown",
			}, "\n") + "\n",
		},
		"acm initiated": {
			args:      []string{"0xc1230c11"},
			expStdout: decodeOutput(0xc1230c11),
		},
		"empty argument decodes as zero": {
			args:      []string{""},
			expStdout: decodeOutput(0),
		},
		"negative one": {
			args:      []string{"-1"},
			expStdout: decodeOutput(0xffffffff),
		},
		"negative code before option": {
			args:      []string{"-80000000", "-d"},
			expStdout: decodeOutput(0x80000000),
			expLog:    []string{"debug output enabled"},
		},
		"negative code after terminator": {
			args:      []string{"--", "-10"},
			expStdout: decodeOutput(0xfffffff0),
		},
		"command file value is not moved": {
			args:   []string{"-f", "-1cmds"},
			expErr: errors.New("expected argument for flag"),
		},
		"list with empty argument": {
			args:    []string{"-l", ""},
			expErr:  errConflictingOptions("an error code", "--list"),
			expCode: code.CliConflictingOptions,
		},
		"lenient parse of garbage": {
			args:      []string{"12zz"},
			expStdout: decodeOutput(0x12),
		},
		"strict parse rejects garbage": {
			args:    []string{"--strict", "12zz"},
			expErr:  txt.FaultBadErrorCode("12zz", "invalid hexadecimal digits"),
			expCode: code.TxtBadErrorCode,
		},
		"strict parse accepts hex": {
			args:      []string{"-s", "400003F0"},
			expStdout: decodeOutput(0x400003f0),
		},
		"debug": {
			args:      []string{"-d", "1f"},
			expStdout: decodeOutput(0x1f),
			expLog: []string{
				"debug output enabled",
				`parsed "1f" as 0x0000001f`,
			},
		},
		"version": {
			args:      []string{"-v"},
			expStdout: "txt_errcode version unset\n",
		},
		"version wins over conflicting modes": {
			args:      []string{"--version", "-l", "0"},
			expStdout: "txt_errcode version unset\n",
		},
		"list with error code": {
			args:    []string{"-l", "0"},
			expErr:  errConflictingOptions("an error code", "--list"),
			expCode: code.CliConflictingOptions,
		},
		"interactive with command file": {
			args:    []string{"-i", "-f", cmdFile},
			expErr:  errConflictingOptions("--interactive", "--cmd-file"),
			expCode: code.CliConflictingOptions,
		},
		"command file": {
			args:      []string{"-f", cmdFile},
			expStdout: decodeOutput(0) + decodeOutput(0xc1230c11),
		},
		"command file with unknown command": {
			args:      []string{"--cmd-file", badCmdFile},
			expStdout: "txt_errcode version unset\n",
			expErr:    badCmdFileErr,
			expCode:   code.CliCommandFileFailed,
		},
		"command file with strict failure": {
			args:    []string{"-f", strictCmdFile},
			expErr:  errors.New("line 1"),
			expCode: code.CliCommandFileFailed,
		},
		"missing command file": {
			args:    []string{"-f", filepath.Join(t.TempDir(), "missing.txt")},
			expErr:  errors.New("command file"),
			expCode: code.CliCommandFileFailed,
		},
	} {
		t.Run(name, func(t *testing.T) {
			log, buf := logging.NewTestLogger(t.Name())
			defer test.ShowBufferOnFailure(t, buf)
			log.SetLevel(logging.LogLevelInfo)

			var stdout bytes.Buffer
			var opts cliOptions
			gotErr := parseOpts(tc.args, &opts, &stdout, log)
			test.CmpErr(t, tc.expErr, gotErr)
			if tc.expCode != code.Unknown {
				test.AssertEqual(t, tc.expCode, fault.GetCode(gotErr), "unexpected fault code")
			}

			if diff := cmp.Diff(tc.expStdout, stdout.String()); diff != "" {
				t.Fatalf("unexpected stdout (-want, +got):\n%s\n", diff)
			}
			for _, exp := range tc.expLog {
				if !strings.Contains(buf.String(), exp) {
					t.Fatalf("expected %q in log output", exp)
				}
			}
		})
	}
}

func TestTxtErrcode_NegativeCodeArgs(t *testing.T) {
	for name, tc := range map[string]struct {
		args    []string
		expArgs []string
	}{
		"no args": {},
		"plain code": {
			args:    []string{"-d", "c0001234"},
			expArgs: []string{"-d", "c0001234"},
		},
		"negative code moved last": {
			args:    []string{"-1", "-j"},
			expArgs: []string{"-j", "--", "-1"},
		},
		"already terminated": {
			args:    []string{"--", "-1"},
			expArgs: []string{"--", "-1"},
		},
		"cmd file value kept": {
			args:    []string{"-f", "-1cmds"},
			expArgs: []string{"-f", "-1cmds"},
		},
		"clustered cmd file value kept": {
			args:    []string{"-df", "-1cmds"},
			expArgs: []string{"-df", "-1cmds"},
		},
		"long cmd file value kept": {
			args:    []string{"--cmd-file", "-2"},
			expArgs: []string{"--cmd-file", "-2"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			test.CmpAny(t, "arguments", tc.expArgs, negativeCodeArgs(tc.args))
		})
	}
}

func TestTxtErrcode_Run(t *testing.T) {
	for name, tc := range map[string]struct {
		args      []string
		expStatus int
		expStdout string
		expStderr *regexp.Regexp
	}{
		"missing argument prints usage": {
			expStatus: 1,
			expStderr: regexp.MustCompile(`^usage\(\): txt_errcode <hexa_error_code>\n$`),
		},
		"decode": {
			args:      []string{"0x400003f0"},
			expStdout: decodeOutput(0x400003f0),
			expStderr: regexp.MustCompile(`^$`),
		},
		"negative code": {
			args:      []string{"-1"},
			expStdout: decodeOutput(0xffffffff),
			expStderr: regexp.MustCompile(`^$`),
		},
		"fault with resolution": {
			args:      []string{"--strict", "zz"},
			expStatus: 1,
			expStderr: regexp.MustCompile(`^ERROR: \S+: \S+: code = \d+ description = .*\nERROR: \S+: \S+: code = \d+ resolution = ".+"\n$`),
		},
		"unknown option": {
			args:      []string{"--bogus"},
			expStatus: 1,
			expStderr: regexp.MustCompile("^ERROR: \\S+: unknown flag `bogus'\n$"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			status := run(tc.args, &stdout, &stderr)

			test.AssertEqual(t, tc.expStatus, status, "unexpected exit status")
			test.CmpAny(t, "stdout", tc.expStdout, stdout.String())
			if !tc.expStderr.MatchString(stderr.String()) {
				t.Fatalf("stderr %q does not match %q", stderr.String(), tc.expStderr)
			}
		})
	}
}

func TestTxtErrcode_JSON(t *testing.T) {
	for name, tc := range map[string]struct {
		args  []string
		check func(t *testing.T, data []byte)
	}{
		"cpu initiated": {
			args: []string{"-j", "0x80000005"},
			check: func(t *testing.T, data []byte) {
				var got map[string]interface{}
				if err := json.Unmarshal(data, &got); err != nil {
					t.Fatal(err)
				}
				test.AssertEqual(t, "0x80000005", got["error_code"], "")
				if _, found := got["acm"]; found {
					t.Fatal("unexpected acm object")
				}
			},
		},
		"acm initiated": {
			args: []string{"--json", "c1230c11"},
			check: func(t *testing.T, data []byte) {
				var got struct {
					ErrorCode txt.ErrorCode `json:"error_code"`
					ACM       *struct {
						ModuleType     string `json:"module_type"`
						Classification struct {
							ClassName string `json:"class_name"`
						} `json:"classification"`
					} `json:"acm"`
				}
				if err := json.Unmarshal(data, &got); err != nil {
					t.Fatal(err)
				}
				test.AssertEqual(t, txt.ErrorCode(0xc1230c11), got.ErrorCode, "")
				if got.ACM == nil {
					t.Fatal("expected acm object")
				}
				test.AssertEqual(t, "SINIT", got.ACM.ModuleType, "")
				test.AssertEqual(t, "ACM_ENTRY_BIOS_AC_AND_SINIT", got.ACM.Classification.ClassName, "")
			},
		},
		"list": {
			args: []string{"-j", "-l"},
			check: func(t *testing.T, data []byte) {
				var got []classListing
				if err := json.Unmarshal(data, &got); err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(classListings(), got); diff != "" {
					t.Fatalf("unexpected listing (-want, +got):\n%s\n", diff)
				}
			},
		},
		"version": {
			args: []string{"-j", "-v"},
			check: func(t *testing.T, data []byte) {
				var got versionInfo
				if err := json.Unmarshal(data, &got); err != nil {
					t.Fatal(err)
				}
				exp := versionInfo{
					Name:     "txt_errcode",
					Version:  "unset",
					Register: "TXT.ERRORCODE",
				}
				if diff := cmp.Diff(exp, got); diff != "" {
					t.Fatalf("unexpected version (-want, +got):\n%s\n", diff)
				}
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			log, buf := logging.NewTestLogger(t.Name())
			defer test.ShowBufferOnFailure(t, buf)

			var stdout bytes.Buffer
			var opts cliOptions
			if err := parseOpts(tc.args, &opts, &stdout, log); err != nil {
				t.Fatal(err)
			}
			if !strings.HasSuffix(stdout.String(), "}\n") && !strings.HasSuffix(stdout.String(), "]\n") {
				t.Fatalf("expected indented JSON ending in a newline, got %q", stdout.String())
			}
			tc.check(t, stdout.Bytes())
		})
	}
}

func TestTxtErrcode_List(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer test.ShowBufferOnFailure(t, buf)

	var stdout bytes.Buffer
	var opts cliOptions
	if err := parseOpts([]string{"--list"}, &opts, &stdout, log); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")

	var expRows int
	for _, cc := range txt.ClassCodes() {
		expRows += len(cc.MajorCodes())
	}
	test.AssertEqual(t, expRows+2, len(lines), "unexpected line count")

	for i, exp := range []string{"Class", "Name", "Major", "Description"} {
		if got := strings.Fields(lines[0])[i]; got != exp {
			t.Fatalf("column %d: expected %q, got %q", i, exp, got)
		}
	}
	if !strings.HasPrefix(lines[2], "0x01  ACM_ENTRY_BIOS_AC_AND_SINIT") {
		t.Fatalf("unexpected first row %q", lines[2])
	}
	if !strings.HasSuffix(lines[len(lines)-1], "Unsupported record version") {
		t.Fatalf("unexpected last row %q", lines[len(lines)-1])
	}
}

func TestTxtErrcode_ManPage(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer test.ShowBufferOnFailure(t, buf)

	var stdout bytes.Buffer
	var opts cliOptions
	if err := parseOpts([]string{"--man-page"}, &opts, &stdout, log); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), ".TH txt_errcode") {
		t.Fatalf("unexpected man page:\n%s", stdout.String())
	}
}
