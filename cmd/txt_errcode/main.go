//
// (C) Copyright 2022-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/txt-tools/txt_errcode/build"
	"github.com/txt-tools/txt_errcode/common/cmdutil"
	"github.com/txt-tools/txt_errcode/fault"
	"github.com/txt-tools/txt_errcode/fault/code"
	"github.com/txt-tools/txt_errcode/logging"
)

type cliOptions struct {
	Debug       bool   `short:"d" long:"debug" description:"Enable debug output"`
	JSON        bool   `short:"j" long:"json" description:"Emit the decoded register as JSON"`
	JSONLogging bool   `short:"J" long:"json-logging" description:"Enable JSON-formatted log output"`
	Strict      bool   `short:"s" long:"strict" description:"Reject error codes that are not 1 to 8 hexadecimal digits"`
	List        bool   `short:"l" long:"list" description:"List the known class and major error codes"`
	Interactive bool   `short:"i" long:"interactive" description:"Start an interactive shell"`
	CmdFile     string `short:"f" long:"cmd-file" description:"Path to a file containing a sequence of shell commands to execute"`
	Version     bool   `short:"v" long:"version" description:"Show version"`
	ManPage     string `long:"man-page" optional:"yes" optional-value:"-" hidden:"yes" description:"Write a man page to the named file"`
	Args        struct {
		ErrorCode errorCodeArg `positional-arg-name:"hexa_error_code"`
	} `positional-args:"yes"`
}

// errorCodeArg records whether the positional argument was given at all,
// so that an empty string is decoded rather than treated as missing.
type errorCodeArg struct {
	value string
	set   bool
}

func (arg *errorCodeArg) UnmarshalFlag(fv string) error {
	arg.value = fv
	arg.set = true
	return nil
}

// reportError logs the error and any fault resolution, returning the
// process exit status.
func reportError(log logging.Logger, err error) int {
	cmdName := path.Base(os.Args[0])
	log.Errorf("%s: %v", cmdName, err)
	if fault.HasResolution(err) {
		log.Errorf("%s: %s", cmdName, fault.ShowResolutionFor(err))
	}
	return 1
}

func printUsage(out io.Writer) {
	fmt.Fprintf(out, "usage(): %s <hexa_error_code>\n", build.ErrorCodeToolName)
}

func checkModes(opts *cliOptions) error {
	var modes []string
	if opts.Args.ErrorCode.set {
		modes = append(modes, "an error code")
	}
	if opts.List {
		modes = append(modes, "--list")
	}
	if opts.Interactive {
		modes = append(modes, "--interactive")
	}
	if opts.CmdFile != "" {
		modes = append(modes, "--cmd-file")
	}

	if len(modes) > 1 {
		return errConflictingOptions(modes...)
	}
	return nil
}

func newParser(opts *cliOptions) *flags.Parser {
	p := flags.NewParser(opts, flags.HelpFlag)
	p.Name = build.ErrorCodeToolName
	p.Usage = "[OPTIONS] <hexa_error_code>"
	p.ShortDescription = "Intel TXT launch error decoder"
	p.LongDescription = `txt_errcode decodes the 32-bit value of the TXT.ERRORCODE register
left behind by a failed Intel TXT measured launch. It reports the generic
register fields and, for shutdowns initiated by the BIOS ACM or SINIT ACM,
the module type, class, major and minor error codes along with the name
of the failed check.

The value is read as hexadecimal with an optional 0x prefix. Use --strict
to reject anything that is not 1 to 8 hexadecimal digits. Decoding can
also be driven from an interactive shell (-i) or from a file of shell
commands (-f).`
	return p
}

// negativeCodeArgs moves a leading-dash error code such as "-1" behind a
// "--" terminator so that go-flags does not read it as a short option.
// No short option is a digit. The value of -f/--cmd-file is left alone.
func negativeCodeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if len(arg) < 2 || arg[0] != '-' || arg[1] < '0' || arg[1] > '9' {
			continue
		}
		if i > 0 && takesCmdFile(args[i-1]) {
			continue
		}

		moved := make([]string, 0, len(args)+1)
		moved = append(moved, args[:i]...)
		moved = append(moved, args[i+1:]...)
		return append(moved, "--", arg)
	}
	return args
}

func takesCmdFile(opt string) bool {
	if opt == "--cmd-file" {
		return true
	}
	return len(opt) > 1 && opt[0] == '-' && opt[1] != '-' && strings.HasSuffix(opt, "f")
}

func parseOpts(args []string, opts *cliOptions, stdout io.Writer, log *logging.LeveledLogger) error {
	p := newParser(opts)

	if _, err := p.ParseArgs(negativeCodeArgs(args)); err != nil {
		if fe, ok := errors.Cause(err).(*flags.Error); ok && fe.Type == flags.ErrHelp {
			log.Info(fe.Error() + "\n")
			printCommands(createGrumbleApp(nil), log)
			return nil
		}
		return err
	}

	if opts.JSONLogging {
		log.WithJSONOutput()
	}
	if opts.Debug {
		log.SetLevel(logging.LogLevelDebug)
		log.Debug("debug output enabled")
	}

	if opts.ManPage != "" {
		return cmdutil.WriteManPage(p, stdout, opts.ManPage)
	}

	cmd := &errorCodeCmd{
		log:    log,
		stdout: stdout,
		strict: opts.Strict,
	}
	cmd.EnableJSONOutput(opts.JSON)

	if opts.Version {
		return cmd.version()
	}

	if err := checkModes(opts); err != nil {
		return err
	}

	switch {
	case opts.List:
		return cmd.list()
	case opts.CmdFile != "":
		return runFileCmds(log, createGrumbleApp(cmd), opts.CmdFile)
	case opts.Interactive:
		return runShell(log, createGrumbleApp(cmd))
	case !opts.Args.ErrorCode.set:
		return errMissingErrorCode
	}

	return cmd.decode(opts.Args.ErrorCode.value)
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts cliOptions
	log := logging.NewCommandLineLoggerTo(stdout, stderr)

	if err := parseOpts(args, &opts, stdout, log); err != nil {
		if fault.GetCode(err) == code.CliMissingErrorCode {
			printUsage(stderr)
			return 1
		}
		return reportError(log, err)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
