//
// (C) Copyright 2022-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertbit/columnize"
	"github.com/desertbit/go-shlex"
	"github.com/desertbit/grumble"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/txt-tools/txt_errcode/build"
	"github.com/txt-tools/txt_errcode/logging"
)

const (
	helpCommandsHeader = `
Available shell commands:

`
	grumbleUnknownCmdErr = "unknown command, try 'help'"
	historyFileName      = ".txt_errcode_history"
)

func addShellCommands(app *grumble.App, cmd *errorCodeCmd) {
	app.AddCommand(&grumble.Command{
		Name:     "decode",
		Aliases:  []string{"d"},
		Help:     "Decode a " + build.ErrorCodeRegister + " value",
		LongHelp: "Decode a " + build.ErrorCodeRegister + " value given in hexadecimal, with or without a 0x prefix.",
		Flags: func(f *grumble.Flags) {
			f.Bool("s", "strict", false, "Reject values that are not 1 to 8 hexadecimal digits")
			f.Bool("j", "json", false, "Emit the decoded register as JSON")
		},
		Args: func(a *grumble.Args) {
			a.String("error_code", "Register value in hexadecimal")
		},
		Run: func(c *grumble.Context) error {
			sub := *cmd
			sub.strict = cmd.strict || c.Flags.Bool("strict")
			sub.EnableJSONOutput(cmd.JSONOutputEnabled() || c.Flags.Bool("json"))
			return sub.decode(c.Args.String("error_code"))
		},
	})
	app.AddCommand(&grumble.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Help:    "List the known class and major error codes",
		Flags: func(f *grumble.Flags) {
			f.Bool("j", "json", false, "Emit the listing as JSON")
		},
		Run: func(c *grumble.Context) error {
			sub := *cmd
			sub.EnableJSONOutput(cmd.JSONOutputEnabled() || c.Flags.Bool("json"))
			return sub.list()
		},
	})
	app.AddCommand(&grumble.Command{
		Name: "version",
		Help: "Print " + build.ErrorCodeToolName + " version",
		Run: func(c *grumble.Context) error {
			return cmd.version()
		},
	})
}

func createGrumbleApp(cmd *errorCodeCmd) *grumble.App {
	homedir, err := os.UserHomeDir()
	if err != nil {
		homedir = "/tmp"
	}

	app := grumble.New(&grumble.Config{
		Name:              build.ErrorCodeToolName,
		Description:       build.ErrorCodeRegister + " decoder shell",
		HistoryFile:       filepath.Join(homedir, historyFileName),
		Prompt:            build.ErrorCodeToolName + ":  ",
		PromptColor:       color.New(color.FgCyan, color.Bold),
		HelpHeadlineColor: color.New(color.FgGreen),
	})

	addShellCommands(app, cmd)

	// grumble also includes a builtin exit command
	app.AddCommand(&grumble.Command{
		Name:    "quit",
		Aliases: []string{"q"},
		Help:    "exit the shell",
		Run: func(c *grumble.Context) error {
			c.Stop()
			return nil
		},
	})
	return app
}

func runCmdStr(app *grumble.App, cmd string, args ...string) error {
	err := app.RunCommand(append([]string{cmd}, args...))
	if err != nil && err.Error() == grumbleUnknownCmdErr {
		return errUnknownShellCommand(cmd)
	}
	return err
}

func runFileCmds(log logging.Logger, app *grumble.App, fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return errCommandFileFailed(fileName, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Errorf("error closing %q: %s", fileName, err)
		}
	}()

	log.Debugf("running commands in %q", fileName)
	scanner := bufio.NewScanner(file)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		lineStr := scanner.Text()
		lineCmd, err := shlex.Split(lineStr, true)
		if err != nil {
			return errCommandFileFailed(fileName, errors.Wrapf(err, "line %d", lineNum))
		}
		if len(lineCmd) == 0 || strings.HasPrefix(lineCmd[0], "#") {
			continue
		}

		log.Debugf("running command %q", lineStr)
		if err := runCmdStr(app, lineCmd[0], lineCmd[1:]...); err != nil {
			return errCommandFileFailed(fileName, errors.Wrapf(err, "line %d", lineNum))
		}
	}
	if err := scanner.Err(); err != nil {
		return errCommandFileFailed(fileName, err)
	}

	return nil
}

func runShell(log logging.Logger, app *grumble.App) error {
	log.Info(build.String(build.ErrorCodeToolName))
	// grumble parses the process arguments for its own flags
	os.Args = os.Args[:1]
	return app.Run()
}

// grumble can only print its help from inside the interactive shell, so
// the command list for --help is assembled here.
func printCommands(app *grumble.App, log logging.Logger) {
	var output []string
	for _, c := range app.Commands().All() {
		if c.Name == "quit" {
			continue
		}
		output = append(output, c.Name+columnize.DefaultConfig().Delim+c.Help)
	}
	log.Info(helpCommandsHeader + columnize.SimpleFormat(output) + "\n")
}
