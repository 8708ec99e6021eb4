// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package cliutil holds the small pieces of CLI plumbing shared by the
// vcfcombo, vcfcombine and vcfref commands: the teacher's
// RunCommand(prog, args, stdin, stdout, stderr) int convention (see
// cmd.go) and its isatty-aware logrus formatter setup.
package cliutil

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Command is the convention every subcommand of this module follows,
// mirroring git.arvados.org/arvados.git/lib/cmd.Handler in the teacher
// repo: RunCommand never calls os.Exit itself, so it can be driven
// from tests as easily as from a cmd/ main.go.
type Command interface {
	RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int
}

// SetupLogging disables logrus's timestamp when stderr is not a
// terminal, matching lightning's Main(): container and CI logs
// already carry their own timestamps, so a second one is noise.
func SetupLogging() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.StandardLogger().Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}
}

// Main runs cmd with os.Args/os.Stdin/os.Stdout/os.Stderr and calls
// os.Exit with its result, the same top-level shape as lightning's own
// Main() in cmd.go, minus the multi-subcommand dispatcher this module
// doesn't need (each binary here is already a single command).
func Main(cmd Command) {
	SetupLogging()
	os.Exit(cmd.RunCommand(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
