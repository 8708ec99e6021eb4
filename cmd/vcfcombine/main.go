// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Command vcfcombine is the legacy two-variant-at-a-time overlap
// merge (spec.md §4.7, original_source/vcf_combine.c): it never
// enumerates a combinatorial subset, only ever folding the next
// overlapping record into whatever has already been merged.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/noporpoise/vcf-hack/internal/cliutil"
	"github.com/noporpoise/vcf-hack/internal/driver"
	"github.com/noporpoise/vcf-hack/internal/vcfio"
)

func main() {
	cliutil.Main(&vcfcombine{})
}

type vcfcombine struct {
	k int
}

func (c *vcfcombine) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()

	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&c.k, "k", 10, "merge variants whose footprints are within `k` bases of each other")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-k bases] <in.vcf[.gz]> [in.fa[.gz] ...]\n", prog)
		flags.PrintDefaults()
	}
	if err = flags.Parse(args); err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		err = errors.New("missing input VCF")
		return 2
	}

	vcfPath := flags.Arg(0)
	refPaths := flags.Args()[1:]

	idx, err := driver.LoadReferences(refPaths)
	if err != nil {
		return 1
	}

	in, err := vcfio.Open(vcfPath)
	if err != nil {
		return 1
	}
	defer in.Close()
	vcfr, err := vcfio.MaybeGunzip(in)
	if err != nil {
		return 1
	}

	if err = driver.Run(vcfr, stdout, idx, driver.Options{K: c.k, Linear: true}); err != nil {
		return 1
	}
	return 0
}
