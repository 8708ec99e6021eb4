// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Command vcfref drops biallelic VCF records whose REF does not match
// the reference genome (SPEC_FULL.md §4.11, original_source/vcf_ref.c),
// optionally fixing a mismatch by swapping REF and ALT.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/noporpoise/vcf-hack/internal/cliutil"
	"github.com/noporpoise/vcf-hack/internal/driver"
	"github.com/noporpoise/vcf-hack/internal/refcheck"
	"github.com/noporpoise/vcf-hack/internal/refindex"
	"github.com/noporpoise/vcf-hack/internal/variant"
	"github.com/noporpoise/vcf-hack/internal/vcfio"
)

func main() {
	cliutil.Main(&vcfref{})
}

type vcfref struct {
	swap bool
}

func (c *vcfref) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()

	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&c.swap, "s", false, "swap REF/ALT if that fixes a reference mismatch")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-s] <in.vcf[.gz]> [in.fa[.gz] ...]\n", prog)
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

	if err = filter(vcfr, stdout, idx, refcheck.Options{SwapAlleles: c.swap}); err != nil {
		return 1
	}
	return 0
}

func filter(vcfIn io.Reader, vcfOut io.Writer, idx *refindex.Index, opt refcheck.Options) error {
	ls := vcfio.NewLineScanner(vcfIn)
	w := vcfio.NewWriter(vcfOut)

	if _, err := vcfio.ReadHeader(ls, w); err != nil {
		return err
	}

	for ls.Scan() {
		line := ls.Bytes()
		if len(line) == 0 {
			continue
		}
		v, err := variant.ParseLine(line)
		if err != nil {
			return err
		}
		if refcheck.Check(v, idx, opt) == refcheck.Drop {
			continue
		}
		if err := w.WriteRecord(vcfio.Record{
			Chrom:  v.Chrom,
			Pos:    v.Pos,
			ID:     v.ID,
			Ref:    v.Ref,
			Alts:   v.Alts,
			Suffix: v.Suffix,
		}); err != nil {
			return err
		}
	}
	if err := ls.Err(); err != nil {
		return err
	}
	return w.Flush()
}
