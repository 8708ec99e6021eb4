// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package refcheck implements the vcfref reference-consistency filter
// (SPEC_FULL.md §4.11), recovered from the original implementation's
// vcf_ref.c: biallelic records whose REF does not match the loaded
// reference sequence at their position are dropped, optionally after
// trying REF/ALT swapped (the -s option).
package refcheck

import (
	"bytes"

	log "github.com/sirupsen/logrus"

	"github.com/noporpoise/vcf-hack/internal/refindex"
	"github.com/noporpoise/vcf-hack/internal/variant"
)

// Options configures one vcfref run.
type Options struct {
	// SwapAlleles, if true, swaps REF and ALT when that fixes a
	// reference mismatch instead of dropping the record outright.
	SwapAlleles bool
}

// Result is what Check decided to do with one variant.
type Result int

const (
	// Keep means the variant (possibly mutated, if swapped) should be
	// written out unchanged.
	Keep Result = iota
	// Drop means the variant failed the reference check and should be
	// silently omitted from the output.
	Drop
)

// Check compares v's REF (and, if allowed, ALT) against ref at v's
// position and decides whether the record may be kept. It mirrors the
// C tool's scope restriction to biallelic records: anything without
// exactly one ALT allele is dropped without being compared.
//
// The original's admission test -- "(reflen==1 && altlen==1) ||
// ref[0]==alt[0]" -- only ever considers records where a single-base
// substitution or an anchored indel makes a REF/ALT comparison
// meaningful; anything else is rejected without even inspecting the
// reference, which Check reproduces via isComparable.
func Check(v *variant.Variant, idx *refindex.Index, opt Options) Result {
	if v.NumAlts() != 1 {
		return Drop
	}
	seq, ok := idx.Get(v.Chrom)
	if !ok {
		log.Warnf("vcfref: unknown chromosome %q, dropping record at %d", v.Chrom, v.Pos)
		return Drop
	}
	alt := v.Alts[0]
	if !isComparable(v.Ref, alt) {
		return Drop
	}

	start := v.Pos - 1
	if matchesAt(seq, start, v.Ref) {
		return Keep
	}
	if opt.SwapAlleles && matchesAt(seq, start, alt) {
		v.Ref, v.Alts[0] = alt, v.Ref
		return Keep
	}
	return Drop
}

// isComparable reports whether ref/alt are both single bases, or
// otherwise share a leading anchor base -- the same scope restriction
// the original tool applies before ever touching the reference.
func isComparable(ref, alt []byte) bool {
	if len(ref) == 1 && len(alt) == 1 {
		return true
	}
	return len(ref) > 0 && len(alt) > 0 && ref[0] == alt[0]
}

// matchesAt reports whether seq[start:start+len(allele)] equals allele,
// case-insensitively, without running off either end of seq.
func matchesAt(seq []byte, start int, allele []byte) bool {
	if start < 0 || start+len(allele) > len(seq) {
		return false
	}
	return bytes.EqualFold(seq[start:start+len(allele)], allele)
}
