// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package linear implements the simpler two-variant-at-a-time overlap
// merge (spec.md §4.7): it never enumerates a Cartesian product, and a
// third overlapping record merges against the already-merged result
// of the first two rather than joining a combinatorial cluster.
package linear

import (
	"bytes"
	"sort"

	"github.com/noporpoise/vcf-hack/internal/variant"
	"github.com/noporpoise/vcf-hack/internal/vcferr"
)

// Merge combines v0 and v1, which must be on the same chromosome with
// v1 within the overlap window of v0, into a single variant whose REF
// spans both footprints and whose ALTs are the deduplicated union of
// each input's alleles spliced into the widened REF window at their
// own local offset. Reference-derived bytes keep whatever case they
// have in ref (unlike the combinatorial core, which always upper-
// cases them) since this mode works directly off the file's own REF
// text rather than a freshly cut window. The merge result is itself a
// valid *variant.Variant, so a third overlapping record can be merged
// into it the same way.
func Merge(v0, v1 *variant.Variant, ref []byte) (*variant.Variant, error) {
	reflen0, reflen1 := v0.RefLen(), v1.RefLen()
	mergelen := reflen0
	if end := v1.Pos + reflen1 - v0.Pos; end > mergelen {
		mergelen = end
	}
	start0 := v0.Pos - 1
	if start0 < 0 || start0+mergelen > len(ref) {
		return nil, vcferr.New(vcferr.OutOfBounds, "%s:%d: merged REF extends past end of reference (len %d)", v0.Chrom, v0.Pos, len(ref))
	}
	window := ref[start0 : start0+mergelen]

	mergedRef := make([]byte, 0, len(v0.Ref)+mergelen-reflen0)
	mergedRef = append(mergedRef, v0.Ref...)
	mergedRef = append(mergedRef, window[reflen0:mergelen]...)

	var alts [][]byte
	for _, a := range v0.Alts {
		alts = append(alts, spliceAlt(a, 0, reflen0, window, mergelen))
	}
	offset1 := v1.Pos - v0.Pos
	for _, a := range v1.Alts {
		alts = append(alts, spliceAlt(a, offset1, reflen1, window, mergelen))
	}
	alts = dedupCaseInsensitive(alts)

	return &variant.Variant{
		Chrom:  v0.Chrom,
		Pos:    v0.Pos,
		ID:     v0.ID,
		Ref:    mergedRef,
		Alts:   alts,
		Suffix: v0.Suffix,
	}, nil
}

// spliceAlt embeds alt (length rlen's allele, starting at offset
// inside window) into the full merged window, replacing the rlen
// reference bytes at that offset with alt.
func spliceAlt(alt []byte, offset, rlen int, window []byte, mergelen int) []byte {
	out := make([]byte, 0, mergelen-rlen+len(alt))
	out = append(out, window[:offset]...)
	out = append(out, alt...)
	out = append(out, window[offset+rlen:mergelen]...)
	return out
}

func dedupCaseInsensitive(alts [][]byte) [][]byte {
	sort.Slice(alts, func(i, j int) bool {
		return bytes.Compare(bytes.ToUpper(alts[i]), bytes.ToUpper(alts[j])) < 0
	})
	out := alts[:0]
	for _, a := range alts {
		if len(out) > 0 && bytes.EqualFold(a, out[len(out)-1]) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Overlaps reports whether v1 lies within k bases of v0's footprint on
// the same chromosome -- the same overlap test the cluster accumulator
// uses, so both operating modes agree on what counts as "adjacent".
func Overlaps(v0, v1 *variant.Variant, k int) bool {
	return v0.Chrom == v1.Chrom && v1.Pos-(v0.Pos+v0.RefLen()-1) <= k
}
