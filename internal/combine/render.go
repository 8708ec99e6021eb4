// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package combine

import (
	"bytes"
	"sort"

	"github.com/noporpoise/vcf-hack/internal/cluster"
	"github.com/noporpoise/vcf-hack/internal/variant"
	"github.com/noporpoise/vcf-hack/internal/vcferr"
	"github.com/noporpoise/vcf-hack/internal/vcfio"
)

// Combine renders one output record for cl against the full reference
// sequence of cl's chromosome. A single-variant cluster is emitted
// unchanged (spec.md §4.5): no window widening and no padding base,
// preserving identity when no merging occurred.
func Combine(cl *cluster.Cluster, ref []byte) (vcfio.Record, error) {
	if len(cl.Variants) == 1 {
		v := cl.Variants[0]
		if err := checkBounds(v, ref); err != nil {
			return vcfio.Record{}, err
		}
		return vcfio.Record{Chrom: v.Chrom, Pos: v.Pos, ID: v.ID, Ref: v.Ref, Alts: v.Alts, Suffix: v.Suffix}, nil
	}
	return combineMulti(cl, ref)
}

func checkBounds(v *variant.Variant, ref []byte) error {
	if v.End()-1 > len(ref) {
		return vcferr.New(vcferr.OutOfBounds, "%s:%d: REF extends past end of reference (len %d)", v.Chrom, v.Pos, len(ref))
	}
	return nil
}

func combineMulti(cl *cluster.Cluster, ref []byte) (vcfio.Record, error) {
	vars := make([]*variant.Variant, len(cl.Variants))
	copy(vars, cl.Variants)
	sort.SliceStable(vars, func(i, j int) bool {
		if vars[i].Pos != vars[j].Pos {
			return vars[i].Pos < vars[j].Pos
		}
		return vars[i].RefLen() < vars[j].RefLen()
	})

	for _, v := range vars {
		if err := checkBounds(v, ref); err != nil {
			return vcfio.Record{}, err
		}
	}

	minstart, maxend := footprint(vars, len(ref))
	window := ref[minstart:maxend]

	relPos := make(map[*variant.Variant]int, len(vars))
	for _, v := range vars {
		relPos[v] = (v.Pos - 1) - minstart
	}

	var alts [][]byte
	enumerateSubsets(vars, func(s subset) {
		forEachAlleleAssignment(s.members, func(choice []int) {
			alts = append(alts, renderHaplotype(s.members, relPos, choice, window))
		})
	})

	sort.Slice(alts, func(i, j int) bool { return bytes.Compare(alts[i], alts[j]) < 0 })
	finalRef := upcaseCopy(window)
	alts = dedupSorted(alts, finalRef)

	pad := needsPadding(len(window), alts)
	// footprint has already widened the window by one reference base
	// for each indel, which anchors every haplotype; no further padding
	// base is added then unless some haplotype would still be empty.
	anchored := false
	for _, v := range vars {
		anchored = anchored || v.IsIndel()
	}
	for _, a := range alts {
		anchored = anchored && len(a) > 0
	}
	if anchored {
		pad = false
	}
	pos := minstart + 1
	if pad {
		var padByte byte = 'N'
		if minstart > 0 {
			padByte = upcase(ref[minstart-1])
		}
		finalRef = append([]byte{padByte}, finalRef...)
		for i, a := range alts {
			alts[i] = append([]byte{padByte}, a...)
		}
		pos = minstart
	}

	first := cl.Variants[0]
	return vcfio.Record{
		Chrom:  first.Chrom,
		Pos:    pos,
		ID:     first.ID,
		Ref:    finalRef,
		Alts:   alts,
		Suffix: first.Suffix,
	}, nil
}

// footprint computes the 0-based [minstart, maxend) window spanning
// vars, widening each pure-indel variant by one base so the window
// always has an anchor base to splice around, matching the original C
// vcfcombo's vset_merge (which decrements pos and increments reflen
// for indels before taking the min/max). The added base is the one
// before the indel; only for an indel at the very start of the
// reference, where pos cannot be decremented, is it the base after.
// Bounds are clamped to the reference length.
func footprint(vars []*variant.Variant, reflen int) (minstart, maxend int) {
	minstart = 1<<63 - 1
	maxend = 0
	for _, v := range vars {
		pos := v.Pos - 1
		length := v.RefLen()
		if v.IsIndel() {
			if pos > 0 {
				pos--
			}
			length++
		}
		if pos < minstart {
			minstart = pos
		}
		if end := pos + length; end > maxend {
			maxend = end
		}
	}
	if maxend > reflen {
		maxend = reflen
	}
	if minstart > maxend {
		minstart = maxend
	}
	return minstart, maxend
}

// renderHaplotype splices the chosen allele of each selected member
// into window, copying the untouched reference bytes between and
// around them (upper-cased, since they come straight from the
// reference) and leaving each chosen allele's case as received.
func renderHaplotype(members []*variant.Variant, relPos map[*variant.Variant]int, choice []int, window []byte) []byte {
	out := make([]byte, 0, len(window)+4)
	cursor := 0
	for i, m := range members {
		p := relPos[m]
		if p > cursor {
			out = append(out, upcaseCopy(window[cursor:p])...)
		}
		out = append(out, m.Alts[choice[i]]...)
		cursor = p + m.RefLen()
	}
	if cursor < len(window) {
		out = append(out, upcaseCopy(window[cursor:])...)
	}
	return out
}

func needsPadding(windowLen int, alts [][]byte) bool {
	if windowLen != 1 {
		return true
	}
	for _, a := range alts {
		if len(a) != 1 {
			return true
		}
	}
	return false
}

func dedupSorted(alts [][]byte, ref []byte) [][]byte {
	out := alts[:0]
	for _, a := range alts {
		if bytes.Equal(a, ref) {
			continue
		}
		if len(out) > 0 && bytes.Equal(a, out[len(out)-1]) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func upcase(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func upcaseCopy(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = upcase(c)
	}
	return out
}
