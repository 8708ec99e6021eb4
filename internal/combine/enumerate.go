// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package combine implements the combination enumerator (spec.md
// §4.4): given a cluster of normalized variants and the reference
// window spanning them, it enumerates every compatible subset of
// variants, the Cartesian product of alleles each subset contributes,
// and renders each resulting haplotype against the window.
package combine

import "github.com/noporpoise/vcf-hack/internal/variant"

// compatible reports whether v1 and v2 (v1.Pos <= v2.Pos) may appear
// together in the same selected subset: their REF footprints must not
// overlap, and they must not both be pure insertions at the same
// position (which would be ambiguous to stack).
func compatible(v1, v2 *variant.Variant) bool {
	if v1.End() > v2.Pos {
		return false
	}
	if v1.IsInsertion() && v2.IsInsertion() && v1.Pos == v2.Pos {
		return false
	}
	return true
}

// subset is a compatible, non-empty selection of variants, in the
// cluster's sorted order.
type subset struct {
	members []*variant.Variant
}

// enumerateSubsets walks bitset values 1..2^n-1 over the n
// position-sorted variants, pruning whole sub-trees of incompatible
// subsets via the skip-ahead rule described in spec.md §4.4. Bit
// n-1-i of the counter corresponds to vars[i], so scanning from the
// most significant bit down visits variants in footprint order and a
// conflict found at bit j depends only on bits j and above. On finding
// the first bit j whose variant conflicts with the rightmost
// (largest-pos) variant already selected, every counter value sharing
// those upper bits is incompatible too, so the counter jumps past that
// whole block: all bits below j are set and one is added, which
// increments bit j (with carry) and clears every lower bit.
func enumerateSubsets(vars []*variant.Variant, emit func(subset)) {
	n := len(vars)
	if n == 0 {
		return
	}
	max := uint64(1) << uint(n)
	for i := uint64(1); i < max; {
		var members []*variant.Variant
		var prev *variant.Variant
		conflict := -1
		for b := 0; b < n; b++ {
			bit := uint(n - 1 - b)
			if i&(uint64(1)<<bit) == 0 {
				continue
			}
			v := vars[b]
			if prev != nil && !compatible(prev, v) {
				conflict = int(bit)
				break
			}
			members = append(members, v)
			prev = v
		}
		if conflict >= 0 {
			i = (i | (uint64(1)<<uint(conflict) - 1)) + 1
			continue
		}
		emit(subset{members: members})
		i++
	}
}

// forEachAlleleAssignment calls emit once per element of the Cartesian
// product of members[i].Alts, passing the chosen allele index for
// each member in order (an odometer over the per-variant ALT counts).
func forEachAlleleAssignment(members []*variant.Variant, emit func(choice []int)) {
	n := len(members)
	if n == 0 {
		return
	}
	choice := make([]int, n)
	for {
		emit(choice)
		i := n - 1
		for i >= 0 {
			choice[i]++
			if choice[i] < len(members[i].Alts) {
				break
			}
			choice[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}
}
