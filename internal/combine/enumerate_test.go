// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package combine

import (
	"gopkg.in/check.v1"

	"github.com/noporpoise/vcf-hack/internal/variant"
)

type enumerateSuite struct{}

var _ = check.Suite(&enumerateSuite{})

func snp(pos int) *variant.Variant {
	return &variant.Variant{Pos: pos, Ref: []byte("A"), Alts: [][]byte{[]byte("G")}}
}

func (s *enumerateSuite) TestEnumerateSubsetsPrunesOverlapping(c *check.C) {
	// Two SNPs one base apart would not overlap (first's End ==
	// second's Pos, i.e. they share no base, so they ARE compatible);
	// make the second an insertion at the same position as the first,
	// listed after it, to force an incompatible pair and confirm the
	// {both} subset is pruned.
	v1 := snp(10)
	v2 := &variant.Variant{Pos: 10, Ref: nil, Alts: [][]byte{[]byte("A")}} // insertion at same pos as v1
	var got []int
	enumerateSubsets([]*variant.Variant{v1, v2}, func(sub subset) {
		got = append(got, len(sub.members))
	})
	// only the two singletons should ever be emitted: {v1} and {v2},
	// never {v1,v2}: the both-insertion rule does not apply since v1
	// is a SNP, but v1.End()=11 > v2.Pos=10 makes the footprints
	// overlap, which bars the pair.
	c.Check(len(got), check.Equals, 2)
}

func (s *enumerateSuite) TestEnumerateSubsetsAllowsDisjointTriple(c *check.C) {
	vars := []*variant.Variant{snp(10), snp(20), snp(30)}
	count := 0
	enumerateSubsets(vars, func(sub subset) { count++ })
	c.Check(count, check.Equals, 7) // 2^3 - 1 non-empty subsets, all compatible
}

func (s *enumerateSuite) TestForEachAlleleAssignmentIsCartesian(c *check.C) {
	a := &variant.Variant{Alts: [][]byte{[]byte("A"), []byte("C")}}
	b := &variant.Variant{Alts: [][]byte{[]byte("G")}}
	var count int
	forEachAlleleAssignment([]*variant.Variant{a, b}, func(choice []int) { count++ })
	c.Check(count, check.Equals, 2)
}
