// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package linear

import (
	"testing"

	"gopkg.in/check.v1"

	"github.com/noporpoise/vcf-hack/internal/variant"
)

func Test(t *testing.T) { check.TestingT(t) }

type linearSuite struct{}

var _ = check.Suite(&linearSuite{})

func (s *linearSuite) TestMergeSplicesBothSetsOfAlts(c *check.C) {
	// ref:"G" alts:"A,T" offset: 1; rlen:1; ref: "TGA"; matches the
	// worked example in the original implementation's merge_alts doc
	// comment.
	v0 := &variant.Variant{Chrom: "chr1", Pos: 10, ID: "v0", Ref: []byte("G"), Alts: [][]byte{[]byte("A"), []byte("T")}, Suffix: "."}
	v1 := &variant.Variant{Chrom: "chr1", Pos: 11, ID: "v1", Ref: []byte("A"), Alts: [][]byte{[]byte("C")}, Suffix: "."}
	ref := []byte("XXXXXXXXXGA") // 0-based index 9='G' (pos10), 10='A' (pos11)

	merged, err := Merge(v0, v1, ref)
	c.Assert(err, check.IsNil)
	c.Check(merged.Pos, check.Equals, 10)
	c.Check(string(merged.Ref), check.Equals, "GA")

	got := make([]string, len(merged.Alts))
	for i, a := range merged.Alts {
		got[i] = string(a)
	}
	c.Check(got, check.DeepEquals, []string{"AA", "GC", "TA"})
}

func (s *linearSuite) TestMergeIsCaseInsensitiveDedup(c *check.C) {
	v0 := &variant.Variant{Chrom: "chr1", Pos: 1, Ref: []byte("A"), Alts: [][]byte{[]byte("g")}, Suffix: "."}
	v1 := &variant.Variant{Chrom: "chr1", Pos: 1, Ref: []byte("A"), Alts: [][]byte{[]byte("G")}, Suffix: "."}
	ref := []byte("A")

	merged, err := Merge(v0, v1, ref)
	c.Assert(err, check.IsNil)
	c.Check(len(merged.Alts), check.Equals, 1)
}

func (s *linearSuite) TestOverlapsRespectsK(c *check.C) {
	v0 := &variant.Variant{Chrom: "chr1", Pos: 10, Ref: []byte("A")}
	near := &variant.Variant{Chrom: "chr1", Pos: 12, Ref: []byte("A")}
	far := &variant.Variant{Chrom: "chr1", Pos: 50, Ref: []byte("A")}
	c.Check(Overlaps(v0, near, 5), check.Equals, true)
	c.Check(Overlaps(v0, far, 5), check.Equals, false)
}

func (s *linearSuite) TestMergeOutOfBoundsErrors(c *check.C) {
	v0 := &variant.Variant{Chrom: "chr1", Pos: 5, Ref: []byte("AAAA")}
	v1 := &variant.Variant{Chrom: "chr1", Pos: 6, Ref: []byte("AAAA")}
	_, err := Merge(v0, v1, []byte("ACGT"))
	c.Assert(err, check.NotNil)
}
