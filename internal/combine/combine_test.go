// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package combine

import (
	"testing"

	"gopkg.in/check.v1"

	"github.com/noporpoise/vcf-hack/internal/cluster"
	"github.com/noporpoise/vcf-hack/internal/variant"
)

func Test(t *testing.T) { check.TestingT(t) }

type combineSuite struct{}

var _ = check.Suite(&combineSuite{})

func (s *combineSuite) TestSingleVariantClusterPassesThroughUnchanged(c *check.C) {
	v := &variant.Variant{Chrom: "chr1", Pos: 2, ID: "rs1", Ref: []byte("C"), Alts: [][]byte{[]byte("T")}, Suffix: "."}
	cl := &cluster.Cluster{Chrom: "chr1", Variants: []*variant.Variant{v}}
	rec, err := Combine(cl, []byte("ACGTACGT"))
	c.Assert(err, check.IsNil)
	c.Check(rec.Pos, check.Equals, 2)
	c.Check(string(rec.Ref), check.Equals, "C")
	c.Check(string(rec.Alts[0]), check.Equals, "T")
}

func (s *combineSuite) TestTwoCompatibleSNPsEnumerateAllSubsets(c *check.C) {
	v1 := &variant.Variant{Chrom: "chr1", Pos: 2, ID: ".", Ref: []byte("C"), Alts: [][]byte{[]byte("T")}, Suffix: "."}
	v2 := &variant.Variant{Chrom: "chr1", Pos: 4, ID: ".", Ref: []byte("T"), Alts: [][]byte{[]byte("G")}, Suffix: "."}
	cl := &cluster.Cluster{Chrom: "chr1", Variants: []*variant.Variant{v1, v2}}

	rec, err := Combine(cl, []byte("ACGTACGT"))
	c.Assert(err, check.IsNil)
	c.Check(rec.Pos, check.Equals, 1)
	c.Check(string(rec.Ref), check.Equals, "ACGT")

	got := make([]string, len(rec.Alts))
	for i, a := range rec.Alts {
		got[i] = string(a)
	}
	c.Check(got, check.DeepEquals, []string{"ACGG", "ATGG", "ATGT"})
}

func (s *combineSuite) TestOutOfBoundsVariantErrors(c *check.C) {
	v1 := &variant.Variant{Chrom: "chr1", Pos: 8, Ref: []byte("ACGT"), Alts: [][]byte{[]byte("TTTT")}, Suffix: "."}
	cl := &cluster.Cluster{Chrom: "chr1", Variants: []*variant.Variant{v1}}
	_, err := Combine(cl, []byte("ACGTACGT"))
	c.Assert(err, check.NotNil)
}

func (s *combineSuite) TestInsertionWidensFootprintForPadding(c *check.C) {
	// A pure insertion at position 3 (REF empty) between two anchor
	// bases; the window must widen by one base to the left so the
	// splice has something to anchor against.
	ins := &variant.Variant{Chrom: "chr1", Pos: 3, Ref: nil, Alts: [][]byte{[]byte("AA")}, Suffix: "."}
	del := &variant.Variant{Chrom: "chr1", Pos: 6, Ref: []byte("C"), Alts: [][]byte{nil}, Suffix: "."}
	cl := &cluster.Cluster{Chrom: "chr1", Variants: []*variant.Variant{ins, del}}
	rec, err := Combine(cl, []byte("ACGTACGT"))
	c.Assert(err, check.IsNil)
	c.Check(rec.Pos <= 3, check.Equals, true)
}
