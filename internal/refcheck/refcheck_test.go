// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package refcheck

import (
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/noporpoise/vcf-hack/internal/refindex"
	"github.com/noporpoise/vcf-hack/internal/variant"
)

func Test(t *testing.T) { check.TestingT(t) }

type refcheckSuite struct{}

var _ = check.Suite(&refcheckSuite{})

func mustIndex(c *check.C, fasta string) *refindex.Index {
	idx := &refindex.Index{}
	err := idx.Load(strings.NewReader(fasta))
	c.Assert(err, check.IsNil)
	return idx
}

func (s *refcheckSuite) TestKeepsMatchingRef(c *check.C) {
	idx := mustIndex(c, ">chr1\nACGTACGT\n")
	v := &variant.Variant{Chrom: "chr1", Pos: 2, Ref: []byte("C"), Alts: [][]byte{[]byte("T")}}
	c.Check(Check(v, idx, Options{}), check.Equals, Keep)
}

func (s *refcheckSuite) TestDropsMismatchedRef(c *check.C) {
	idx := mustIndex(c, ">chr1\nACGTACGT\n")
	v := &variant.Variant{Chrom: "chr1", Pos: 2, Ref: []byte("T"), Alts: [][]byte{[]byte("A")}}
	c.Check(Check(v, idx, Options{}), check.Equals, Drop)
}

func (s *refcheckSuite) TestSwapFixesMismatch(c *check.C) {
	idx := mustIndex(c, ">chr1\nACGTACGT\n")
	v := &variant.Variant{Chrom: "chr1", Pos: 2, Ref: []byte("T"), Alts: [][]byte{[]byte("C")}}
	c.Check(Check(v, idx, Options{SwapAlleles: true}), check.Equals, Keep)
	c.Check(string(v.Ref), check.Equals, "C")
	c.Check(string(v.Alts[0]), check.Equals, "T")
}

func (s *refcheckSuite) TestMultiAllelicDropped(c *check.C) {
	idx := mustIndex(c, ">chr1\nACGTACGT\n")
	v := &variant.Variant{Chrom: "chr1", Pos: 2, Ref: []byte("C"), Alts: [][]byte{[]byte("T"), []byte("G")}}
	c.Check(Check(v, idx, Options{}), check.Equals, Drop)
}

func (s *refcheckSuite) TestUnknownChromDropped(c *check.C) {
	idx := mustIndex(c, ">chr1\nACGTACGT\n")
	v := &variant.Variant{Chrom: "chr2", Pos: 1, Ref: []byte("A"), Alts: [][]byte{[]byte("T")}}
	c.Check(Check(v, idx, Options{}), check.Equals, Drop)
}
