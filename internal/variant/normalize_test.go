// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package variant

import "gopkg.in/check.v1"

type normalizeSuite struct{}

var _ = check.Suite(&normalizeSuite{})

func (s *normalizeSuite) TestTrimCommonPrefixAndSuffix(c *check.C) {
	v := &Variant{Pos: 100, Ref: []byte("CAT"), Alts: [][]byte{[]byte("CGT")}}
	ok := Normalize(v)
	c.Assert(ok, check.Equals, true)
	c.Check(v.Pos, check.Equals, 101)
	c.Check(string(v.Ref), check.Equals, "A")
	c.Check(string(v.Alts[0]), check.Equals, "G")
}

func (s *normalizeSuite) TestNormalizeDropsAltEqualToRef(c *check.C) {
	v := &Variant{Pos: 1, Ref: []byte("A"), Alts: [][]byte{[]byte("a")}}
	ok := Normalize(v)
	c.Check(ok, check.Equals, false)
	c.Check(len(v.Alts), check.Equals, 0)
}

func (s *normalizeSuite) TestNormalizeDedupsCaseInsensitive(c *check.C) {
	v := &Variant{Pos: 1, Ref: []byte("A"), Alts: [][]byte{[]byte("G"), []byte("g"), []byte("T")}}
	ok := Normalize(v)
	c.Assert(ok, check.Equals, true)
	c.Check(len(v.Alts), check.Equals, 2)
}

func (s *normalizeSuite) TestNormalizeLeavesIndelUntrimmedPastAnchor(c *check.C) {
	// REF=AT, ALT=A (deletion): no common suffix to trim once the
	// shared leading "A" is removed, since the alt has run out of bases.
	v := &Variant{Pos: 5, Ref: []byte("AT"), Alts: [][]byte{[]byte("A")}}
	ok := Normalize(v)
	c.Assert(ok, check.Equals, true)
	c.Check(v.Pos, check.Equals, 6)
	c.Check(string(v.Ref), check.Equals, "T")
	c.Check(string(v.Alts[0]), check.Equals, "")
}
