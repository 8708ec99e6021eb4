// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package refindex

import (
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type refindexSuite struct{}

var _ = check.Suite(&refindexSuite{})

func (s *refindexSuite) TestLoadMultipleSequences(c *check.C) {
	idx := &Index{}
	err := idx.Load(strings.NewReader(">chr1 some description\nACGT\nACGT\n>chr2\nTTTT\n"))
	c.Assert(err, check.IsNil)

	seq, ok := idx.Get("chr1")
	c.Assert(ok, check.Equals, true)
	c.Check(string(seq), check.Equals, "ACGTACGT")

	seq, ok = idx.Get("chr2")
	c.Assert(ok, check.Equals, true)
	c.Check(string(seq), check.Equals, "TTTT")

	c.Check(idx.Names(), check.DeepEquals, []string{"chr1", "chr2"})
}

func (s *refindexSuite) TestUnknownChromNotFound(c *check.C) {
	idx := &Index{}
	err := idx.Load(strings.NewReader(">chr1\nACGT\n"))
	c.Assert(err, check.IsNil)
	_, ok := idx.Get("chrX")
	c.Check(ok, check.Equals, false)
}

func (s *refindexSuite) TestDuplicateNameKeepsFirst(c *check.C) {
	idx := &Index{}
	err := idx.Load(strings.NewReader(">chr1\nAAAA\n>chr1\nCCCC\n"))
	c.Assert(err, check.IsNil)
	seq, ok := idx.Get("chr1")
	c.Assert(ok, check.Equals, true)
	c.Check(string(seq), check.Equals, "AAAA")
}
