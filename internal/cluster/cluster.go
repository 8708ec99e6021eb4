// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package cluster implements the streaming state machine that groups
// consecutive same-chromosome variants whose footprints lie within k
// bases of one another (spec.md §4.3).
package cluster

import (
	"github.com/noporpoise/vcf-hack/internal/variant"
	"github.com/noporpoise/vcf-hack/internal/vcferr"
)

// Cluster is an ordered, same-chromosome run of variants whose
// consecutive footprints satisfy the overlap-within-k relation.
type Cluster struct {
	Chrom    string
	Variants []*variant.Variant
}

// Footprint returns [minstart, maxend) in 1-based coordinates: the
// smallest Pos and the largest End across the cluster's variants.
func (c *Cluster) Footprint() (minstart, maxend int) {
	minstart = c.Variants[0].Pos
	maxend = c.Variants[0].End()
	for _, v := range c.Variants[1:] {
		if v.Pos < minstart {
			minstart = v.Pos
		}
		if end := v.End(); end > maxend {
			maxend = end
		}
	}
	return minstart, maxend
}

// Accumulator is the Empty/Holding(cluster) state machine. It owns two
// alternating variant-slice buffers so that, after warm-up, accepting
// a variant costs no allocation beyond append's own doubling growth --
// the buffer retired by one flush is the buffer grown by the next.
type Accumulator struct {
	k      int
	chrom  string
	bufs   [2][]*variant.Variant
	active int
}

// New returns an Accumulator with overlap tolerance k bases.
func New(k int) *Accumulator {
	return &Accumulator{k: k}
}

// Push feeds one parsed variant into the state machine. It
// returns a non-nil *Cluster when accepting v required flushing the
// previously held cluster (a chromosome change or a gap wider than
// k), and a NotSorted error if v's position precedes the held
// cluster's tail on the same chromosome.
func (a *Accumulator) Push(v *variant.Variant) (*Cluster, error) {
	cur := a.bufs[a.active]
	if len(cur) == 0 {
		a.startNew(v)
		return nil, nil
	}
	if v.Chrom != a.chrom {
		flushed := a.swapOut()
		a.startNew(v)
		return flushed, nil
	}
	tail := cur[len(cur)-1]
	if v.Pos < tail.Pos {
		return nil, vcferr.New(vcferr.NotSorted, "chromosome %s: variant at %d follows one at %d", v.Chrom, v.Pos, tail.Pos)
	}
	if v.Pos-(tail.Pos+tail.RefLen()-1) <= a.k {
		a.bufs[a.active] = append(cur, v)
		return nil, nil
	}
	flushed := a.swapOut()
	a.startNew(v)
	return flushed, nil
}

// Flush closes out any held cluster at end of input.
func (a *Accumulator) Flush() *Cluster {
	if len(a.bufs[a.active]) == 0 {
		return nil
	}
	return a.swapOut()
}

func (a *Accumulator) startNew(v *variant.Variant) {
	a.chrom = v.Chrom
	a.bufs[a.active] = append(a.bufs[a.active][:0], v)
}

func (a *Accumulator) swapOut() *Cluster {
	cl := &Cluster{Chrom: a.chrom, Variants: a.bufs[a.active]}
	a.active = 1 - a.active
	a.bufs[a.active] = a.bufs[a.active][:0]
	return cl
}
