// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package variant defines the Variant record the rest of the overlap
// resolver operates on, and the parsing/normalization steps that turn
// a raw VCF data line into one.
package variant

// Variant is a parsed VCF data line, stripped of any sample columns.
// Every field is owned by the Variant itself (copied out of the line
// that produced it) so that no field outlives its parent record and
// buffers backing successive lines can be reused by the reader.
type Variant struct {
	Chrom string
	Pos   int // 1-based
	ID    string
	Ref   []byte
	Alts  [][]byte
	// Suffix carries QUAL, FILTER, INFO and FORMAT through unchanged,
	// tab-joined in that order. No statistical recomputation is ever
	// performed on it (spec Non-goal); it is only ever copied from
	// the first record of a cluster.
	Suffix string
}

// RefLen is the byte length of Ref.
func (v *Variant) RefLen() int { return len(v.Ref) }

// End is the 1-based, exclusive end of the reference footprint:
// Pos + RefLen.
func (v *Variant) End() int { return v.Pos + v.RefLen() }

// IsInsertion reports whether REF is empty (a pure insertion).
func (v *Variant) IsInsertion() bool { return len(v.Ref) == 0 }

// HasDeletionAlt reports whether any ALT is empty (a pure deletion).
func (v *Variant) HasDeletionAlt() bool {
	for _, a := range v.Alts {
		if len(a) == 0 {
			return true
		}
	}
	return false
}

// IsIndel reports whether the variant is a pure insertion or contains
// a pure-deletion allele.
func (v *Variant) IsIndel() bool { return v.IsInsertion() || v.HasDeletionAlt() }

// NumAlts is the number of alternate alleles remaining after
// normalization and dedup.
func (v *Variant) NumAlts() int { return len(v.Alts) }

// Clone returns a deep copy, so a Variant can be retained (e.g.
// buffered in a cluster) independent of whatever scratch state
// produced it.
func (v *Variant) Clone() *Variant {
	c := &Variant{
		Chrom:  v.Chrom,
		Pos:    v.Pos,
		ID:     v.ID,
		Ref:    append([]byte(nil), v.Ref...),
		Suffix: v.Suffix,
	}
	c.Alts = make([][]byte, len(v.Alts))
	for i, a := range v.Alts {
		c.Alts[i] = append([]byte(nil), a...)
	}
	return c
}
