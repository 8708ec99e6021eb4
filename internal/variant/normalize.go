// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package variant

import (
	"bytes"
	"sort"
)

// Normalize trims the common leading and trailing bases shared by REF
// and every ALT, adjusting Pos and shrinking Ref/Alts in place, then
// deduplicates the ALT list (case-insensitive, as recommended in the
// design notes: output preserves whatever case the allele bytes
// arrived in; only the comparison folds case).
//
// It reports whether any ALT remains. A variant whose every ALT
// equalled REF normalizes down to zero ALTs and contributes nothing;
// the caller should drop it rather than emit it as a standalone
// record (open question, resolved in the design notes).
func Normalize(v *Variant) bool {
	trimPrefix(v)
	trimSuffix(v)
	dedupAlts(v)
	return len(v.Alts) > 0
}

func trimPrefix(v *Variant) {
	p := 0
	for p < len(v.Ref) {
		c := v.Ref[p]
		ok := true
		for _, a := range v.Alts {
			if p >= len(a) || a[p] != c {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		p++
	}
	if p == 0 {
		return
	}
	v.Pos += p
	v.Ref = v.Ref[p:]
	for i, a := range v.Alts {
		v.Alts[i] = a[p:]
	}
}

func trimSuffix(v *Variant) {
	minlen := len(v.Ref)
	for _, a := range v.Alts {
		if len(a) < minlen {
			minlen = len(a)
		}
	}
	trim := 0
	for trim < minlen {
		c := v.Ref[len(v.Ref)-trim-1]
		ok := true
		for _, a := range v.Alts {
			if a[len(a)-trim-1] != c {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		trim++
	}
	if trim == 0 {
		return
	}
	v.Ref = v.Ref[:len(v.Ref)-trim]
	for i, a := range v.Alts {
		v.Alts[i] = a[:len(a)-trim]
	}
}

func dedupAlts(v *Variant) {
	sort.Slice(v.Alts, func(i, j int) bool {
		return bytes.Compare(bytes.ToUpper(v.Alts[i]), bytes.ToUpper(v.Alts[j])) < 0
	})
	out := v.Alts[:0]
	for _, a := range v.Alts {
		if bytes.EqualFold(a, v.Ref) {
			continue
		}
		if len(out) > 0 && bytes.EqualFold(a, out[len(out)-1]) {
			continue
		}
		out = append(out, a)
	}
	v.Alts = out
}
