// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package variant

import (
	"bytes"
	"strconv"

	"github.com/noporpoise/vcf-hack/internal/vcferr"
)

// Column indices into a tokenized VCF data line, mirroring the
// VCHR..VFRMT macros in the original C implementation's global.h.
const (
	colChrom = iota
	colPos
	colID
	colRef
	colAlt
	colQual
	colFilter
	colInfo
	colFormat
	numColumns
)

// ParseLine splits one chomped VCF data line into its nine canonical
// columns, drops any sample columns past FORMAT, and builds a Variant
// that owns copies of every field (no aliasing of the caller's line
// buffer). POS must parse as an integer and be non-zero: zero or
// unparseable POS is a fatal BadRecord (spec.md §4.1), but a negative
// POS on an otherwise well-formed line parses successfully -- it is a
// recoverable condition the caller should warn on and pass through
// verbatim (spec.md §7), not a reason to abort the run.
func ParseLine(line []byte) (*Variant, error) {
	var cols [numColumns][]byte
	rest := line
	for i := 0; i < numColumns-1; i++ {
		idx := bytes.IndexByte(rest, '\t')
		if idx < 0 {
			return nil, vcferr.New(vcferr.BadRecord, "expected %d columns, found only %d: %q", numColumns, i+1, line)
		}
		cols[i] = rest[:idx]
		rest = rest[idx+1:]
	}
	// rest now begins at FORMAT; anything after its own next tab is a
	// sample column and is dropped.
	if idx := bytes.IndexByte(rest, '\t'); idx >= 0 {
		cols[colFormat] = rest[:idx]
	} else {
		cols[colFormat] = rest
	}

	pos, err := strconv.Atoi(string(cols[colPos]))
	if err != nil || pos == 0 {
		return nil, vcferr.New(vcferr.BadRecord, "invalid POS %q on chromosome %q", cols[colPos], cols[colChrom])
	}

	altParts := bytes.Split(cols[colAlt], []byte(","))
	alts := make([][]byte, len(altParts))
	for i, a := range altParts {
		alts[i] = append([]byte(nil), a...)
	}

	v := &Variant{
		Chrom: string(cols[colChrom]),
		Pos:   pos,
		ID:    string(cols[colID]),
		Ref:   append([]byte(nil), cols[colRef]...),
		Alts:  alts,
		Suffix: string(cols[colQual]) + "\t" + string(cols[colFilter]) + "\t" +
			string(cols[colInfo]) + "\t" + string(cols[colFormat]),
	}
	return v, nil
}

// TrimHeaderSamples truncates a "#CHROM" header line at the first tab
// following the FORMAT column, dropping any per-sample header fields.
// A data line this short is malformed and the caller (not this
// function) should raise BadHeader for it.
func TrimHeaderSamples(line []byte) []byte {
	rest := line
	consumed := 0
	for i := 0; i < numColumns-1; i++ {
		idx := bytes.IndexByte(rest, '\t')
		if idx < 0 {
			return line
		}
		consumed += idx + 1
		rest = rest[idx+1:]
	}
	if idx := bytes.IndexByte(rest, '\t'); idx >= 0 {
		return line[:consumed+idx]
	}
	return line
}
