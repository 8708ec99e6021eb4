// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package vcfio provides the line-oriented VCF/FASTA input plumbing
// (gzip-transparent opening, chomped-line scanning) and the VCF
// record writer. It is the "surrounding functionality" spec.md §1
// calls out as external to the overlap-resolver core: nothing in this
// package makes a clustering or enumeration decision.
package vcfio

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/pgzip"

	"github.com/noporpoise/vcf-hack/internal/vcferr"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// Open opens path for reading, or stdin if path is "-" or empty,
// matching the CLI convention that an absent FASTA argument list
// means "read the reference from stdin".
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, vcferr.Wrap(vcferr.IOError, err, "cannot open %s", path)
	}
	return f, nil
}

// MaybeGunzip peeks at the first two bytes of r and transparently
// wraps it in a gzip reader if they match the gzip magic number,
// regardless of the source filename -- so piping compressed data
// through stdin works the same as a ".gz" file argument.
func MaybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, 1<<16)
	peek, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, vcferr.Wrap(vcferr.IOError, err, "reading stream header")
	}
	if len(peek) == 2 && peek[0] == gzipMagic[0] && peek[1] == gzipMagic[1] {
		gz, err := pgzip.NewReader(br)
		if err != nil {
			return nil, vcferr.Wrap(vcferr.IOError, err, "opening gzip stream")
		}
		return gz, nil
	}
	return br, nil
}

// LineScanner produces successive chomped lines from a stream. It
// wraps bufio.Scanner, whose token buffer already grows by doubling
// up to its cap, giving the amortized O(1)-per-line allocation
// behavior spec.md §5 requires once the buffer has warmed up to the
// longest line seen.
type LineScanner struct {
	s      *bufio.Scanner
	lineNo int
}

// NewLineScanner wraps r. Lines up to 64MiB are supported, generous
// enough for any single VCF or FASTA record line this tool will see.
func NewLineScanner(r io.Reader) *LineScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 64<<20)
	return &LineScanner{s: s}
}

// Scan advances to the next line, reporting whether one was read.
func (ls *LineScanner) Scan() bool {
	ok := ls.s.Scan()
	if ok {
		ls.lineNo++
	}
	return ok
}

// Bytes returns the current line, without its trailing newline. The
// slice is only valid until the next call to Scan.
func (ls *LineScanner) Bytes() []byte { return ls.s.Bytes() }

// LineNo returns the 1-based number of the most recently scanned line.
func (ls *LineScanner) LineNo() int { return ls.lineNo }

// Err returns the first non-EOF error encountered by Scan.
func (ls *LineScanner) Err() error {
	if err := ls.s.Err(); err != nil {
		return vcferr.Wrap(vcferr.IOError, err, "reading line %d", ls.lineNo+1)
	}
	return nil
}
