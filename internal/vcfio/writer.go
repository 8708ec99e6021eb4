// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package vcfio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/noporpoise/vcf-hack/internal/vcferr"
)

// Record is the output shape of one emitted data line: chrom, pos and
// id carried over from the first variant of a cluster, a rendered
// REF window, a sorted/deduplicated ALT list, and the QUAL/FILTER/
// INFO/FORMAT suffix carried through unchanged.
type Record struct {
	Chrom  string
	Pos    int
	ID     string
	Ref    []byte
	Alts   [][]byte
	Suffix string
}

// Writer emits VCF lines, buffering writes the way the teacher's
// export/slice commands buffer gob/text output before a syscall.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter wraps w in a buffered writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 1<<16)}
}

// Write implements io.Writer on the same buffer, so header text that
// ReadHeader echoes through a Writer stays ahead of the records.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.err = vcferr.Wrap(vcferr.IOError, err, "writing output")
	}
	return n, w.err
}

// WriteRaw writes a line verbatim, followed by a newline.
func (w *Writer) WriteRaw(line []byte) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.w.Write(line); err != nil {
		w.err = vcferr.Wrap(vcferr.IOError, err, "writing output")
		return w.err
	}
	_, err := w.w.WriteString("\n")
	if err != nil {
		w.err = vcferr.Wrap(vcferr.IOError, err, "writing output")
	}
	return w.err
}

// WriteRecord emits one combined or pass-through data record.
func (w *Writer) WriteRecord(rec Record) error {
	if w.err != nil {
		return w.err
	}
	altList := bytes.Join(rec.Alts, []byte(","))
	_, err := fmt.Fprintf(w.w, "%s\t%d\t%s\t%s\t%s\t%s\n", rec.Chrom, rec.Pos, rec.ID, rec.Ref, altList, rec.Suffix)
	if err != nil {
		w.err = vcferr.Wrap(vcferr.IOError, err, "writing output")
	}
	return w.err
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		return vcferr.Wrap(vcferr.IOError, err, "flushing output")
	}
	return nil
}
