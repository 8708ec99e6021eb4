// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package vcfio

import (
	"bytes"
	"io"

	"github.com/noporpoise/vcf-hack/internal/vcferr"
	"github.com/noporpoise/vcf-hack/internal/variant"
)

// ReadHeader consumes "##" meta lines (echoing each verbatim to w)
// until it reaches the "#CHROM" column header line, which it echoes
// with any sample-column suffix stripped and returns. A data line
// arriving before "#CHROM" is a BadHeader error, as is reaching EOF
// without ever seeing one.
func ReadHeader(ls *LineScanner, w io.Writer) ([]byte, error) {
	for ls.Scan() {
		line := ls.Bytes()
		if bytes.HasPrefix(line, []byte("##")) {
			if _, err := w.Write(line); err != nil {
				return nil, vcferr.Wrap(vcferr.IOError, err, "writing header")
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return nil, vcferr.Wrap(vcferr.IOError, err, "writing header")
			}
			continue
		}
		if len(line) == 0 {
			continue
		}
		if !bytes.HasPrefix(line, []byte("#CHROM")) {
			return nil, vcferr.New(vcferr.BadHeader, "expected #CHROM header, got: %q", line)
		}
		trimmed := variant.TrimHeaderSamples(line)
		if _, err := w.Write(trimmed); err != nil {
			return nil, vcferr.Wrap(vcferr.IOError, err, "writing header")
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return nil, vcferr.Wrap(vcferr.IOError, err, "writing header")
		}
		return append([]byte(nil), trimmed...), nil
	}
	if err := ls.Err(); err != nil {
		return nil, err
	}
	return nil, vcferr.New(vcferr.BadHeader, "reached end of input before #CHROM header")
}
