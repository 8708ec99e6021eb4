// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package driver wires the line readers, the reference index, the
// cluster accumulator or linear merger, and the writer together into
// the end-to-end stream spec.md §2 describes. It contains no
// algorithmic decisions of its own beyond sequencing those pieces and
// turning the typed error taxonomy into process-exit-worthy messages.
package driver

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/noporpoise/vcf-hack/internal/cluster"
	"github.com/noporpoise/vcf-hack/internal/combine"
	"github.com/noporpoise/vcf-hack/internal/concurrency"
	"github.com/noporpoise/vcf-hack/internal/linear"
	"github.com/noporpoise/vcf-hack/internal/refindex"
	"github.com/noporpoise/vcf-hack/internal/variant"
	"github.com/noporpoise/vcf-hack/internal/vcferr"
	"github.com/noporpoise/vcf-hack/internal/vcfio"
)

// Options configures one run of the overlap resolver.
type Options struct {
	RefPaths []string // FASTA file paths; empty means read one stream from stdin
	K        int      // overlap tolerance in bases
	Linear   bool     // use the legacy two-at-a-time merge instead of the combinatorial core
}

// LoadReferences opens and parses every FASTA in paths concurrently,
// bounded by a Throttle the way the teacher's own fan-out helpers
// (see internal/concurrency) cap goroutine count: each file's Load
// call only ever touches that file's own bytes and the shared index's
// internal map, guarded by a mutex, so throttled workers can safely
// share one Index. With no paths, one FASTA stream is read from stdin.
func LoadReferences(paths []string) (*refindex.Index, error) {
	idx := &refindex.Index{}
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}
	t := &concurrency.Throttle{Max: workers}
	var mu sync.Mutex
	for _, path := range paths {
		path := path
		t.Go(path, func() error {
			rc, err := vcfio.Open(path)
			if err != nil {
				return err
			}
			defer rc.Close()
			gz, err := vcfio.MaybeGunzip(rc)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			return idx.Load(gz)
		})
	}
	if err := t.Wait(); err != nil {
		return nil, vcferr.Wrap(vcferr.IOError, err, "loading reference FASTA")
	}
	return idx, nil
}

// Run streams vcfIn to vcfOut: it copies the header through (stripping
// sample columns), then clusters and resolves every data record,
// consulting idx for reference bases. A record on an unknown
// chromosome is passed through unchanged with a warning, matching the
// original implementation's tolerant handling of contigs absent from
// the reference.
func Run(vcfIn io.Reader, vcfOut io.Writer, idx *refindex.Index, opt Options) error {
	ls := vcfio.NewLineScanner(vcfIn)
	w := vcfio.NewWriter(vcfOut)

	if _, err := vcfio.ReadHeader(ls, w); err != nil {
		return err
	}

	if opt.Linear {
		return runLinear(ls, w, idx, opt.K)
	}
	return runCombinatorial(ls, w, idx, opt.K)
}

// runCombinatorial pushes each *raw parsed* variant into the cluster
// accumulator, so membership decisions (same-chromosome gap <= k) are
// made on the untrimmed Pos/RefLen exactly as vset_merge's main loop
// compares untrimmed fields[] from the text line
// (original_source/vcf_combo.c) -- not on the post-normalization
// values. Normalize only runs on a cluster's variants once its
// membership is frozen by a flush, immediately before rendering.
func runCombinatorial(ls *vcfio.LineScanner, w *vcfio.Writer, idx *refindex.Index, k int) error {
	acc := cluster.New(k)
	flush := func(cl *cluster.Cluster) error {
		if cl == nil {
			return nil
		}
		ref, ok := idx.Get(cl.Chrom)
		if !ok {
			return passThroughUnknown(w, cl.Variants)
		}
		cl.Variants = normalizeVariants(cl.Variants)
		if len(cl.Variants) == 0 {
			return nil
		}
		rec, err := combine.Combine(cl, ref)
		if err != nil {
			return err
		}
		return w.WriteRecord(rec)
	}

	for ls.Scan() {
		line := ls.Bytes()
		if len(line) == 0 {
			continue
		}
		v, err := variant.ParseLine(line)
		if err != nil {
			return annotate(err, ls.LineNo())
		}
		if v.Pos < 0 {
			if err := passThroughOne(w, v, "negative POS"); err != nil {
				return err
			}
			continue
		}
		cl, err := acc.Push(v)
		if err != nil {
			return annotate(err, ls.LineNo())
		}
		if err := flush(cl); err != nil {
			return err
		}
	}
	if err := ls.Err(); err != nil {
		return err
	}
	if err := flush(acc.Flush()); err != nil {
		return err
	}
	return w.Flush()
}

// normalizeVariants runs Normalize over vars in place, dropping any
// variant that normalizes down to zero ALTs, and returns the surviving
// prefix of the same backing array.
func normalizeVariants(vars []*variant.Variant) []*variant.Variant {
	out := vars[:0]
	for _, v := range vars {
		if variant.Normalize(v) {
			out = append(out, v)
		}
	}
	return out
}

// runLinear implements spec.md §4.7: each incoming variant either
// extends the currently-held merge (if it overlaps it within k bases
// on the same reference) or flushes the held merge and starts a new
// one. Unlike the combinatorial core this never buffers more than one
// pending result. As in runCombinatorial, Overlaps compares the raw
// parsed Pos/RefLen of held and v -- membership is decided before
// either side is normalized, mirroring vcf_combine.c's merge_alts,
// which folds the next overlapping record into an already-merged
// result without ever trimming first. Normalize only runs on the two
// sides immediately before they are spliced together or written out.
func runLinear(ls *vcfio.LineScanner, w *vcfio.Writer, idx *refindex.Index, k int) error {
	var held *variant.Variant
	var heldChrom string

	flush := func() error {
		if held == nil {
			return nil
		}
		defer func() { held = nil }()
		ref, ok := idx.Get(heldChrom)
		if !ok {
			return passThroughUnknown(w, []*variant.Variant{held})
		}
		if !variant.Normalize(held) {
			return nil
		}
		return w.WriteRecord(vcfio.Record{
			Chrom:  held.Chrom,
			Pos:    held.Pos,
			ID:     held.ID,
			Ref:    held.Ref,
			Alts:   held.Alts,
			Suffix: held.Suffix,
		})
	}

	for ls.Scan() {
		line := ls.Bytes()
		if len(line) == 0 {
			continue
		}
		v, err := variant.ParseLine(line)
		if err != nil {
			return annotate(err, ls.LineNo())
		}
		if v.Pos < 0 {
			if err := passThroughOne(w, v, "negative POS"); err != nil {
				return err
			}
			continue
		}
		if held == nil {
			held, heldChrom = v, v.Chrom
			continue
		}
		if v.Chrom != heldChrom {
			if err := flush(); err != nil {
				return err
			}
			held, heldChrom = v, v.Chrom
			continue
		}
		if v.Pos < held.Pos {
			return annotate(vcferr.New(vcferr.NotSorted, "chromosome %s: variant at %d follows one at %d", v.Chrom, v.Pos, held.Pos), ls.LineNo())
		}
		if !linear.Overlaps(held, v, k) {
			if err := flush(); err != nil {
				return err
			}
			held, heldChrom = v, v.Chrom
			continue
		}
		ref, ok := idx.Get(heldChrom)
		if !ok {
			if err := passThroughUnknown(w, []*variant.Variant{held}); err != nil {
				return err
			}
			held, heldChrom = v, v.Chrom
			continue
		}
		if !variant.Normalize(held) {
			held, heldChrom = v, v.Chrom
			continue
		}
		if !variant.Normalize(v) {
			continue
		}
		merged, err := linear.Merge(held, v, ref)
		if err != nil {
			return err
		}
		held = merged
	}
	if err := ls.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}
	return w.Flush()
}

// passThroughUnknown emits each variant in vars unchanged, one output
// record per input record, logging one warning per call, i.e. per
// flushed cluster or held record (UnknownChrom, spec.md §7): records on a contig absent from the
// reference cannot be resolved against a window, so they are left
// exactly as parsed. vars must still hold raw, un-normalized fields --
// callers flush these before any Normalize call reaches them, so
// "unchanged" really means byte-for-byte what ParseLine produced.
func passThroughUnknown(w *vcfio.Writer, vars []*variant.Variant) error {
	if len(vars) > 0 {
		log.Warnf("unknown chromosome %q: passing %d record(s) through unresolved", vars[0].Chrom, len(vars))
	}
	for _, v := range vars {
		if err := w.WriteRecord(vcfio.Record{
			Chrom:  v.Chrom,
			Pos:    v.Pos,
			ID:     v.ID,
			Ref:    v.Ref,
			Alts:   v.Alts,
			Suffix: v.Suffix,
		}); err != nil {
			return err
		}
	}
	return nil
}

// passThroughOne emits v unchanged with a single warning, for a
// recoverable per-record condition (spec.md §7's negative-POS case)
// that doesn't fit the cluster/overlap machinery at all -- unlike
// UnknownChrom, which still participates in clustering up to the
// point a reference lookup fails, a negative POS can't be compared to
// anything, so the record is diverted before it ever reaches the
// accumulator or the held-merge state.
func passThroughOne(w *vcfio.Writer, v *variant.Variant, reason string) error {
	log.Warnf("%s on chromosome %q at %d: passing record through unresolved", reason, v.Chrom, v.Pos)
	return w.WriteRecord(vcfio.Record{
		Chrom:  v.Chrom,
		Pos:    v.Pos,
		ID:     v.ID,
		Ref:    v.Ref,
		Alts:   v.Alts,
		Suffix: v.Suffix,
	})
}

func annotate(err error, lineNo int) error {
	if e, ok := err.(*vcferr.Error); ok {
		wrapped := vcferr.Wrap(e.Kind, e.Cause, "line %d: %s", lineNo, e.Message)
		wrapped.File, wrapped.Line = e.File, e.Line
		return wrapped
	}
	return fmt.Errorf("line %d: %w", lineNo, err)
}
