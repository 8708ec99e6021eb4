// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package vcftest provides a readable text diff for test assertions
// that compare whole VCF outputs, where a plain string mismatch
// failure message is too unwieldy to read.
package vcftest

import "github.com/sergi/go-diff/diffmatchpatch"

// Diff returns a human-readable inline diff between want and got
// (insertions and deletions marked with terminal colours), or "" if
// they are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	return dmp.DiffPrettyText(diffs)
}
