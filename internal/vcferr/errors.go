// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package vcferr defines the typed error taxonomy used across the
// overlap resolver: the fatal conditions that halt the stream (BadArgs,
// IOError, BadRecord, NotSorted, OutOfBounds, BadHeader) and the two
// warning-class conditions (UnknownChrom, DuplicateChrom) that are
// logged and otherwise tolerated, mirroring the warn()/die() split in
// the original C implementation's global.c.
package vcferr

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Kind identifies which branch of the error taxonomy an error belongs
// to, so callers can switch on it without string matching.
type Kind int

const (
	_ Kind = iota
	BadArgs
	IOError
	BadRecord
	NotSorted
	OutOfBounds
	BadHeader
)

func (k Kind) String() string {
	switch k {
	case BadArgs:
		return "BadArgs"
	case IOError:
		return "IOError"
	case BadRecord:
		return "BadRecord"
	case NotSorted:
		return "NotSorted"
	case OutOfBounds:
		return "OutOfBounds"
	case BadHeader:
		return "BadHeader"
	default:
		return "Unknown"
	}
}

// Error is a fatal, typed error. Wrap returns from parsing, clustering
// and I/O in Error so the driver can report the provenance and kind
// uniformly and callers can recover the Kind with errors.As. File/Line
// record where New or Wrap was called, mirroring call_die's
// __FILE__/__LINE__ provenance (original_source/global.c/global.h).
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	File    string
	Line    int
}

func (e *Error) Error() string {
	loc := ""
	if e.File != "" {
		loc = fmt.Sprintf("%s:%d: ", e.File, e.Line)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s: %s", loc, e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", loc, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a fatal Error of the given Kind, captured at the call site.
func New(kind Kind, format string, args ...interface{}) *Error {
	file, line := caller()
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), File: file, Line: line}
}

// Wrap builds a fatal Error of the given Kind around a lower-level
// cause, captured at the call site.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	file, line := caller()
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause, File: file, Line: line}
}

// caller reports the file:line of New/Wrap's caller.
func caller() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", 0
	}
	return filepath.Base(file), line
}
