// File: seqx.go
// Title: Sequence Queries over Strings
// Description: Implements sequence-style queries (Take, Skip, First, Last,
//              ElementAt, Contains, ...) directly over a string's bytes using
//              indexing and slicing. Strict variants return an error on empty
//              input or bad indices; OrDefault variants return NullChar.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of the query table

package seqx

import (
	"strings"

	mdwerrors "github.com/msto63/charseq/core/errors"
)

// Char is the code unit of a Go string.
type Char = byte

// NullChar is returned by every OrDefault query in place of an error.
const NullChar Char = 0

// Predicate reports whether a code unit matches.
type Predicate func(Char) bool

const (
	msgEmptySource = "source string cannot be empty"
	msgNoMatch     = "predicate did not match any characters in source string: "
)

// ===============================
// Slicing
// ===============================

// Take returns the first n bytes of s. n <= 0 yields the empty string and
// n >= len(s) yields s itself. The result shares memory with s.
func Take(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[:n]
}

// Skip returns s without its first n bytes. n <= 0 yields s and
// n >= len(s) yields the empty string.
func Skip(s string, n int) string {
	if n <= 0 {
		return s
	}
	if n >= len(s) {
		return ""
	}
	return s[n:]
}

// ===============================
// Equality
// ===============================

// SequenceEqual reports whether a and b hold the same bytes.
func SequenceEqual(a, b string) bool {
	return a == b
}

// SequenceEqualMode reports whether a and b are equal under mode. An
// unknown mode is an InvalidArgument error.
func SequenceEqualMode(a, b string, mode Comparison) (bool, error) {
	if !mode.IsValid() {
		return false, mdwerrors.InvalidArgument(mdwerrors.ModuleSeqx, "SequenceEqualMode", "mode", int(mode), "unknown comparison mode")
	}
	return mode.equal(a, b), nil
}

// ===============================
// Materialization
// ===============================

// ToArray copies the bytes of s into a new slice whose length and
// capacity equal len(s).
func ToArray(s string) []Char {
	out := make([]Char, len(s))
	copy(out, s)
	return out
}

// ToList copies the bytes of s into a new mutable List.
func ToList(s string) *List {
	return newList(s)
}

// DefaultIfEmpty returns s, or a one-byte string holding NullChar when s
// is empty.
func DefaultIfEmpty(s string) string {
	if s == "" {
		return string([]byte{NullChar})
	}
	return s
}

// ===============================
// Element access
// ===============================

// First returns the first byte of s. An empty s is an InvalidState error.
func First(s string) (Char, error) {
	if len(s) == 0 {
		return NullChar, mdwerrors.InvalidState(mdwerrors.ModuleSeqx, "First", msgEmptySource)
	}
	return s[0], nil
}

// FirstOrDefault returns the first byte of s, or NullChar when s is empty.
func FirstOrDefault(s string) Char {
	if len(s) == 0 {
		return NullChar
	}
	return s[0]
}

// Last returns the last byte of s. An empty s is an InvalidState error.
func Last(s string) (Char, error) {
	n := len(s)
	if n == 0 {
		return NullChar, mdwerrors.InvalidState(mdwerrors.ModuleSeqx, "Last", msgEmptySource)
	}
	return s[n-1], nil
}

// LastOrDefault returns the last byte of s, or NullChar when s is empty.
func LastOrDefault(s string) Char {
	n := len(s)
	if n == 0 {
		return NullChar
	}
	return s[n-1]
}

// LastFunc returns the byte nearest the end of s that satisfies predicate.
// A nil predicate is an InvalidArgument error; an empty s or no match is
// an InvalidState error.
func LastFunc(s string, predicate Predicate) (Char, error) {
	return lastMatch(s, predicate, true, "LastFunc")
}

// LastOrDefaultFunc is LastFunc returning NullChar instead of failing on
// an empty s or when nothing matches. A nil predicate is still an error.
func LastOrDefaultFunc(s string, predicate Predicate) (Char, error) {
	return lastMatch(s, predicate, false, "LastOrDefaultFunc")
}

// lastMatch scans s from its last byte toward its first and stops at the
// first byte predicate accepts.
func lastMatch(s string, predicate Predicate, strict bool, operation string) (Char, error) {
	if predicate == nil {
		return NullChar, mdwerrors.ArgumentNil(mdwerrors.ModuleSeqx, operation, "predicate")
	}

	if len(s) == 0 {
		if strict {
			return NullChar, mdwerrors.InvalidState(mdwerrors.ModuleSeqx, operation, msgEmptySource)
		}
		return NullChar, nil
	}

	for i := len(s) - 1; i >= 0; i-- {
		if c := s[i]; predicate(c) {
			return c, nil
		}
	}

	if strict {
		return NullChar, mdwerrors.InvalidState(mdwerrors.ModuleSeqx, operation, msgNoMatch+s)
	}
	return NullChar, nil
}

// ElementAt returns the byte at index i. An index outside [0, len(s)) is
// an OutOfRange error.
func ElementAt(s string, i int) (Char, error) {
	if i < 0 || i >= len(s) {
		return NullChar, mdwerrors.IndexOutOfRange(mdwerrors.ModuleSeqx, "ElementAt", i, len(s))
	}
	return s[i], nil
}

// ElementAtOrDefault returns the byte at index i, or NullChar when i is
// out of range.
func ElementAtOrDefault(s string, i int) Char {
	if i < 0 || i >= len(s) {
		return NullChar
	}
	return s[i]
}

// ===============================
// Aggregates
// ===============================

// Any reports whether s holds at least one byte.
func Any(s string) bool {
	return len(s) != 0
}

// Count returns the number of bytes in s.
func Count(s string) int {
	return len(s)
}

// LongCount returns the number of bytes in s as an int64.
func LongCount(s string) int64 {
	return int64(len(s))
}

// Contains reports whether c occurs in s.
func Contains(s string, c Char) bool {
	return strings.IndexByte(s, c) >= 0
}
