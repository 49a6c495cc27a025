// File: doc.go
// Title: Package Documentation for seqx
// Description: Package seqx provides sequence-style queries over strings
//              without converting them into a generic collection first.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package seqx provides sequence-style queries directly over strings.
//
// Overview
//
// Generic sequence helpers such as slicex.Take or a First/Last over a
// []byte force a string to be copied before it can be queried. seqx
// answers the same questions with plain indexing and slicing: Take and
// Skip return substrings that share memory with the source, First, Last
// and ElementAt read a single byte, and Contains is a single IndexByte.
//
// The unit of every query is the byte, the code unit of a Go string.
// Multi-byte UTF-8 sequences are not decoded; use unicode/utf8 when
// runes are needed.
//
// Strict and default variants
//
// Each element query comes as a pair:
//
//	First / FirstOrDefault
//	Last / LastOrDefault
//	LastFunc / LastOrDefaultFunc
//	ElementAt / ElementAtOrDefault
//
// The strict variant returns an error when the request cannot be satisfied
// (empty source, no match, index out of range). The OrDefault variant
// returns NullChar instead. Take and Skip clamp their count and never fail.
//
//	c, err := seqx.First("")          // err: INVALID_STATE
//	c = seqx.FirstOrDefault("")       // NullChar
//	c, err = seqx.ElementAt("abc", 9) // err: VALUE_OUT_OF_RANGE
//	s := seqx.Take("hello", 99)       // "hello"
//
// Absent sources
//
// A Go string is never nil. Code that has to model an absent source uses
// *Chars: every method on a nil *Chars fails with an INVALID_ARGUMENT
// error naming the parameter, before any other work and even when the
// result would be trivial.
//
//	var missing *seqx.Chars
//	_, err := missing.Take(0)         // err: INVALID_ARGUMENT (source)
//	s, _ := seqx.From("hello").Skip(3) // "lo"
//
// Comparison modes
//
// SequenceEqual compares bytes. SequenceEqualMode accepts a Comparison:
// Ordinal, OrdinalIgnoreCase, the InvariantCulture pair (root collation)
// and the CurrentCulture pair, which collate in the language set with
// SetCulture or SetCultureName.
//
//	ok, _ := seqx.SequenceEqualMode("Go", "GO", seqx.OrdinalIgnoreCase)
//
// Errors
//
// Failures are *error.Error values from package core/error. Use
// IsInvalidArgument, IsInvalidState and IsOutOfRange to classify them.
//
// Thread Safety
//
// All functions are safe for concurrent use. The current culture is a
// process-wide setting guarded by a mutex.
package seqx
