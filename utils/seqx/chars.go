// File: chars.go
// Title: Nullable Source Method Set
// Description: Chars carries the query operations as methods. A nil *Chars
//              is an absent source: every method rejects it with an
//              InvalidArgument error before doing anything else, even when
//              the answer would otherwise be trivial.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package seqx

import (
	mdwerrors "github.com/msto63/charseq/core/errors"
)

// Chars is a string viewed as a sequence of code units.
type Chars string

// From returns a non-nil source for s.
func From(s string) *Chars {
	c := Chars(s)
	return &c
}

// String returns the underlying string, or "<nil>" for an absent source.
func (c *Chars) String() string {
	if c == nil {
		return "<nil>"
	}
	return string(*c)
}

// IsNil reports whether c is an absent source.
func (c *Chars) IsNil() bool {
	return c == nil
}

func (c *Chars) source(operation string) (string, error) {
	if c == nil {
		return "", mdwerrors.ArgumentNil(mdwerrors.ModuleSeqx, operation, "source")
	}
	return string(*c), nil
}

// Take returns the first n code units; see Take.
func (c *Chars) Take(n int) (string, error) {
	s, err := c.source("Take")
	if err != nil {
		return "", err
	}
	return Take(s, n), nil
}

// Skip returns the code units after the first n; see Skip.
func (c *Chars) Skip(n int) (string, error) {
	s, err := c.source("Skip")
	if err != nil {
		return "", err
	}
	return Skip(s, n), nil
}

// SequenceEqual reports ordinal equality with other. Both sides must be present.
func (c *Chars) SequenceEqual(other *Chars) (bool, error) {
	return c.SequenceEqualMode(other, Ordinal)
}

// SequenceEqualMode reports equality with other under mode. The receiver is
// checked first, then other, then mode.
func (c *Chars) SequenceEqualMode(other *Chars, mode Comparison) (bool, error) {
	if c == nil {
		return false, mdwerrors.ArgumentNil(mdwerrors.ModuleSeqx, "SequenceEqual", "first")
	}
	if other == nil {
		return false, mdwerrors.ArgumentNil(mdwerrors.ModuleSeqx, "SequenceEqual", "second")
	}
	return SequenceEqualMode(string(*c), string(*other), mode)
}

// ToArray copies the code units into a new slice.
func (c *Chars) ToArray() ([]Char, error) {
	s, err := c.source("ToArray")
	if err != nil {
		return nil, err
	}
	return ToArray(s), nil
}

// ToList copies the code units into a new List.
func (c *Chars) ToList() (*List, error) {
	s, err := c.source("ToList")
	if err != nil {
		return nil, err
	}
	return ToList(s), nil
}

// DefaultIfEmpty returns the source, or a one-unit NullChar string when empty.
func (c *Chars) DefaultIfEmpty() (string, error) {
	s, err := c.source("DefaultIfEmpty")
	if err != nil {
		return "", err
	}
	return DefaultIfEmpty(s), nil
}

// First returns the first code unit.
func (c *Chars) First() (Char, error) {
	s, err := c.source("First")
	if err != nil {
		return NullChar, err
	}
	return First(s)
}

// FirstOrDefault returns the first code unit or NullChar.
func (c *Chars) FirstOrDefault() (Char, error) {
	s, err := c.source("FirstOrDefault")
	if err != nil {
		return NullChar, err
	}
	return FirstOrDefault(s), nil
}

// Last returns the last code unit.
func (c *Chars) Last() (Char, error) {
	s, err := c.source("Last")
	if err != nil {
		return NullChar, err
	}
	return Last(s)
}

// LastFunc returns the last code unit satisfying predicate.
func (c *Chars) LastFunc(predicate Predicate) (Char, error) {
	s, err := c.source("LastFunc")
	if err != nil {
		return NullChar, err
	}
	return LastFunc(s, predicate)
}

// LastOrDefault returns the last code unit or NullChar.
func (c *Chars) LastOrDefault() (Char, error) {
	s, err := c.source("LastOrDefault")
	if err != nil {
		return NullChar, err
	}
	return LastOrDefault(s), nil
}

// LastOrDefaultFunc returns the last code unit satisfying predicate or NullChar.
func (c *Chars) LastOrDefaultFunc(predicate Predicate) (Char, error) {
	s, err := c.source("LastOrDefaultFunc")
	if err != nil {
		return NullChar, err
	}
	return LastOrDefaultFunc(s, predicate)
}

// ElementAt returns the code unit at index i.
func (c *Chars) ElementAt(i int) (Char, error) {
	s, err := c.source("ElementAt")
	if err != nil {
		return NullChar, err
	}
	return ElementAt(s, i)
}

// ElementAtOrDefault returns the code unit at index i or NullChar.
func (c *Chars) ElementAtOrDefault(i int) (Char, error) {
	s, err := c.source("ElementAtOrDefault")
	if err != nil {
		return NullChar, err
	}
	return ElementAtOrDefault(s, i), nil
}

// Any reports whether the source is non-empty.
func (c *Chars) Any() (bool, error) {
	s, err := c.source("Any")
	if err != nil {
		return false, err
	}
	return Any(s), nil
}

// Count returns the number of code units.
func (c *Chars) Count() (int, error) {
	s, err := c.source("Count")
	if err != nil {
		return 0, err
	}
	return Count(s), nil
}

// LongCount returns the number of code units as an int64.
func (c *Chars) LongCount() (int64, error) {
	s, err := c.source("LongCount")
	if err != nil {
		return 0, err
	}
	return LongCount(s), nil
}

// Contains reports whether value occurs in the source.
func (c *Chars) Contains(value Char) (bool, error) {
	s, err := c.source("Contains")
	if err != nil {
		return false, err
	}
	return Contains(s, value), nil
}
