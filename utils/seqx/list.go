// File: list.go
// Title: Mutable Character List
// Description: List is the growable, ordered result of ToList. It owns its
//              storage, so edits never affect the source string.
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

// List is an ordered, mutable list of code units.
type List struct {
	items []Char
}

func newList(s string) *List {
	return &List{items: []Char(s)}
}

// Len returns the number of elements
func (l *List) Len() int {
	return len(l.items)
}

// At returns the element at index i
func (l *List) At(i int) (Char, error) {
	if i < 0 || i >= len(l.items) {
		return NullChar, mdwerrors.IndexOutOfRange(mdwerrors.ModuleSeqx, "List.At", i, len(l.items))
	}
	return l.items[i], nil
}

// Add appends c to the end of the list
func (l *List) Add(c Char) {
	l.items = append(l.items, c)
}

// Insert places c before index i. i == Len() appends.
func (l *List) Insert(i int, c Char) error {
	if i < 0 || i > len(l.items) {
		return mdwerrors.IndexOutOfRange(mdwerrors.ModuleSeqx, "List.Insert", i, len(l.items))
	}
	l.items = append(l.items, NullChar)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = c
	return nil
}

// RemoveAt deletes the element at index i
func (l *List) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return mdwerrors.IndexOutOfRange(mdwerrors.ModuleSeqx, "List.RemoveAt", i, len(l.items))
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Chars returns a copy of the elements
func (l *List) Chars() []Char {
	out := make([]Char, len(l.items))
	copy(out, l.items)
	return out
}

// String returns the elements as a string
func (l *List) String() string {
	return string(l.items)
}
