// File: chars_test.go
// Title: Tests for the Nullable Source Method Set
// Description: Verifies that a nil *Chars is rejected before any other work
//              and that present sources delegate to the free functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package seqx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerrors "github.com/msto63/charseq/core/errors"
)

func TestNilSourceFailsFirst(t *testing.T) {
	var missing *Chars
	called := false
	never := func(Char) bool { called = true; return true }

	calls := map[string]func() error{
		"Take":               func() error { _, err := missing.Take(0); return err },
		"Skip":               func() error { _, err := missing.Skip(0); return err },
		"ToArray":            func() error { _, err := missing.ToArray(); return err },
		"ToList":             func() error { _, err := missing.ToList(); return err },
		"DefaultIfEmpty":     func() error { _, err := missing.DefaultIfEmpty(); return err },
		"First":              func() error { _, err := missing.First(); return err },
		"FirstOrDefault":     func() error { _, err := missing.FirstOrDefault(); return err },
		"Last":               func() error { _, err := missing.Last(); return err },
		"LastFunc":           func() error { _, err := missing.LastFunc(never); return err },
		"LastOrDefault":      func() error { _, err := missing.LastOrDefault(); return err },
		"LastOrDefaultFunc":  func() error { _, err := missing.LastOrDefaultFunc(nil); return err },
		"ElementAt":          func() error { _, err := missing.ElementAt(0); return err },
		"ElementAtOrDefault": func() error { _, err := missing.ElementAtOrDefault(0); return err },
		"Any":                func() error { _, err := missing.Any(); return err },
		"Count":              func() error { _, err := missing.Count(); return err },
		"LongCount":          func() error { _, err := missing.LongCount(); return err },
		"Contains":           func() error { _, err := missing.Contains('a'); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err))
			assert.Equal(t, "source", mdwerrors.ExtractParameter(err))
			assert.Equal(t, name, mdwerrors.ExtractOperation(err))
		})
	}
	assert.False(t, called, "predicate must not run for an absent source")
}

func TestNilSequenceEqualOperands(t *testing.T) {
	var missing *Chars
	present := From("abc")

	_, err := missing.SequenceEqual(present)
	assert.Equal(t, "first", mdwerrors.ExtractParameter(err))

	_, err = present.SequenceEqual(missing)
	assert.Equal(t, "second", mdwerrors.ExtractParameter(err))

	// both absent reports the first operand
	_, err = missing.SequenceEqualMode(missing, Comparison(99))
	assert.Equal(t, "first", mdwerrors.ExtractParameter(err))

	// arguments are checked before the mode
	_, err = present.SequenceEqualMode(missing, Comparison(99))
	assert.Equal(t, "second", mdwerrors.ExtractParameter(err))

	_, err = present.SequenceEqualMode(From("abc"), Comparison(99))
	assert.Equal(t, "mode", mdwerrors.ExtractParameter(err))
}

func TestPresentSourceDelegates(t *testing.T) {
	c := From("a1b2")

	s, err := c.Take(2)
	require.NoError(t, err)
	assert.Equal(t, "a1", s)

	s, err = c.Skip(2)
	require.NoError(t, err)
	assert.Equal(t, "b2", s)

	first, err := c.First()
	require.NoError(t, err)
	assert.Equal(t, Char('a'), first)

	last, err := c.LastFunc(isDigit)
	require.NoError(t, err)
	assert.Equal(t, Char('2'), last)

	_, err = From("abc").LastFunc(isDigit)
	assert.True(t, IsInvalidState(err))

	_, err = c.LastOrDefaultFunc(nil)
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, "predicate", mdwerrors.ExtractParameter(err))

	at, err := c.ElementAt(1)
	require.NoError(t, err)
	assert.Equal(t, Char('1'), at)

	_, err = c.ElementAt(4)
	assert.True(t, IsOutOfRange(err))

	d, err := c.ElementAtOrDefault(4)
	require.NoError(t, err)
	assert.Equal(t, NullChar, d)

	n, err := c.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	ln, err := c.LongCount()
	require.NoError(t, err)
	assert.Equal(t, int64(4), ln)

	ok, err := c.Contains('b')
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SequenceEqual(From("a1b2"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEmptySourceIsNotAbsent(t *testing.T) {
	empty := From("")
	assert.False(t, empty.IsNil())

	s, err := empty.Take(0)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = empty.DefaultIfEmpty()
	require.NoError(t, err)
	assert.Equal(t, "\x00", s)

	_, err = empty.First()
	assert.True(t, IsInvalidState(err))

	c, err := empty.FirstOrDefault()
	require.NoError(t, err)
	assert.Equal(t, NullChar, c)

	c, err = empty.LastOrDefault()
	require.NoError(t, err)
	assert.Equal(t, NullChar, c)

	hasAny, err := empty.Any()
	require.NoError(t, err)
	assert.False(t, hasAny)

	arr, err := empty.ToArray()
	require.NoError(t, err)
	assert.Empty(t, arr)

	l, err := empty.ToList()
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestCharsString(t *testing.T) {
	var missing *Chars
	assert.Equal(t, "<nil>", missing.String())
	assert.True(t, missing.IsNil())
	assert.Equal(t, "abc", From("abc").String())
}
