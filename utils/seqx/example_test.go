// File: example_test.go
// Title: Example Tests for seqx Package Documentation
// Description: Executable examples that document typical usage.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial example implementation

package seqx_test

import (
	"fmt"

	"github.com/msto63/charseq/utils/seqx"
)

func ExampleTake() {
	fmt.Println(seqx.Take("hello", 2))
	fmt.Println(seqx.Take("hello", 10))
	fmt.Printf("%q\n", seqx.Take("hello", -1))
	// Output:
	// he
	// hello
	// ""
}

func ExampleSkip() {
	s := "hello"
	fmt.Println(seqx.Skip(s, 2))
	fmt.Println(seqx.Take(s, 2) + seqx.Skip(s, 2))
	// Output:
	// llo
	// hello
}

func ExampleFirst() {
	c, err := seqx.First("abc")
	fmt.Printf("%c %v\n", c, err)

	_, err = seqx.First("")
	fmt.Println(seqx.IsInvalidState(err), err)

	fmt.Printf("%q\n", seqx.FirstOrDefault(""))
	// Output:
	// a <nil>
	// true source string cannot be empty
	// '\x00'
}

func ExampleLastFunc() {
	isDigit := func(c seqx.Char) bool { return c >= '0' && c <= '9' }

	c, _ := seqx.LastFunc("a1b2", isDigit)
	fmt.Printf("%c\n", c)

	_, err := seqx.LastFunc("abc", isDigit)
	fmt.Println(err)
	// Output:
	// 2
	// predicate did not match any characters in source string: abc
}

func ExampleElementAt() {
	c, _ := seqx.ElementAt("abc", 1)
	fmt.Printf("%c\n", c)

	_, err := seqx.ElementAt("abc", 3)
	fmt.Println(seqx.IsOutOfRange(err))
	fmt.Printf("%q\n", seqx.ElementAtOrDefault("abc", 3))
	// Output:
	// b
	// true
	// '\x00'
}

func ExampleDefaultIfEmpty() {
	fmt.Printf("%q\n", seqx.DefaultIfEmpty(""))
	fmt.Printf("%q\n", seqx.DefaultIfEmpty("x"))
	// Output:
	// "\x00"
	// "x"
}

func ExampleContains() {
	fmt.Println(seqx.Contains("hello", 'l'))
	fmt.Println(seqx.Contains("hello", 'z'))
	// Output:
	// true
	// false
}

func ExampleSequenceEqualMode() {
	ok, _ := seqx.SequenceEqualMode("Go", "GO", seqx.Ordinal)
	fmt.Println(ok)
	ok, _ = seqx.SequenceEqualMode("Go", "GO", seqx.OrdinalIgnoreCase)
	fmt.Println(ok)
	// Output:
	// false
	// true
}

func ExampleChars() {
	var missing *seqx.Chars
	_, err := missing.Take(0)
	fmt.Println(seqx.IsInvalidArgument(err), err)

	s, _ := seqx.From("hello").Skip(3)
	fmt.Println(s)
	// Output:
	// true value cannot be nil (parameter 'source')
	// lo
}
