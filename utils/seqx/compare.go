// File: compare.go
// Title: Comparison Modes for SequenceEqualMode
// Description: Defines the Comparison policy used by SequenceEqualMode.
//              Ordinal modes compare bytes (with simple Unicode case folding
//              for the IgnoreCase variant); culture modes delegate to an
//              x/text collator for the invariant or the current language.
//              Operands that are not valid UTF-8 are compared byte by byte.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with six comparison modes

package seqx

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/charseq/core/errors"
)

// Comparison selects how SequenceEqualMode judges two strings equal.
type Comparison int

const (
	// Ordinal compares bytes exactly. It is the default.
	Ordinal Comparison = iota

	// OrdinalIgnoreCase compares bytes after simple Unicode case folding.
	OrdinalIgnoreCase

	// InvariantCulture compares with the root collation order.
	InvariantCulture

	// InvariantCultureIgnoreCase is InvariantCulture ignoring case.
	InvariantCultureIgnoreCase

	// CurrentCulture compares with the collation of Culture().
	CurrentCulture

	// CurrentCultureIgnoreCase is CurrentCulture ignoring case.
	CurrentCultureIgnoreCase
)

var comparisonNames = [...]string{
	Ordinal:                    "ordinal",
	OrdinalIgnoreCase:          "ordinal-ignore-case",
	InvariantCulture:           "invariant",
	InvariantCultureIgnoreCase: "invariant-ignore-case",
	CurrentCulture:             "current",
	CurrentCultureIgnoreCase:   "current-ignore-case",
}

// String returns the canonical name of the mode
func (c Comparison) String() string {
	if c.IsValid() {
		return comparisonNames[c]
	}
	return "unknown"
}

// IsValid reports whether c is one of the defined modes
func (c Comparison) IsValid() bool {
	return c >= Ordinal && c <= CurrentCultureIgnoreCase
}

// IgnoresCase reports whether the mode folds case
func (c Comparison) IgnoresCase() bool {
	return c == OrdinalIgnoreCase || c == InvariantCultureIgnoreCase || c == CurrentCultureIgnoreCase
}

// ParseComparison parses a mode name as returned by String. Matching is
// case-insensitive and accepts '_' in place of '-'.
func ParseComparison(name string) (Comparison, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range comparisonNames {
		if n == normalized {
			return Comparison(i), nil
		}
	}
	return Ordinal, mdwerrors.InvalidArgument(mdwerrors.ModuleSeqx, "ParseComparison", "name", name,
		"expected one of "+strings.Join(comparisonNames[:], ", "))
}

func (c Comparison) equal(a, b string) bool {
	// decoding maps every invalid byte to U+FFFD, which would make
	// distinct code units compare equal
	if c != Ordinal && (!utf8.ValidString(a) || !utf8.ValidString(b)) {
		return equalBytes(a, b, c.IgnoresCase())
	}

	switch c {
	case Ordinal:
		return a == b
	case OrdinalIgnoreCase:
		return strings.EqualFold(a, b)
	case InvariantCulture, InvariantCultureIgnoreCase:
		return collatorFor(language.Und, c.IgnoresCase()).CompareString(a, b) == 0
	case CurrentCulture, CurrentCultureIgnoreCase:
		return collatorFor(Culture(), c.IgnoresCase()).CompareString(a, b) == 0
	}
	return false
}

// equalBytes compares a and b byte by byte, folding only ASCII letters
// when ignoreCase is set.
func equalBytes(a, b string, ignoreCase bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		x, y := a[i], b[i]
		if ignoreCase {
			x, y = lowerASCII(x), lowerASCII(y)
		}
		if x != y {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// collatorFor builds a fresh collator; collators keep internal buffers and
// must not be shared between goroutines.
func collatorFor(tag language.Tag, ignoreCase bool) *collate.Collator {
	if ignoreCase {
		return collate.New(tag, collate.IgnoreCase)
	}
	return collate.New(tag)
}

// ===============================
// Current culture
// ===============================

var (
	cultureMu      sync.RWMutex
	currentCulture = language.Und
)

// Culture returns the language used by the CurrentCulture modes. It is
// language.Und (root collation) until SetCulture is called.
func Culture() language.Tag {
	cultureMu.RLock()
	defer cultureMu.RUnlock()
	return currentCulture
}

// SetCulture sets the language used by the CurrentCulture modes.
func SetCulture(tag language.Tag) {
	cultureMu.Lock()
	defer cultureMu.Unlock()
	currentCulture = tag
}

// SetCultureName parses a BCP 47 tag such as "de-DE" and makes it the
// current culture. An empty name resets to the root collation.
func SetCultureName(name string) error {
	if strings.TrimSpace(name) == "" {
		SetCulture(language.Und)
		return nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleSeqx, "SetCultureName", "name", name, err.Error())
	}
	SetCulture(tag)
	return nil
}
