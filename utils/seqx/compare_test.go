// File: compare_test.go
// Title: Tests for Comparison Modes
// Description: Reflexivity and symmetry of every mode, case handling, the
//              canonical-equivalence behavior of the collating modes and
//              mode name parsing.
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
	"golang.org/x/text/language"
)

var allModes = []Comparison{
	Ordinal, OrdinalIgnoreCase,
	InvariantCulture, InvariantCultureIgnoreCase,
	CurrentCulture, CurrentCultureIgnoreCase,
}

func mustEqual(t *testing.T, a, b string, mode Comparison) bool {
	t.Helper()
	ok, err := SequenceEqualMode(a, b, mode)
	require.NoError(t, err)
	return ok
}

func TestSequenceEqualModeReflexiveAndSymmetric(t *testing.T) {
	inputs := []string{"", "a", "Hello", "héllo", "こんにちは", "a1b2"}

	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			for _, a := range inputs {
				assert.True(t, mustEqual(t, a, a, mode), "%q", a)
				for _, b := range inputs {
					assert.Equal(t, mustEqual(t, a, b, mode), mustEqual(t, b, a, mode), "%q vs %q", a, b)
				}
			}
		})
	}
}

func TestSequenceEqualModeCase(t *testing.T) {
	tests := []struct {
		mode     Comparison
		expected bool
	}{
		{Ordinal, false},
		{OrdinalIgnoreCase, true},
		{InvariantCulture, false},
		{InvariantCultureIgnoreCase, true},
		{CurrentCulture, false},
		{CurrentCultureIgnoreCase, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, mustEqual(t, "Hello", "hELLO", tt.mode))
			assert.False(t, mustEqual(t, "Hello", "Help", tt.mode))
		})
	}
}

func TestCollatingModesUseCanonicalEquivalence(t *testing.T) {
	precomposed, decomposed := "caf\u00e9", "cafe\u0301"

	assert.False(t, mustEqual(t, precomposed, decomposed, Ordinal))
	assert.False(t, mustEqual(t, precomposed, decomposed, OrdinalIgnoreCase))
	assert.True(t, mustEqual(t, precomposed, decomposed, InvariantCulture))
	assert.True(t, mustEqual(t, precomposed, decomposed, InvariantCultureIgnoreCase))
}

func TestInvalidUTF8ComparesCodeUnits(t *testing.T) {
	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			assert.False(t, mustEqual(t, "\xff", "\xfe", mode))
			assert.False(t, mustEqual(t, "a\x80", "a\xc0", mode))
			assert.False(t, mustEqual(t, "\xff", "\ufffd", mode))
			assert.True(t, mustEqual(t, "a\xff", "a\xff", mode))
		})
	}

	assert.True(t, mustEqual(t, "AB\xff", "ab\xff", OrdinalIgnoreCase))
	assert.False(t, mustEqual(t, "AB\xff", "ab\xff", InvariantCulture))
	assert.True(t, mustEqual(t, "AB\xff", "ab\xff", CurrentCultureIgnoreCase))
}

func TestCulture(t *testing.T) {
	t.Cleanup(func() { SetCulture(language.Und) })

	assert.Equal(t, language.Und, Culture())

	require.NoError(t, SetCultureName("de-DE"))
	assert.Equal(t, language.MustParse("de-DE"), Culture())
	assert.True(t, mustEqual(t, "Straße", "Straße", CurrentCulture))
	assert.True(t, mustEqual(t, "STRASSE", "strasse", CurrentCultureIgnoreCase))

	err := SetCultureName("not a language tag!")
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, language.MustParse("de-DE"), Culture(), "failed parse keeps the previous culture")

	require.NoError(t, SetCultureName(" "))
	assert.Equal(t, language.Und, Culture())
}

func TestParseComparison(t *testing.T) {
	tests := []struct {
		input    string
		expected Comparison
		wantErr  bool
	}{
		{"ordinal", Ordinal, false},
		{"Ordinal-Ignore-Case", OrdinalIgnoreCase, false},
		{"ordinal_ignore_case", OrdinalIgnoreCase, false},
		{" invariant ", InvariantCulture, false},
		{"invariant-ignore-case", InvariantCultureIgnoreCase, false},
		{"current", CurrentCulture, false},
		{"CURRENT_IGNORE_CASE", CurrentCultureIgnoreCase, false},
		{"", Ordinal, true},
		{"culture", Ordinal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComparison(tt.input)
			assert.Equal(t, tt.expected, got)
			if tt.wantErr {
				assert.True(t, IsInvalidArgument(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestComparisonString(t *testing.T) {
	for _, mode := range allModes {
		parsed, err := ParseComparison(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	assert.Equal(t, "unknown", Comparison(-1).String())
	assert.False(t, Comparison(6).IsValid())
	assert.True(t, OrdinalIgnoreCase.IgnoresCase())
	assert.False(t, InvariantCulture.IgnoresCase())
}
