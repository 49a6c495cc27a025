package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerrors "github.com/msto63/charseq/core/errors"
	"github.com/msto63/charseq/utils/seqx"
)

// formatChar renders c as a Go byte literal: 'a', '\n', '\x00', '\xe6'.
func formatChar(c seqx.Char) string {
	if c < utf8.RuneSelf {
		return strconv.QuoteRune(rune(c))
	}
	return fmt.Sprintf(`'\x%02x'`, c)
}

func formatChars(cs []seqx.Char) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = formatChar(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// parseChar accepts a single byte ("a") or a Go character escape that
// denotes one byte ("\x00", "\n", "\t").
func parseChar(op, arg string) (seqx.Char, error) {
	if len(arg) == 1 {
		return arg[0], nil
	}
	value, multibyte, tail, err := strconv.UnquoteChar(arg, '\'')
	if err != nil || multibyte || tail != "" {
		return seqx.NullChar, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, op, arg,
			`a single byte or escape such as '\x00'`)
	}
	return seqx.Char(value), nil
}

func parseInt(op, name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, op, arg, "an integer "+name)
	}
	return n, nil
}

func ascii(is func(rune) bool) seqx.Predicate {
	return func(c seqx.Char) bool {
		return c < utf8.RuneSelf && is(rune(c))
	}
}

// charClasses are the predicates selectable with last --match. Bytes
// outside ASCII never match.
var charClasses = map[string]seqx.Predicate{
	"digit":  ascii(unicode.IsDigit),
	"letter": ascii(unicode.IsLetter),
	"space":  ascii(unicode.IsSpace),
	"upper":  ascii(unicode.IsUpper),
	"lower":  ascii(unicode.IsLower),
	"punct":  ascii(unicode.IsPunct),
}

func charClassNames() []string {
	return []string{"digit", "letter", "space", "upper", "lower", "punct"}
}

func matchClass(op, name string) (seqx.Predicate, error) {
	if p, ok := charClasses[strings.ToLower(name)]; ok {
		return p, nil
	}
	return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, op, name,
		"one of "+strings.Join(charClassNames(), ", "))
}
