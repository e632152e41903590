// Package signal derives normalized decision signals from raw intake
// profiles. Every extractor is pure and total: missing input is treated as
// the empty string and matching is case and diacritic insensitive, because
// the rule vocabulary is Spanish-language free text.
package signal

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lowercases the input and strips diacritics, so "Inspección" and
// "inspeccion" compare equal.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the raw string
		// for anything else rather than losing the text.
		folded = s
	}
	return strings.ToLower(folded)
}

// CollapseSpaces trims the string and squeezes internal whitespace runs into
// single spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContainsAny reports whether the folded text contains any of the given
// already-folded substrings.
func ContainsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// ContainsAnyWord reports whether the folded text contains any of the given
// already-folded keywords as whole words. Used for keyword sets whose
// entries are also prefixes of unrelated vocabulary.
func ContainsAnyWord(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if containsWord(folded, kw) {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(word)
		before, _ := utf8.DecodeLastRuneInString(s[:start])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}
		from = start + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
