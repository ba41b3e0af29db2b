// Package fold normalizes Slovak text for keyword matching: it lowers
// the case and strips diacritics so that "Faktúra" matches "faktura".
// Every mapping is one rune to one rune, which keeps indexes into the
// folded text aligned with the original.
package fold

import (
	"strings"
	"unicode"
)

// diacritics maps accented Slovak letters to their ASCII base form.
var diacritics = map[rune]rune{
	'á': 'a', 'ä': 'a',
	'č': 'c',
	'ď': 'd',
	'é': 'e',
	'í': 'i',
	'ĺ': 'l', 'ľ': 'l',
	'ň': 'n',
	'ó': 'o', 'ô': 'o',
	'ŕ': 'r',
	'š': 's',
	'ť': 't',
	'ú': 'u',
	'ý': 'y',
	'ž': 'z',
}

// Rune folds a single rune to its lowercase, diacritic-free form.
func Rune(r rune) rune {
	r = unicode.ToLower(r)
	if base, ok := diacritics[r]; ok {
		return base
	}
	return r
}

// String folds a whole string.
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(Rune(r))
	}
	return b.String()
}

// Runes folds a rune slice in place and returns it.
func Runes(rs []rune) []rune {
	for i, r := range rs {
		rs[i] = Rune(r)
	}
	return rs
}

// Contains reports whether the folded form of s contains the folded
// form of substr.
func Contains(s, substr string) bool {
	return strings.Contains(String(s), String(substr))
}
