// Package vi provides Vietnamese diacritic-aware text folding for matching
// user-supplied Can-Chi and Solar Term names against the engine's canonical
// spellings, independent of tone marks and case.
package vi

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransform decomposes combining diacritics (NFD) and then drops the
// combining-mark runes, leaving the base Latin letters behind.
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold reduces s to a diacritic-stripped, lowercase form suitable for
// case/tone-insensitive comparison, e.g. "Đông chí" -> "dong chi".
//
// Đ/đ does not decompose under NFD (it is a distinct Latin letter, not a
// base letter plus a stroke combining mark), so it is folded explicitly.
func Fold(s string) string {
	s = strings.ReplaceAll(s, "Đ", "D")
	s = strings.ReplaceAll(s, "đ", "d")

	out, _, err := transform.String(foldTransform, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Equal reports whether a and b are the same Vietnamese text up to tone
// marks, diacritics and case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// FindIndex returns the index of the first entry in names whose folded form
// matches the folded form of query, or -1 if none match. Used to resolve a
// user-supplied Solar Term or Can-Chi name to its canonical index.
func FindIndex(names []string, query string) int {
	q := Fold(query)
	for i, name := range names {
		if Fold(name) == q {
			return i
		}
	}
	return -1
}
