// Package grapheme segments and compares user-perceived characters so the
// placement engine can treat a Devanagari cluster or an emoji sequence the
// same way it treats a Latin letter: as exactly one grid cell.
package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Grapheme is a non-empty NFC-normalized string representing one
// user-perceived character.
type Grapheme string

// ToGraphemes NFC-normalizes text and segments it into grapheme clusters
// per UAX #29. The locale parameter is accepted for interface symmetry
// with callers that carry a BCP-47 tag end to end (see ClueItem); uniseg's
// extended grapheme cluster algorithm is locale-independent, so it has no
// effect on segmentation.
func ToGraphemes(text, locale string) []Grapheme {
	normalized := norm.NFC.String(text)
	if normalized == "" {
		return nil
	}

	graphemes := make([]Grapheme, 0, utf8.RuneCountInString(normalized))
	gr := uniseg.NewGraphemes(normalized)
	for gr.Next() {
		graphemes = append(graphemes, Grapheme(gr.Str()))
	}
	return graphemes
}

// GraphemeLength returns the number of grapheme clusters in text.
func GraphemeLength(text, locale string) int {
	return len(ToGraphemes(text, locale))
}

// GraphemeAt returns the i-th grapheme cluster of text, or nil if i is out
// of range.
func GraphemeAt(text string, i int, locale string) *Grapheme {
	graphemes := ToGraphemes(text, locale)
	if i < 0 || i >= len(graphemes) {
		return nil
	}
	return &graphemes[i]
}

// CodepointCount returns the number of Unicode code points in g.
func CodepointCount(g Grapheme) int {
	return utf8.RuneCountInString(string(g))
}

// IsMultiCodepoint reports whether g is composed of more than one code
// point (e.g. a consonant+nukta+matra cluster).
func IsMultiCodepoint(g Grapheme) bool {
	return CodepointCount(g) > 1
}

// CompareGraphemes reports whether a and b denote the same user-perceived
// character after NFC normalization.
func CompareGraphemes(a, b Grapheme) bool {
	return norm.NFC.String(string(a)) == norm.NFC.String(string(b))
}

// GraphemePair is an index pair (i, j) such that A[i] and B[j] compare equal.
type GraphemePair struct {
	I, J int
}

// FindCommonGraphemes returns every (i, j) pair with CompareGraphemes(A[i],
// B[j]), iterating i ascending then j ascending.
func FindCommonGraphemes(a, b []Grapheme) []GraphemePair {
	var pairs []GraphemePair
	for i, ga := range a {
		for j, gb := range b {
			if CompareGraphemes(ga, gb) {
				pairs = append(pairs, GraphemePair{I: i, J: j})
			}
		}
	}
	return pairs
}

// Join concatenates a grapheme sequence back into a plain string.
func Join(graphemes []Grapheme) string {
	var b []byte
	for _, g := range graphemes {
		b = append(b, g...)
	}
	return string(b)
}
