package grapheme

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// isZeroWidth reports whether r is one of the zero-width characters stripped from answer text:
// U+200B..U+200D (ZWSP, ZWNJ, ZWJ) and U+FEFF (BOM / ZWNBSP).
func isZeroWidth(r rune) bool {
	return (r >= 0x200B && r <= 0x200D) || r == 0xFEFF
}

// stripPunctuation deliberately excludes '{' and '}': those are left in
// place so NewClueItem's brace check can reject them instead of this
// function silently erasing them.
const stripPunctuation = ".,!?;:'\"()[]-–—"

// CleanAnswerText strips ASCII whitespace, zero-width characters, and a
// fixed punctuation set from text, then NFC-normalizes the result.
func CleanAnswerText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isZeroWidth(r) {
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' {
			continue
		}
		if strings.ContainsRune(stripPunctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
