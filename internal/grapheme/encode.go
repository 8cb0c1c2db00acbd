package grapheme

import "strings"

// EncodeGrapheme returns g wrapped in braces when it is multi-codepoint,
// otherwise g unchanged. This is the alphabet used by the editor export:
// a reader can always tell where one cell's grapheme ends and the next
// begins, even across scripts.
func EncodeGrapheme(g Grapheme) string {
	if IsMultiCodepoint(g) {
		return "{" + string(g) + "}"
	}
	return string(g)
}

// EncodeAnswer NFC-normalizes, segments, and brace-encodes text.
func EncodeAnswer(text, locale string) string {
	var b strings.Builder
	for _, g := range ToGraphemes(text, locale) {
		b.WriteString(EncodeGrapheme(g))
	}
	return b.String()
}

// DecodeAnswer reverses EncodeAnswer: it unwraps "{...}" regions and splits
// the remaining bare code points one grapheme per rune. Decoding
// EncodeAnswer(text, locale) yields the same sequence ToGraphemes(text,
// locale) would.
func DecodeAnswer(encoded string) []Grapheme {
	var out []Grapheme
	runes := []rune(encoded)
	for i := 0; i < len(runes); {
		if runes[i] == '{' {
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j < len(runes) {
				out = append(out, Grapheme(string(runes[i+1:j])))
				i = j + 1
				continue
			}
		}
		out = append(out, Grapheme(string(runes[i])))
		i++
	}
	return out
}

// ContainsBrace reports whether g contains a literal '{' or '}', which
// would make it ambiguous in the encoded alphabet.
func ContainsBrace(g Grapheme) bool {
	return strings.ContainsAny(string(g), "{}")
}
