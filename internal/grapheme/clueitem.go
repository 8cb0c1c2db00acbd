package grapheme

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// InvalidAnswerError reports that an answer cannot be turned into a valid
// ClueItem (too short/long once segmented, a grapheme containing a literal
// brace that would break the encoded alphabet, etc).
type InvalidAnswerError struct {
	Answer string
	Reason string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer %q: %s", e.Answer, e.Reason)
}

// MinGraphemes and MaxGraphemes bound the length of a ClueItem's answer,
// per the grid-cell invariant in the data model.
const (
	MinGraphemes = 2
	MaxGraphemes = 20
)

// ClueItem is the normalized answer, its clue text, and the ordered
// grapheme sequence that makes up the answer. join(Graphemes) always
// equals the NFC-normalized, cleaned answer text.
type ClueItem struct {
	Answer    string
	Clue      string
	Graphemes []Grapheme
	Locale    string
}

// NewClueItem cleans the answer text, segments it, and validates the
// data-model invariants: 2 <= len(graphemes) <= 20, every grapheme
// non-empty, and no grapheme contains a literal brace (which would be
// ambiguous once encoded).
func NewClueItem(answer, clue, locale string) (*ClueItem, error) {
	cleaned := CleanAnswerText(answer)
	if cleaned == "" {
		return nil, &InvalidAnswerError{Answer: answer, Reason: "empty after cleaning"}
	}

	graphemes := ToGraphemes(cleaned, locale)
	if len(graphemes) < MinGraphemes || len(graphemes) > MaxGraphemes {
		return nil, &InvalidAnswerError{
			Answer: answer,
			Reason: fmt.Sprintf("grapheme count %d out of range [%d,%d]", len(graphemes), MinGraphemes, MaxGraphemes),
		}
	}

	for _, g := range graphemes {
		if len(g) == 0 {
			return nil, &InvalidAnswerError{Answer: answer, Reason: "empty grapheme"}
		}
		if ContainsBrace(g) {
			return nil, &InvalidAnswerError{Answer: answer, Reason: fmt.Sprintf("grapheme %q contains a literal brace", g)}
		}
	}

	return &ClueItem{
		Answer:    cleaned,
		Clue:      norm.NFC.String(clue),
		Graphemes: graphemes,
		Locale:    locale,
	}, nil
}
