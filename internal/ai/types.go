// Package ai supplies the AI-mode clue source: given a topic/URL/PDF/text
// prompt, it returns a bag of (answer, clue) candidate pairs for the
// suitability filter and placement engine to consume.
package ai

import "context"

type InputType string

const (
	InputTopic InputType = "TOPIC"
	InputURL   InputType = "URL"
	InputPDF   InputType = "PDF"
	InputText  InputType = "TEXT"
)

// Request describes one clue-generation call.
type Request struct {
	InputType        InputType
	InputValue       string
	NumItems         int
	ContentLanguage  string
	UserInstructions string
}

// Candidate is a single generated (answer, clue) pair, pre-suitability-filter.
type Candidate struct {
	Answer string
	Clue   string
}

// Exchange records the raw prompt/response for gemini_raw.json persistence,
// regardless of which backend produced it.
type Exchange struct {
	Prompt      string
	Model       string
	RawResponse string
}

// ClueSource generates candidate clues for AI-mode generation requests.
type ClueSource interface {
	Generate(ctx context.Context, req Request) ([]Candidate, Exchange, error)
}
