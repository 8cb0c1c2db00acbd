package ai

import (
	"context"
	"fmt"
)

// MockSource is a deterministic ClueSource for tests and offline use: it
// never calls a network, producing numItems placeholder entries derived
// only from the request's input value.
type MockSource struct{}

func NewMockSource() *MockSource { return &MockSource{} }

func (m *MockSource) Generate(ctx context.Context, req Request) ([]Candidate, Exchange, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, Exchange{}, err
	}

	candidates := make([]Candidate, req.NumItems)
	for i := 0; i < req.NumItems; i++ {
		candidates[i] = Candidate{
			Answer: fmt.Sprintf("%s%d", sanitizeSeed(req.InputValue), i+1),
			Clue:   fmt.Sprintf("Placeholder clue %d for %s", i+1, req.InputValue),
		}
	}

	exchange := Exchange{Prompt: prompt, Model: "mock", RawResponse: "generated without a network call"}
	return candidates, exchange, nil
}

func sanitizeSeed(s string) string {
	if s == "" {
		return "ITEM"
	}
	runes := []rune(s)
	if len(runes) > 6 {
		runes = runes[:6]
	}
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "ITEM"
	}
	return string(out)
}
