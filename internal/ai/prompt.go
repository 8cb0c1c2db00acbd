package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// responseSchema is the expected JSON shape from the clue source.
type responseSchema struct {
	Items []struct {
		Answer string `json:"answer"`
		Clue   string `json:"clue"`
	} `json:"items"`
}

func buildPrompt(req Request) (string, error) {
	if req.NumItems <= 0 {
		return "", fmt.Errorf("numItems must be positive, got %d", req.NumItems)
	}
	if strings.TrimSpace(req.InputValue) == "" {
		return "", fmt.Errorf("inputValue is required for AI mode")
	}

	example, _ := json.MarshalIndent(map[string]interface{}{
		"items": []map[string]string{
			{"answer": "EXAMPLE", "clue": "Illustrative sample entry"},
		},
	}, "", "  ")

	var sourceLine string
	switch req.InputType {
	case InputURL:
		sourceLine = "Source URL: " + req.InputValue
	case InputPDF:
		sourceLine = "Source document text: " + req.InputValue
	case InputText:
		sourceLine = "Source text: " + req.InputValue
	default:
		sourceLine = "Topic: " + req.InputValue
	}

	instructions := ""
	if req.UserInstructions != "" {
		instructions = "Additional instructions: " + req.UserInstructions + "\n"
	}

	prompt := fmt.Sprintf(`You are a crossword puzzle content writer. Generate exactly %d (answer, clue) pairs in the language %s.

%s
%s
Requirements:
- Each answer is a single word or short phrase with no spaces other than what the theme naturally requires
- Each clue is concise (typically 3-10 words) and does not contain the answer
- Answers must be distinct from one another

Respond with a JSON object in the following format:
%s

Return ONLY the JSON object with all %d entries filled in. Do not include any explanatory text before or after the JSON.`,
		req.NumItems, req.ContentLanguage, sourceLine, instructions, string(example), req.NumItems)

	return prompt, nil
}

func parseResponse(raw string) ([]Candidate, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var parsed responseSchema
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse clue source response: %w", err)
	}
	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("response contains no items")
	}

	candidates := make([]Candidate, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if strings.TrimSpace(item.Answer) == "" {
			continue
		}
		candidates = append(candidates, Candidate{Answer: item.Answer, Clue: item.Clue})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("response contained no usable answers")
	}
	return candidates, nil
}
