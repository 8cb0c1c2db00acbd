package placement

import (
	"fmt"
	"strings"

	"github.com/crossplay/wordgrid/internal/grapheme"
)

// ManualEntry is a fully caller-specified placement for manual_advanced
// mode (§4.3.8): the caller owns the layout, so only bounds and
// intersection agreement are checked, not side-adjacency or word-ends
// clearance.
type ManualEntry struct {
	Answer    string
	Clue      string
	Row       int
	Col       int
	Direction string // "across" or "down"
	Locale    string
}

// ManualError reports why one manual placement was rejected.
type ManualError struct {
	Index   int
	Word    string
	Message string
}

func (e ManualError) String() string {
	return fmt.Sprintf("%s: %s", e.Word, e.Message)
}

func parseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "across":
		return ACROSS, nil
	case "down":
		return DOWN, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// GenerateManualAdvanced validates and commits every entry, aggregating
// every rejection (not just the first) so the caller can report
// "word: reason; word: reason; …" in one shot (§7). On success every word
// is placed and there is no unplaced list.
func GenerateManualAdvanced(entries []ManualEntry, width, height int) (*Result, []ManualError) {
	g := NewGrid(width, height)
	var starts []StartRecord
	var placements []Placement
	var errs []ManualError
	nextID := 1

	for idx, entry := range entries {
		locale := entry.Locale
		if locale == "" {
			locale = "en-US"
		}
		item, err := grapheme.NewClueItem(entry.Answer, entry.Clue, locale)
		if err != nil {
			errs = append(errs, ManualError{Index: idx, Word: entry.Answer, Message: err.Error()})
			continue
		}

		dir, err := parseDirection(entry.Direction)
		if err != nil {
			errs = append(errs, ManualError{Index: idx, Word: item.Answer, Message: err.Error()})
			continue
		}

		p := &Placement{Item: item, StartX: entry.Col, StartY: entry.Row, Direction: dir}
		ok, reason := validate(g, p, starts, manualRules)
		if !ok {
			errs = append(errs, ManualError{Index: idx, Word: item.Answer, Message: string(reason)})
			continue
		}

		commit(g, p, &starts, &placements, nextID)
		nextID++
	}

	if len(errs) > 0 {
		return nil, errs
	}

	stats := Stats{Requested: len(entries), Placed: len(placements), Unplaced: 0}
	if stats.Requested > 0 {
		stats.FillRatio = float64(stats.Placed) / float64(stats.Requested)
	}

	return &Result{
		Grid:       g,
		Placements: placements,
		Width:      width,
		Height:     height,
		Stats:      stats,
	}, nil
}

// FormatManualErrors renders errs as "word: reason; word: reason; …" per §7.
func FormatManualErrors(errs []ManualError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
