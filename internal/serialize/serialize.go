package serialize

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/crossplay/wordgrid/internal/grapheme"
	"github.com/crossplay/wordgrid/internal/placement"
)

// Serialize converts a placement result into the client-facing payload
// (§4.5). When removeUnplaced is true, unplaced words are dropped from
// both the query string and the output's Placed list numbering — only
// words that actually made it onto the grid are renumbered into the
// query.
func Serialize(result placement.Result, removeUnplaced bool) Output {
	placed := make([]WordEntry, len(result.Placements))
	for i, p := range result.Placements {
		placed[i] = WordEntry{
			Number:        i + 1,
			Answer:        p.Item.Answer,
			Clue:          p.Item.Clue,
			StartX:        p.StartX,
			StartY:        p.StartY,
			Direction:     p.Direction.String(),
			GraphemeCount: len(p.Item.Graphemes),
		}
	}

	unplaced := make([]WordEntry, len(result.Unplaced))
	for i, item := range result.Unplaced {
		unplaced[i] = WordEntry{
			Number:        i + 1,
			Answer:        item.Answer,
			Clue:          item.Clue,
			GraphemeCount: len(item.Graphemes),
		}
	}

	query := buildQuery(result, removeUnplaced)
	grid := buildDisplayGrid(result.Grid)

	return Output{
		Query:    query,
		Grid:     grid,
		Placed:   placed,
		Unplaced: unplaced,
		Stats: Stats{
			Requested: result.Stats.Requested,
			Placed:    result.Stats.Placed,
			Unplaced:  result.Stats.Unplaced,
			FillRatio: result.Stats.FillRatio,
		},
	}
}

// buildQuery emits ans{n}=<encoded-answer>&question{n}=<clue> pairs,
// renumbered from 1 across the chosen subset, with removeUnplacedWords=true
// appended when the caller opted to drop unplaced words.
func buildQuery(result placement.Result, removeUnplaced bool) string {
	var pairs []string
	n := 1

	for _, p := range result.Placements {
		encoded := grapheme.EncodeAnswer(p.Item.Answer, p.Item.Locale)
		pairs = append(pairs, fmt.Sprintf("ans%d=%s", n, url.QueryEscape(encoded)))
		pairs = append(pairs, fmt.Sprintf("question%d=%s", n, url.QueryEscape(p.Item.Clue)))
		n++
	}

	if !removeUnplaced {
		for _, item := range result.Unplaced {
			encoded := grapheme.EncodeAnswer(item.Answer, item.Locale)
			pairs = append(pairs, fmt.Sprintf("ans%d=%s", n, url.QueryEscape(encoded)))
			pairs = append(pairs, fmt.Sprintf("question%d=%s", n, url.QueryEscape(item.Clue)))
			n++
		}
	}

	if removeUnplaced {
		pairs = append(pairs, "removeUnplacedWords=true")
	}

	return strings.Join(pairs, "&")
}

func buildDisplayGrid(g *placement.Grid) [][]*string {
	if g == nil {
		return nil
	}
	grid := make([][]*string, g.Height)
	for y := 0; y < g.Height; y++ {
		grid[y] = make([]*string, g.Width)
		for x := 0; x < g.Width; x++ {
			cell := g.At(x, y)
			if cell != nil && cell.Occupied() {
				s := string(*cell.Grapheme)
				grid[y][x] = &s
			}
		}
	}
	return grid
}
