package store

import (
	"fmt"

	"github.com/crossplay/wordgrid/internal/placement"
	"github.com/crossplay/wordgrid/internal/polyomino"
	"github.com/crossplay/wordgrid/internal/suitability"
)

// FromResult builds the placements.json and grid.json payloads from a
// placement result.
func FromResult(result placement.Result) (Placements, Grid) {
	placements := Placements{
		Placed:   make([]PlacedWord, len(result.Placements)),
		Unplaced: make([]UnplacedWord, len(result.Unplaced)),
	}
	for i, p := range result.Placements {
		placements.Placed[i] = PlacedWord{
			Answer:    p.Item.Answer,
			Row:       p.StartY,
			Col:       p.StartX,
			Direction: p.Direction.String(),
		}
	}
	for i, item := range result.Unplaced {
		placements.Unplaced[i] = UnplacedWord{Answer: item.Answer, Reason: "could not be placed"}
	}

	grid := Grid{Width: result.Width, Height: result.Height}
	if result.Grid != nil {
		grid.Cells = make([][]GridCell, result.Grid.Height)
		for y := 0; y < result.Grid.Height; y++ {
			grid.Cells[y] = make([]GridCell, result.Grid.Width)
			for x := 0; x < result.Grid.Width; x++ {
				cell := result.Grid.At(x, y)
				if cell != nil && cell.Occupied() {
					s := string(*cell.Grapheme)
					grid.Cells[y][x] = GridCell{G: &s}
				}
			}
		}
	}

	return placements, grid
}

// FromFilterResult builds candidates.json and filtered.json from the
// suitability filter's output.
func FromFilterResult(res suitability.Result) ([]Candidate, Filtered) {
	var candidates []Candidate
	for _, item := range res.Kept {
		graphemes := make([]string, len(item.Graphemes))
		for i, g := range item.Graphemes {
			graphemes[i] = string(g)
		}
		candidates = append(candidates, Candidate{Answer: item.Answer, Graphemes: graphemes, Clue: item.Clue})
	}

	filtered := Filtered{Kept: candidates}
	for _, r := range res.Removed {
		filtered.Removed = append(filtered.Removed, RemovedCandidate{Answer: r.Item.Answer, Reason: r.Reason})
	}
	return candidates, filtered
}

// FromPolyomino builds polyomino.json from a polyomino partition.
func FromPolyomino(p polyomino.Puzzle) Polyomino {
	pieces := make([]PolyominoPiece, len(p.Pieces))
	for i, piece := range p.Pieces {
		cells := make([]PolyominoCell, len(piece.Cells))
		for j, c := range piece.Cells {
			cells[j] = PolyominoCell{
				RelX:    c.RelX,
				RelY:    c.RelY,
				Letter:  c.Letter,
				BlockID: c.BlockID,
				Node:    c.Neighbors,
			}
		}
		pieces[i] = PolyominoPiece{
			ID:       piece.ID,
			CorrectX: piece.AnchorX,
			CorrectY: piece.AnchorY,
			Cells:    cells,
		}
	}
	return Polyomino{Theme: p.Theme, GridWidth: p.GridWidth, GridHeight: p.GridHeight, Pieces: pieces}
}

// GridSizeString renders "WxH" for meta.json.
func GridSizeString(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
