package polyomino

import "github.com/crossplay/wordgrid/internal/placement"

type coord struct{ x, y int }

// buildRegistry walks placements in order, assigning a block id to each
// filled cell on first sighting and incrementing word_count on every
// subsequent sighting (§4.4 cell registry).
func buildRegistry(placements []placement.Placement) map[coord]*regCell {
	registry := make(map[coord]*regCell)
	nextBlockID := 0

	for _, p := range placements {
		length := len(p.Item.Graphemes)
		for i := 0; i < length; i++ {
			x, y := placementCell(p, i)
			c := coord{x, y}
			if existing, ok := registry[c]; ok {
				existing.wordCount++
				continue
			}
			registry[c] = &regCell{
				x:         x,
				y:         y,
				letter:    string(p.Item.Graphemes[i]),
				blockID:   nextBlockID,
				wordCount: 1,
			}
			nextBlockID++
		}
	}
	return registry
}

// placementCell re-derives (x, y) for grapheme index i without exporting
// Placement.cell from the placement package.
func placementCell(p placement.Placement, i int) (int, int) {
	if p.Direction == placement.ACROSS {
		return p.StartX + i, p.StartY
	}
	return p.StartX, p.StartY + i
}

// neighbor4 returns the 4-connected neighbor coordinates in
// up/right/down/left order, matching PieceCell.Neighbors indexing.
func neighbor4(c coord) [4]coord {
	return [4]coord{
		{c.x, c.y - 1}, // up
		{c.x + 1, c.y}, // right
		{c.x, c.y + 1}, // down
		{c.x - 1, c.y}, // left
	}
}
