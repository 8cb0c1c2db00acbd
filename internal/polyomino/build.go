package polyomino

import "fmt"

// buildPieces converts final cell groups into Piece values: anchor is the
// topmost-then-leftmost cell, cells carry relative coordinates sorted by
// (rel_y ASC, rel_x ASC), and each cell's Neighbors hold the block id of
// the 4-neighbor filled cell in that direction or noNeighbor (§4.4 piece
// construction).
func buildPieces(groups [][]coord, registry map[coord]*regCell) []Piece {
	pieces := make([]Piece, len(groups))

	for i, group := range groups {
		anchor := topLeftAnchor(group)
		cells := make([]PieceCell, len(group))

		for j, c := range group {
			reg := registry[c]
			cells[j] = PieceCell{
				RelX:    c.x - anchor.x,
				RelY:    c.y - anchor.y,
				Letter:  reg.letter,
				BlockID: reg.blockID,
				Neighbors: [4]int{
					neighborBlock(registry, coord{c.x, c.y - 1}),
					neighborBlock(registry, coord{c.x + 1, c.y}),
					neighborBlock(registry, coord{c.x, c.y + 1}),
					neighborBlock(registry, coord{c.x - 1, c.y}),
				},
			}
		}
		sortByRelPosition(cells)

		pieces[i] = Piece{
			ID:      fmt.Sprintf("piece_%d", i),
			AnchorX: anchor.x,
			AnchorY: anchor.y,
			Cells:   cells,
		}
	}

	return pieces
}

func topLeftAnchor(group []coord) coord {
	anchor := group[0]
	for _, c := range group[1:] {
		if c.y < anchor.y || (c.y == anchor.y && c.x < anchor.x) {
			anchor = c
		}
	}
	return anchor
}

func neighborBlock(registry map[coord]*regCell, c coord) int {
	if reg, ok := registry[c]; ok {
		return reg.blockID
	}
	return noNeighbor
}

func sortByRelPosition(cells []PieceCell) {
	for i := 1; i < len(cells); i++ {
		j := i
		for j > 0 && relLess(cells[j], cells[j-1]) {
			cells[j-1], cells[j] = cells[j], cells[j-1]
			j--
		}
	}
}

func relLess(a, b PieceCell) bool {
	if a.RelY != b.RelY {
		return a.RelY < b.RelY
	}
	return a.RelX < b.RelX
}
