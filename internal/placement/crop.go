package placement

// crop computes the tight bounding box over all placed word cells and
// re-derives a fresh grid of that size from the shifted placements
// (never by copying the old grid, so cell state always matches the
// placements exactly). If nothing was placed, the original W x H empty
// grid is returned unchanged (§4.3.7, §9 open question).
func crop(originalWidth, originalHeight int, placements []Placement) (*Grid, []Placement) {
	if len(placements) == 0 {
		return NewGrid(originalWidth, originalHeight), nil
	}

	minX, minY := placements[0].StartX, placements[0].StartY
	maxX, maxY := minX, minY

	for _, p := range placements {
		length := len(p.Item.Graphemes)
		for i := 0; i < length; i++ {
			x, y := p.cell(i)
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	width := maxX - minX + 1
	height := maxY - minY + 1
	g := NewGrid(width, height)

	shifted := make([]Placement, len(placements))
	for i, p := range placements {
		shifted[i] = p
		shifted[i].StartX -= minX
		shifted[i].StartY -= minY

		length := len(p.Item.Graphemes)
		for j := 0; j < length; j++ {
			x, y := shifted[i].cell(j)
			cell := g.At(x, y)
			if !cell.Occupied() {
				gr := p.Item.Graphemes[j]
				cell.Grapheme = &gr
			}
			cell.WordIDs = append(cell.WordIDs, p.WordID)
		}
	}

	return g, shifted
}
