package placement

// commit writes a validated placement's cells into the grid, records its
// start cell, and appends it to the placement list. nextID is the word id
// to assign (1-based, monotonically increasing).
func commit(g *Grid, p *Placement, starts *[]StartRecord, placements *[]Placement, nextID int) {
	p.WordID = nextID
	p.Placed = true

	length := len(p.Item.Graphemes)
	for i := 0; i < length; i++ {
		x, y := p.cell(i)
		cell := g.At(x, y)
		if !cell.Occupied() {
			gr := p.Item.Graphemes[i]
			cell.Grapheme = &gr
		}
		cell.WordIDs = append(cell.WordIDs, p.WordID)
	}

	*starts = append(*starts, StartRecord{
		X:             p.StartX,
		Y:             p.StartY,
		Direction:     p.Direction,
		FirstGrapheme: p.Item.Graphemes[0],
	})
	*placements = append(*placements, *p)
}
