package polyomino

// sortSeedOrder stable-sorts cells by (word_count DESC, y ASC, x ASC),
// the order in which new partition seeds are picked (§4.4 seed ordering).
func sortSeedOrder(cells []*regCell) {
	for i := 1; i < len(cells); i++ {
		j := i
		for j > 0 && seedLess(cells[j], cells[j-1]) {
			cells[j-1], cells[j] = cells[j], cells[j-1]
			j--
		}
	}
}

func seedLess(a, b *regCell) bool {
	if a.wordCount != b.wordCount {
		return a.wordCount > b.wordCount
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}

func registryCells(registry map[coord]*regCell) []*regCell {
	cells := make([]*regCell, 0, len(registry))
	for _, c := range registry {
		cells = append(cells, c)
	}
	sortSeedOrder(cells)
	return cells
}
