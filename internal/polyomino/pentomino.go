package polyomino

// findCrossPentomino scans intersection cells (word_count >= 2) in seed
// order and returns the first whose four 4-neighbors are all filled and
// still unassigned, forming a fixed 5-cell plus-shaped piece (§4.4
// optional cross pentomino). Returns nil if none qualifies.
func findCrossPentomino(registry map[coord]*regCell, assigned map[coord]bool) []coord {
	var intersections []*regCell
	for _, c := range registry {
		if c.wordCount >= 2 {
			intersections = append(intersections, c)
		}
	}
	sortSeedOrder(intersections)

	for _, center := range intersections {
		c := coord{center.x, center.y}
		if assigned[c] {
			continue
		}
		neighbors := neighbor4(c)

		ok := true
		for _, n := range neighbors {
			if assigned[n] {
				ok = false
				break
			}
			if _, filled := registry[n]; !filled {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		group := append([]coord{c}, neighbors[:]...)
		return group
	}
	return nil
}
