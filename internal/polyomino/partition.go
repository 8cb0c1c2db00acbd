package polyomino

// partition greedily BFS-partitions every unassigned registry cell into
// groups no larger than maxPieceSize, always starting the next piece at
// the highest-seed-order remaining cell (§4.4 greedy BFS partition).
func partition(registry map[coord]*regCell, assigned map[coord]bool, maxPieceSize int) [][]coord {
	var groups [][]coord

	for {
		seed := nextSeed(registry, assigned)
		if seed == nil {
			break
		}

		group := bfsGroup(registry, assigned, coord{seed.x, seed.y}, maxPieceSize)
		groups = append(groups, group)
	}

	return groups
}

func nextSeed(registry map[coord]*regCell, assigned map[coord]bool) *regCell {
	var remaining []*regCell
	for c, cell := range registry {
		if !assigned[c] {
			remaining = append(remaining, cell)
		}
	}
	if len(remaining) == 0 {
		return nil
	}
	sortSeedOrder(remaining)
	return remaining[0]
}

func bfsGroup(registry map[coord]*regCell, assigned map[coord]bool, start coord, maxPieceSize int) []coord {
	queue := []coord{start}
	assigned[start] = true
	group := []coord{start}

	for len(queue) > 0 && len(group) < maxPieceSize {
		current := queue[0]
		queue = queue[1:]

		for _, n := range neighbor4(current) {
			if len(group) >= maxPieceSize {
				break
			}
			if assigned[n] {
				continue
			}
			if _, filled := registry[n]; !filled {
				continue
			}
			assigned[n] = true
			group = append(group, n)
			queue = append(queue, n)
		}
	}

	return group
}
