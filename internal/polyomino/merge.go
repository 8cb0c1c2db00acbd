package polyomino

const maxMergePasses = 10

// mergeUndersized repeatedly absorbs pieces smaller than minPieceSize into
// an adjacent piece, preferring the smallest legal neighbor, until no pass
// makes progress or none remain undersized (§4.4 merge pass). Groups that
// cannot legally merge are left as-is for validation to flag later.
func mergeUndersized(groups [][]coord, registry map[coord]*regCell, minPieceSize, maxPieceSize int) [][]coord {
	alive := make([]bool, len(groups))
	for i := range alive {
		alive[i] = true
	}
	owner := make(map[coord]int, len(registry))
	for i, g := range groups {
		for _, c := range g {
			owner[c] = i
		}
	}

	mergeCap := maxPieceSize
	if mergeCap < 5 {
		mergeCap = 5
	}

	for pass := 0; pass < maxMergePasses; pass++ {
		undersized := undersizedOrder(groups, alive, minPieceSize)
		if len(undersized) == 0 {
			break
		}

		merged := false
		for _, idx := range undersized {
			if !alive[idx] || len(groups[idx]) >= minPieceSize {
				continue
			}

			target := bestMergeTarget(groups, alive, owner, registry, idx, mergeCap)
			if target == -1 {
				continue
			}

			for _, c := range groups[idx] {
				owner[c] = target
			}
			groups[target] = append(groups[target], groups[idx]...)
			groups[idx] = nil
			alive[idx] = false
			merged = true
		}

		if !merged {
			break
		}
	}

	var result [][]coord
	for i, g := range groups {
		if alive[i] && len(g) > 0 {
			result = append(result, g)
		}
	}
	return result
}

func undersizedOrder(groups [][]coord, alive []bool, minPieceSize int) []int {
	var idxs []int
	for i, g := range groups {
		if alive[i] && len(g) < minPieceSize {
			idxs = append(idxs, i)
		}
	}
	for i := 1; i < len(idxs); i++ {
		j := i
		for j > 0 && len(groups[idxs[j]]) < len(groups[idxs[j-1]]) {
			idxs[j-1], idxs[j] = idxs[j], idxs[j-1]
			j--
		}
	}
	return idxs
}

func bestMergeTarget(groups [][]coord, alive []bool, owner map[coord]int, registry map[coord]*regCell, idx, mergeCap int) int {
	best := -1
	bestSize := -1

	for _, c := range groups[idx] {
		for _, n := range neighbor4(c) {
			if _, filled := registry[n]; !filled {
				continue
			}
			neighborIdx, ok := owner[n]
			if !ok || neighborIdx == idx || !alive[neighborIdx] {
				continue
			}
			combined := len(groups[idx]) + len(groups[neighborIdx])
			if combined > mergeCap {
				continue
			}
			if best == -1 || len(groups[neighborIdx]) < bestSize {
				best = neighborIdx
				bestSize = len(groups[neighborIdx])
			}
		}
	}
	return best
}
