package placement

import "github.com/crossplay/wordgrid/internal/grapheme"

// candidate pairs a clue item with its precomputed intersection score.
type candidate struct {
	item  *grapheme.ClueItem
	score int
	set   map[grapheme.Grapheme]bool
}

func buildSet(item *grapheme.ClueItem) map[grapheme.Grapheme]bool {
	set := make(map[grapheme.Grapheme]bool, len(item.Graphemes))
	for _, g := range item.Graphemes {
		set[g] = true
	}
	return set
}

func sharesGrapheme(a, b map[grapheme.Grapheme]bool) bool {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	for g := range small {
		if big[g] {
			return true
		}
	}
	return false
}

// intersectionScores computes, for each item, the number of other items
// sharing at least one grapheme with it.
func intersectionScores(items []*grapheme.ClueItem) []candidate {
	candidates := make([]candidate, len(items))
	for i, item := range items {
		candidates[i] = candidate{item: item, set: buildSet(item)}
	}
	for i := range candidates {
		for j := range candidates {
			if i == j {
				continue
			}
			if sharesGrapheme(candidates[i].set, candidates[j].set) {
				candidates[i].score++
			}
		}
	}
	return candidates
}

// sortByPlacementOrder stable-sorts candidates by intersection_score DESC,
// then grapheme length DESC (§4.3.1).
func sortByPlacementOrder(candidates []candidate) {
	// Insertion sort: stable and small input sizes (word-count capped).
	for i := 1; i < len(candidates); i++ {
		j := i
		for j > 0 && less(candidates[j], candidates[j-1]) {
			candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
			j--
		}
	}
}

// less reports whether a should sort before b under the primary order.
func less(a, b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return len(a.item.Graphemes) > len(b.item.Graphemes)
}

// remainingScore counts how many items in remaining share a grapheme with
// current. This is recomputed fresh for every scoring call per §4.3.3/§9:
// the lookahead score is taken over *remaining* (not-yet-attempted) clues.
func remainingScore(current *grapheme.ClueItem, remaining []*grapheme.ClueItem) int {
	currentSet := buildSet(current)
	count := 0
	for _, other := range remaining {
		if sharesGrapheme(currentSet, buildSet(other)) {
			count++
		}
	}
	return count
}
