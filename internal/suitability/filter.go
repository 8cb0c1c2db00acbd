// Package suitability scores clue items by how well they can interlock
// with the rest of the bag and drops the ones that would waste grid space.
package suitability

import (
	"fmt"

	"github.com/crossplay/wordgrid/internal/grapheme"
)

// Removed records a word dropped by the filter along with the reason.
type Removed struct {
	Item   *grapheme.ClueItem
	Reason string
}

// Result is the outcome of filtering a candidate bag against a target grid
// size.
type Result struct {
	Kept    []*grapheme.ClueItem
	Removed []Removed
	Warning string
}

// capForSize returns the step-function word-count cap for the smaller grid
// dimension s.
func capForSize(s int) int {
	switch {
	case s <= 7:
		return 8
	case s <= 10:
		return 12
	case s <= 15:
		return 20
	case s <= 20:
		return 30
	default:
		return 40
	}
}

// intersectionCount returns, for each item, the number of other items that
// share at least one grapheme with it.
func intersectionCount(items []*grapheme.ClueItem) []int {
	sets := make([]map[grapheme.Grapheme]bool, len(items))
	for i, item := range items {
		set := make(map[grapheme.Grapheme]bool, len(item.Graphemes))
		for _, g := range item.Graphemes {
			set[g] = true
		}
		sets[i] = set
	}

	counts := make([]int, len(items))
	for i := range items {
		for j := range items {
			if i == j {
				continue
			}
			shared := false
			for g := range sets[i] {
				if sets[j][g] {
					shared = true
					break
				}
			}
			if shared {
				counts[i]++
			}
		}
	}
	return counts
}

// Filter scores items by mutual grapheme intersection and drops:
//  1. isolated words longer than 3 graphemes (no possible intersection, not
//     short enough to be a harmless filler),
//  2. words that cannot fit the smaller grid dimension when the grid is
//     small (s <= 11),
//  3. the lowest-scoring excess once the survivor count exceeds the
//     size-dependent cap, ties broken by original (insertion) order.
func Filter(items []*grapheme.ClueItem, width, height int) Result {
	s := width
	if height < s {
		s = height
	}

	counts := intersectionCount(items)

	type scored = scoredItem

	var survivors []scored
	var removed []Removed

	for i, item := range items {
		if counts[i] == 0 && len(item.Graphemes) > 3 {
			removed = append(removed, Removed{Item: item, Reason: "no intersection with any other word"})
			continue
		}
		if s <= 11 && len(item.Graphemes) > s-2 {
			removed = append(removed, Removed{Item: item, Reason: fmt.Sprintf("too long to fit a %d grid dimension", s)})
			continue
		}
		survivors = append(survivors, scored{item: item, score: counts[i], index: i})
	}

	limit := capForSize(s)
	if len(survivors) > limit {
		// Stable sort by score descending; ties keep insertion order.
		stableSortByScoreDesc(survivors)
		for _, sc := range survivors[limit:] {
			removed = append(removed, Removed{Item: sc.item, Reason: "exceeds word-count cap for this grid size"})
		}
		survivors = survivors[:limit]
		// Restore insertion order among the kept words.
		stableSortByIndex(survivors)
	}

	kept := make([]*grapheme.ClueItem, len(survivors))
	for i, sc := range survivors {
		kept[i] = sc.item
	}

	result := Result{Kept: kept, Removed: removed}
	if len(removed) > 0 {
		result.Warning = fmt.Sprintf("%d word(s) removed due to low crossword suitability", len(removed))
	}
	return result
}

type scoredItem = struct {
	item  *grapheme.ClueItem
	score int
	index int
}

func stableSortByScoreDesc(items []scoredItem) {
	// Insertion sort: stable, and these lists are small (word-count capped).
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && items[j-1].score < items[j].score {
			items[j-1], items[j] = items[j], items[j-1]
			j--
		}
	}
}

func stableSortByIndex(items []scoredItem) {
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && items[j-1].index > items[j].index {
			items[j-1], items[j] = items[j], items[j-1]
			j--
		}
	}
}
