package placement

import (
	"fmt"
	"time"

	"github.com/crossplay/wordgrid/internal/grapheme"
)

// GeneratePuzzle places clues into a width x height grid, seeded and
// deterministic in (clues, width, height, seed): two runs with identical
// inputs produce bit-identical output (§5). retryAttempts <= 0 uses
// DefaultRetryAttempts.
func GeneratePuzzle(clues []*grapheme.ClueItem, width, height int, seed *int64, retryAttempts int) Result {
	return generatePuzzle(clues, width, height, seed, retryAttempts, nil)
}

// GeneratePuzzleWithProgress behaves exactly like GeneratePuzzle but calls
// progress after every attempt (the first full-order attempt and every
// shuffled retry) with the attempt number and the fill ratio achieved so
// far. progress may be nil. This only feeds an observability channel; it
// never changes placement decisions (§5).
func GeneratePuzzleWithProgress(clues []*grapheme.ClueItem, width, height int, seed *int64, retryAttempts int, progress func(attempt int, fillRatio float64)) Result {
	return generatePuzzle(clues, width, height, seed, retryAttempts, progress)
}

func generatePuzzle(clues []*grapheme.ClueItem, width, height int, seed *int64, retryAttempts int, progress func(attempt int, fillRatio float64)) Result {
	if retryAttempts <= 0 {
		retryAttempts = DefaultRetryAttempts
	}

	var resolvedSeed int64
	if seed != nil {
		resolvedSeed = *seed
	} else {
		resolvedSeed = time.Now().UnixNano()
	}

	candidates := intersectionScores(clues)
	sortByPlacementOrder(candidates)
	sorted := make([]*grapheme.ClueItem, len(candidates))
	for i, c := range candidates {
		sorted[i] = c.item
	}

	rng := NewPRNG(resolvedSeed)
	best := runAttempt(sorted, width, height, rng, false)
	attempts := 1
	if progress != nil {
		progress(attempts, best.fillRatio(len(clues)))
	}

	for attempts < retryAttempts+1 && best.fillRatio(len(clues)) < AcceptableFillThreshold {
		retrySeed := resolvedSeed + int64(attempts)
		retryRNG := NewPRNG(retrySeed)

		shuffled := make([]*grapheme.ClueItem, len(sorted))
		copy(shuffled, sorted)
		retryRNG.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		candidate := runAttempt(shuffled, width, height, retryRNG, true)
		if len(candidate.placements) > len(best.placements) {
			best = candidate
		}
		attempts++
		if progress != nil {
			progress(attempts, best.fillRatio(len(clues)))
		}
	}

	croppedGrid, croppedPlacements := crop(width, height, best.placements)
	outWidth, outHeight := width, height
	if len(croppedPlacements) > 0 {
		outWidth, outHeight = croppedGrid.Width, croppedGrid.Height
	}

	stats := Stats{
		Requested: len(clues),
		Placed:    len(best.placements),
		Unplaced:  len(best.unplaced),
	}
	if stats.Requested > 0 {
		stats.FillRatio = float64(stats.Placed) / float64(stats.Requested)
	}

	result := Result{
		Grid:       croppedGrid,
		Placements: croppedPlacements,
		Unplaced:   best.unplaced,
		Width:      outWidth,
		Height:     outHeight,
		Stats:      stats,
	}

	if stats.FillRatio < LowFillThreshold {
		result.Warning = fmt.Sprintf("Grid too constrained: only %d/%d words placed (%.0f%%).",
			stats.Placed, stats.Requested, stats.FillRatio*100)
	}

	return result
}
