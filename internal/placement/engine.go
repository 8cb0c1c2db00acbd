package placement

import (
	"math"

	"github.com/crossplay/wordgrid/internal/grapheme"
)

// DefaultRetryAttempts is the §4.3 default for generate_puzzle's
// retry_attempts parameter.
const DefaultRetryAttempts = 20

// LowFillThreshold and AcceptableFillThreshold are the §4.3.6 retry-loop
// thresholds: retries continue while fill_ratio is below the acceptable
// threshold, and a low-fill warning is attached if it never clears the
// lower one.
const (
	LowFillThreshold        = 0.4
	AcceptableFillThreshold = 0.6
)

// attemptOutcome is one full placement pass (first word + lookahead over
// the rest of the sorted bag).
type attemptOutcome struct {
	grid       *Grid
	placements []Placement
	unplaced   []*grapheme.ClueItem
}

func (o attemptOutcome) fillRatio(requested int) float64 {
	if requested == 0 {
		return 0
	}
	return float64(len(o.placements)) / float64(requested)
}

// runAttempt places as many of the sorted items as it can into a fresh
// width x height grid. retryMode switches tie-breaking from the
// deterministic defaults (first orientation found, distance to center) to
// PRNG-drawn rank, per §4.3.2/§4.3.3.
func runAttempt(sortedItems []*grapheme.ClueItem, width, height int, rng *PRNG, retryMode bool) attemptOutcome {
	g := NewGrid(width, height)
	var starts []StartRecord
	var placements []Placement
	var unplaced []*grapheme.ClueItem
	nextID := 1

	if len(sortedItems) == 0 {
		return attemptOutcome{grid: g}
	}

	first := sortedItems[0]
	if p := placeFirstWord(g, first, width, height, &starts, rng, retryMode); p != nil {
		commit(g, p, &starts, &placements, nextID)
		nextID++
	} else {
		unplaced = append(unplaced, first)
	}

	for i := 1; i < len(sortedItems); i++ {
		current := sortedItems[i]
		candidates := intersectionCandidates(current, placements)

		var valid []*Placement
		for _, cand := range candidates {
			if ok, _ := validate(g, cand, starts, autoRules); ok {
				valid = append(valid, cand)
			}
		}

		if len(valid) == 0 {
			unplaced = append(unplaced, current)
			continue
		}

		remaining := sortedItems[i+1:]
		_ = remainingScore(current, remaining) // stability lever, see scoring.go

		winner := pickWinner(valid, width, height, rng, retryMode)
		commit(g, winner, &starts, &placements, nextID)
		nextID++
	}

	return attemptOutcome{grid: g, placements: placements, unplaced: unplaced}
}

// placeFirstWord centers item and tries both orientations, keeping only
// the ones that validate (§4.3.2). ACROSS is tried before DOWN by
// default; in retry mode the try order is PRNG-shuffled so the tie break
// becomes a drawn rank.
func placeFirstWord(g *Grid, item *grapheme.ClueItem, width, height int, starts *[]StartRecord, rng *PRNG, retryMode bool) *Placement {
	length := len(item.Graphemes)
	order := []Direction{ACROSS, DOWN}
	if retryMode {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	for _, dir := range order {
		var startX, startY int
		if dir == ACROSS {
			startX, startY = (width-length)/2, height/2
		} else {
			startX, startY = width/2, (height-length)/2
		}

		p := &Placement{Item: item, StartX: startX, StartY: startY, Direction: dir}
		if ok, _ := validate(g, p, *starts, autoRules); ok {
			return p
		}
	}
	return nil
}

// intersectionCandidates enumerates every prospective placement of item
// against every already-placed word, one per shared-grapheme pair
// (§4.3.3 step 1).
func intersectionCandidates(item *grapheme.ClueItem, placed []Placement) []*Placement {
	var candidates []*Placement
	for _, other := range placed {
		pairs := grapheme.FindCommonGraphemes(item.Graphemes, other.Item.Graphemes)
		perp := ACROSS
		if other.Direction == ACROSS {
			perp = DOWN
		}

		for _, pair := range pairs {
			cx, cy := other.cell(pair.J)
			var startX, startY int
			if perp == ACROSS {
				startX, startY = cx-pair.I, cy
			} else {
				startX, startY = cx, cy-pair.I
			}
			candidates = append(candidates, &Placement{
				Item:      item,
				StartX:    startX,
				StartY:    startY,
				Direction: perp,
			})
		}
	}
	return candidates
}

// pickWinner selects among valid placements of the same word. The
// lookahead score is identical across all of them (it depends only on the
// word, not its position), so the real discriminator is distance to
// center by default, or PRNG rank during a retry pass (§4.3.3 step 4).
func pickWinner(valid []*Placement, width, height int, rng *PRNG, retryMode bool) *Placement {
	if retryMode {
		return valid[rng.Intn(len(valid))]
	}

	best := valid[0]
	bestDist := distToCenter(best, width, height)
	for _, cand := range valid[1:] {
		d := distToCenter(cand, width, height)
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

func distToCenter(p *Placement, width, height int) float64 {
	length := float64(len(p.Item.Graphemes))
	cx := float64(p.StartX) + length/2
	cy := float64(p.StartY) + length/2
	return math.Abs(cx-float64(width)/2) + math.Abs(cy-float64(height)/2)
}
