package placement

import "github.com/crossplay/wordgrid/internal/grapheme"

// validationRules controls which §4.3.4 rules are enforced. The automatic
// engine enforces all of them; manual_advanced mode (§4.3.8) skips strict
// side-adjacency and word-ends clearance because the caller authored the
// layout deliberately.
type validationRules struct {
	startCellCollision bool
	sideAdjacency      bool
	wordEndsClearance  bool
}

var autoRules = validationRules{startCellCollision: true, sideAdjacency: true, wordEndsClearance: true}
var manualRules = validationRules{}

// validationError names which §4.3.4 rule rejected a placement.
type validationError string

const (
	errOutOfBounds        validationError = "out of bounds"
	errStartCollision      validationError = "start-cell collision"
	errGraphemeMismatch    validationError = "grapheme mismatch at occupied cell"
	errSideAdjacency       validationError = "strict side-adjacency violation"
	errWordEndsClearance   validationError = "word-ends clearance violation"
)

// validate checks a prospective placement against the current grid and
// start-record history, per the rules selected.
func validate(g *Grid, p *Placement, starts []StartRecord, rules validationRules) (bool, validationError) {
	length := len(p.Item.Graphemes)

	// Bounds.
	for i := 0; i < length; i++ {
		x, y := p.cell(i)
		if !g.InBounds(x, y) {
			return false, errOutOfBounds
		}
	}

	// Start-cell collision.
	if rules.startCellCollision {
		first := p.Item.Graphemes[0]
		for _, sr := range starts {
			if sr.X == p.StartX && sr.Y == p.StartY {
				if sr.Direction == p.Direction || !grapheme.CompareGraphemes(sr.FirstGrapheme, first) {
					return false, errStartCollision
				}
			}
		}
	}

	// Per-cell occupancy / intersection agreement.
	for i := 0; i < length; i++ {
		x, y := p.cell(i)
		cell := g.At(x, y)
		if cell.Occupied() && !grapheme.CompareGraphemes(*cell.Grapheme, p.Item.Graphemes[i]) {
			return false, errGraphemeMismatch
		}
	}

	// Strict side-adjacency: non-intersection cells may not have filled
	// perpendicular neighbors.
	if rules.sideAdjacency {
		for i := 0; i < length; i++ {
			x, y := p.cell(i)
			cell := g.At(x, y)
			if cell.Occupied() {
				continue // this is an intersection cell, not subject to the rule
			}
			var n1x, n1y, n2x, n2y int
			if p.Direction == ACROSS {
				n1x, n1y = x, y-1
				n2x, n2y = x, y+1
			} else {
				n1x, n1y = x-1, y
				n2x, n2y = x+1, y
			}
			if n := g.At(n1x, n1y); n != nil && n.Occupied() {
				return false, errSideAdjacency
			}
			if n := g.At(n2x, n2y); n != nil && n.Occupied() {
				return false, errSideAdjacency
			}
		}
	}

	// Word-ends clearance: the cell before the start and after the end
	// must be empty.
	if rules.wordEndsClearance {
		var beforeX, beforeY, afterX, afterY int
		if p.Direction == ACROSS {
			beforeX, beforeY = p.StartX-1, p.StartY
			afterX, afterY = p.StartX+length, p.StartY
		} else {
			beforeX, beforeY = p.StartX, p.StartY-1
			afterX, afterY = p.StartX, p.StartY+length
		}
		if n := g.At(beforeX, beforeY); n != nil && n.Occupied() {
			return false, errWordEndsClearance
		}
		if n := g.At(afterX, afterY); n != nil && n.Occupied() {
			return false, errWordEndsClearance
		}
	}

	return true, ""
}
