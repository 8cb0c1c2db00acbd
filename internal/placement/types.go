// Package placement implements the seeded, deterministic crossword
// placement engine: it sorts candidate words by connectivity, places them
// so they interlock at shared graphemes, enforces strict adjacency and
// boundary rules, optionally retries with shuffled orderings, and crops
// the result to its tight bounding box.
package placement

import "github.com/crossplay/wordgrid/internal/grapheme"

// Direction generalizes the teacher's grid.Direction from single-rune
// entries to grapheme entries; ACROSS/DOWN keep the same meaning.
type Direction int

const (
	ACROSS Direction = iota
	DOWN
)

func (d Direction) String() string {
	switch d {
	case ACROSS:
		return "across"
	case DOWN:
		return "down"
	default:
		return "unknown"
	}
}

// Cell is one grid square. An empty cell has a nil Grapheme.
type Cell struct {
	Grapheme *grapheme.Grapheme
	WordIDs  []int
}

// Occupied reports whether the cell holds a grapheme.
func (c *Cell) Occupied() bool {
	return c.Grapheme != nil
}

// Grid is a rectangular 2-D array of cells, addressed (x=col, y=row).
type Grid struct {
	Width, Height int
	Cells         [][]Cell // [y][x]
}

// NewGrid allocates an empty width x height grid.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns a pointer to the cell at (x, y), or nil if out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Cells[y][x]
}

// Placement is a single committed (or attempted) word placement.
type Placement struct {
	WordID    int
	Item      *grapheme.ClueItem
	StartX    int
	StartY    int
	Direction Direction
	Placed    bool
}

// cell returns the (x, y) of the i-th grapheme of this placement.
func (p *Placement) cell(i int) (int, int) {
	if p.Direction == ACROSS {
		return p.StartX + i, p.StartY
	}
	return p.StartX, p.StartY + i
}

// StartRecord tracks a successful start cell for start-cell-collision
// checks (§4.3.4).
type StartRecord struct {
	X, Y         int
	Direction    Direction
	FirstGrapheme grapheme.Grapheme
}

// Stats summarizes a generation run.
type Stats struct {
	Requested int
	Placed    int
	Unplaced  int
	FillRatio float64
}

// Result is the outcome of a full generation run.
type Result struct {
	Grid       *Grid
	Placements []Placement // placed words first, in placement order
	Unplaced   []*grapheme.ClueItem
	Width      int
	Height     int
	Warning    string
	Stats      Stats
}
