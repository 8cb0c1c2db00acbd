// Package store persists the per-crossword artifact bundle: eight named
// JSON files under a directory named by the crossword id, each written
// atomically via a temp-file-then-rename so a reader never observes a
// partially written file (§6).
package store

import "time"

// Meta is meta.json's contents.
type Meta struct {
	ID             string                 `json:"id"`
	Theme          string                 `json:"theme"`
	Language       string                 `json:"language"`
	GridSize       string                 `json:"gridSize"` // "WxH"
	RequestedCount int                    `json:"requestedCount"`
	CreatedAt      time.Time              `json:"createdAt"`
	UserID         string                 `json:"userId,omitempty"`
	Mode           string                 `json:"mode"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// GeminiRaw is gemini_raw.json's contents, written only in AI mode.
type GeminiRaw struct {
	Prompt      string    `json:"prompt"`
	Model       string    `json:"model"`
	RawResponse string    `json:"rawResponse"`
	Timestamp   time.Time `json:"timestamp"`
}

// Candidate is one entry of candidates.json.
type Candidate struct {
	Answer    string   `json:"answer"`
	Graphemes []string `json:"graphemes"`
	Clue      string   `json:"clue"`
}

// RemovedCandidate is one entry of filtered.json's "removed" list.
type RemovedCandidate struct {
	Answer string `json:"answer"`
	Reason string `json:"reason"`
}

// Filtered is filtered.json's contents.
type Filtered struct {
	Kept    []Candidate        `json:"kept"`
	Removed []RemovedCandidate `json:"removed"`
}

// PlacedWord is one entry of placements.json's "placed" list.
type PlacedWord struct {
	Answer    string `json:"answer"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

// UnplacedWord is one entry of placements.json's "unplaced" list.
type UnplacedWord struct {
	Answer string `json:"answer"`
	Reason string `json:"reason"`
}

// Placements is placements.json's contents.
type Placements struct {
	Placed   []PlacedWord   `json:"placed"`
	Unplaced []UnplacedWord `json:"unplaced"`
}

// GridCell is one cell of grid.json's "cells" array.
type GridCell struct {
	G *string `json:"g"`
}

// Grid is grid.json's contents.
type Grid struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Cells  [][]GridCell `json:"cells"`
}

// Summary is summary.json's contents.
type Summary struct {
	Mode           string  `json:"mode"`
	PlacedCount    int     `json:"placedCount"`
	UnplacedCount  int     `json:"unplacedCount"`
	FilteredCount  int     `json:"filteredCount"`
	RequestedCount int     `json:"requestedCount"`
	FillRatio      float64 `json:"fillRatio"`
	Warning        string  `json:"warning,omitempty"`
}

// PolyominoCell is one cell of a polyomino.json piece.
type PolyominoCell struct {
	RelX    int    `json:"relX"`
	RelY    int    `json:"relY"`
	Letter  string `json:"letter"`
	BlockID int    `json:"blockId"`
	Node    [4]int `json:"node"` // up, right, down, left
}

// PolyominoPiece is one piece of polyomino.json.
type PolyominoPiece struct {
	ID        string          `json:"id"`
	CorrectX  int             `json:"correctX"`
	CorrectY  int             `json:"correctY"`
	Cells     []PolyominoCell `json:"cells"`
}

// Polyomino is polyomino.json's contents, written only when the request
// opted into polyomino decomposition.
type Polyomino struct {
	Theme      string           `json:"theme"`
	GridWidth  int              `json:"gridWidth"`
	GridHeight int              `json:"gridHeight"`
	Pieces     []PolyominoPiece `json:"pieces"`
}

// Bundle is every file of one crossword's artifact bundle. GeminiRaw and
// Polyomino are pointers because they are optional.
type Bundle struct {
	Meta       Meta
	GeminiRaw  *GeminiRaw
	Candidates []Candidate
	Filtered   Filtered
	Placements Placements
	Grid       Grid
	Summary    Summary
	Polyomino  *Polyomino
}
