// Package serialize converts a placement result into the boundary-facing
// shapes a client needs: the URL-query payload consumed by the embeddable
// widget, a display grid, structured placed/unplaced lists, and stats
// (§4.5).
package serialize

// WordEntry describes one placed or unplaced word in the output list.
type WordEntry struct {
	Number        int    `json:"number"`
	Answer        string `json:"answer"`
	Clue          string `json:"clue"`
	StartX        int    `json:"start_x,omitempty"`
	StartY        int    `json:"start_y,omitempty"`
	Direction     string `json:"direction,omitempty"`
	GraphemeCount int    `json:"grapheme_count"`
}

// Stats summarizes a generation run for the client.
type Stats struct {
	Requested int     `json:"requested"`
	Placed    int     `json:"placed"`
	Unplaced  int     `json:"unplaced"`
	FillRatio float64 `json:"fill_ratio"`
}

// Output is the full serialized form of a puzzle.
type Output struct {
	Query    string      `json:"query"`
	Grid     [][]*string `json:"grid"` // nil entry = empty cell
	Placed   []WordEntry `json:"placed"`
	Unplaced []WordEntry `json:"unplaced"`
	Stats    Stats       `json:"stats"`
}
