package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	metaFile       = "meta.json"
	geminiRawFile  = "gemini_raw.json"
	candidatesFile = "candidates.json"
	filteredFile   = "filtered.json"
	placementsFile = "placements.json"
	gridFile       = "grid.json"
	summaryFile    = "summary.json"
	polyominoFile  = "polyomino.json"
)

// Root resolves the artifact root per §6: DATA_DIR env override, falling
// back to the relative path data/crosswords, which resolves against the
// process's working directory; the repository root is not looked up.
func Root() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("data", "crosswords")
}

// Dir returns the directory a crossword's bundle lives in.
func Dir(root, crosswordID string) string {
	return filepath.Join(root, crosswordID)
}

// WriteBundle persists every file of b under dir, creating dir if needed.
// GeminiRaw and Polyomino are skipped when nil (AI-raw and polyomino
// decomposition are both optional, §6).
func WriteBundle(dir string, b Bundle) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create bundle directory: %w", err)
	}

	writes := []struct {
		name string
		v    interface{}
	}{
		{metaFile, b.Meta},
		{candidatesFile, b.Candidates},
		{filteredFile, b.Filtered},
		{placementsFile, b.Placements},
		{gridFile, b.Grid},
		{summaryFile, b.Summary},
	}
	if b.GeminiRaw != nil {
		writes = append(writes, struct {
			name string
			v    interface{}
		}{geminiRawFile, b.GeminiRaw})
	}
	if b.Polyomino != nil {
		writes = append(writes, struct {
			name string
			v    interface{}
		}{polyominoFile, b.Polyomino})
	}

	for _, w := range writes {
		if err := writeJSONAtomic(filepath.Join(dir, w.name), w.v); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummaryOnly writes just summary.json. Used for the best-effort
// summary write attempted on a generation failure (§7).
func WriteSummaryOnly(dir string, s Summary) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create bundle directory: %w", err)
	}
	return writeJSONAtomic(filepath.Join(dir, summaryFile), s)
}

// ReadSummary reads summary.json from dir. Used by the GetByID handler
// and the CLI's stats command.
func ReadSummary(dir string) (Summary, error) {
	var s Summary
	err := readJSON(filepath.Join(dir, summaryFile), &s)
	return s, err
}

// ReadMeta reads meta.json from dir.
func ReadMeta(dir string) (Meta, error) {
	var m Meta
	err := readJSON(filepath.Join(dir, metaFile), &m)
	return m, err
}

// ReadPlacements reads placements.json from dir. Used by the CLI's
// convert command.
func ReadPlacements(dir string) (Placements, error) {
	var p Placements
	err := readJSON(filepath.Join(dir, placementsFile), &p)
	return p, err
}

// ReadGrid reads grid.json from dir.
func ReadGrid(dir string) (Grid, error) {
	var g Grid
	err := readJSON(filepath.Join(dir, gridFile), &g)
	return g, err
}

// ReadCandidates reads candidates.json from dir. Used by the CLI's
// convert command to recover clue text, which placements.json does not
// carry.
func ReadCandidates(dir string) ([]Candidate, error) {
	var c []Candidate
	err := readJSON(filepath.Join(dir, candidatesFile), &c)
	return c, err
}

// ReadPolyomino reads polyomino.json from dir. Used by the CLI's stats
// command. Returns an error if the bundle was generated without the
// polyomino decomposition step.
func ReadPolyomino(dir string) (Polyomino, error) {
	var p Polyomino
	err := readJSON(filepath.Join(dir, polyominoFile), &p)
	return p, err
}

// Exists reports whether dir looks like a populated bundle (meta.json is
// present; every successful write starts with it).
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, metaFile))
	return err == nil
}
