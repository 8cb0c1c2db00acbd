package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/crossplay/wordgrid/internal/grapheme"
	"github.com/crossplay/wordgrid/internal/store"
	"github.com/spf13/cobra"
)

var (
	convertIn  string
	convertOut string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Re-serialize a stored grid to its embeddable payload",
	Long: `Read a persisted artifact bundle's meta.json, placements.json and
candidates.json (from the directory holding the --in file) and re-emit the URL-encoded query payload the embeddable widget consumes
(§4.5), without re-running placement.

Example:
  crossgen convert --in data/crosswords/cw_abc123def456/grid.json --out payload.txt`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertIn, "in", "", "path to a bundle's grid.json (required)")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output payload file (required)")
	convertCmd.MarkFlagRequired("in")
	convertCmd.MarkFlagRequired("out")
}

func runConvert(cmd *cobra.Command, args []string) error {
	dir := filepath.Dir(convertIn)

	meta, err := store.ReadMeta(dir)
	if err != nil {
		return fmt.Errorf("failed to read meta.json in %s: %w", dir, err)
	}
	placements, err := store.ReadPlacements(dir)
	if err != nil {
		return fmt.Errorf("failed to read placements.json in %s: %w", dir, err)
	}
	candidates, err := store.ReadCandidates(dir)
	if err != nil {
		return fmt.Errorf("failed to read candidates.json in %s: %w", dir, err)
	}

	clueByAnswer := make(map[string]string, len(candidates))
	for _, c := range candidates {
		clueByAnswer[c.Answer] = c.Clue
	}

	query := buildPayloadQuery(placements, clueByAnswer, meta.Language)

	if err := os.WriteFile(convertOut, []byte(query), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", convertOut, err)
	}

	if verbosity > 0 {
		fmt.Printf("Converted %s (%d placed, %d unplaced) -> %s\n", dir, len(placements.Placed), len(placements.Unplaced), convertOut)
	}
	return nil
}

// buildPayloadQuery rebuilds the ans{n}=...&question{n}=... payload from
// a stored placements.json, matching internal/serialize's query grammar.
// Only placed words are carried: the persisted placements.json already
// separates placed from unplaced.
func buildPayloadQuery(placements store.Placements, clueByAnswer map[string]string, locale string) string {
	pairs := make([]string, 0, len(placements.Placed)*2+1)
	for i, p := range placements.Placed {
		encoded := grapheme.EncodeAnswer(p.Answer, locale)
		pairs = append(pairs, fmt.Sprintf("ans%d=%s", i+1, url.QueryEscape(encoded)))
		pairs = append(pairs, fmt.Sprintf("question%d=%s", i+1, url.QueryEscape(clueByAnswer[p.Answer])))
	}
	pairs = append(pairs, "removeUnplacedWords=true")
	return strings.Join(pairs, "&")
}
