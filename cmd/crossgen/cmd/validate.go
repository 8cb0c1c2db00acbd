package cmd

import (
	"fmt"
	"os"

	"github.com/crossplay/wordgrid/internal/placement"
	"github.com/spf13/cobra"
)

var (
	validateWords      string
	validatePlacements string
	validateWidth      int
	validateHeight     int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a manually authored placement layout",
	Long: `Validate a fully caller-specified placement layout (manual_advanced
mode): every word's row, col, and direction are checked for bounds and
intersection agreement. Side-adjacency and word-end clearance are not
enforced in this mode — the caller owns the layout.

Example:
  crossgen validate --words words.csv --placements placements.csv --width 18 --height 18`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateWords, "words", "", "path to words.csv (word,clue per line, required)")
	validateCmd.Flags().StringVar(&validatePlacements, "placements", "", "path to placements.csv (word,clue,row,col,direction per line, required)")
	validateCmd.Flags().IntVar(&validateWidth, "width", 18, "grid width")
	validateCmd.Flags().IntVar(&validateHeight, "height", 18, "grid height")
	validateCmd.MarkFlagRequired("words")
	validateCmd.MarkFlagRequired("placements")
}

func runValidate(cmd *cobra.Command, args []string) error {
	rows, err := readPlacementsCSV(validatePlacements)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no placements found in %s", validatePlacements)
	}

	entries := make([]placement.ManualEntry, len(rows))
	for i, r := range rows {
		entries[i] = placement.ManualEntry{
			Answer: r.Word, Clue: r.Clue, Row: r.Row, Col: r.Col,
			Direction: r.Direction, Locale: "en",
		}
	}

	_, errs := placement.GenerateManualAdvanced(entries, validateWidth, validateHeight)
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "INVALID:")
		fmt.Fprintln(os.Stderr, placement.FormatManualErrors(errs))
		os.Exit(1)
	}

	fmt.Printf("VALID: %d placements, %dx%d grid\n", len(entries), validateWidth, validateHeight)
	return nil
}
