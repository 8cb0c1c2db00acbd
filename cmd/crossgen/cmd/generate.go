package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/crossplay/wordgrid/internal/grapheme"
	"github.com/crossplay/wordgrid/internal/placement"
	"github.com/crossplay/wordgrid/internal/polyomino"
	"github.com/crossplay/wordgrid/internal/serialize"
	"github.com/crossplay/wordgrid/internal/store"
	"github.com/crossplay/wordgrid/internal/suitability"
	"github.com/spf13/cobra"
)

var (
	genWords     string
	genWidth     int
	genHeight    int
	genSeed      int64
	genSeedSet   bool
	genPolyomino bool
	genLocale    string
	genOutDir    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a crossword from a word list",
	Long: `Generate a crossword puzzle from a words.csv file (word,clue per line)
using the same suitability filter and placement engine the server's
generation endpoint uses, then persist it as an artifact bundle.

Example:
  crossgen generate --words words.csv --width 18 --height 18 --seed 42 --polyomino`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genWords, "words", "w", "", "path to words.csv (word,clue per line, required)")
	generateCmd.Flags().IntVar(&genWidth, "width", 18, "grid width")
	generateCmd.Flags().IntVar(&genHeight, "height", 18, "grid height")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "PRNG seed (random if omitted)")
	generateCmd.Flags().BoolVar(&genPolyomino, "polyomino", false, "decompose the filled grid into polyomino pieces")
	generateCmd.Flags().StringVar(&genLocale, "locale", "en", "BCP-47 content language for grapheme segmentation")
	generateCmd.Flags().StringVarP(&genOutDir, "output", "o", "", "artifact output directory (default: store.Root()/<generated id>)")
	generateCmd.MarkFlagRequired("words")

	generateCmd.PreRun = func(cmd *cobra.Command, args []string) {
		genSeedSet = cmd.Flags().Changed("seed")
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rows, err := readWordsCSV(genWords)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no words found in %s", genWords)
	}

	if verbosity > 0 {
		fmt.Printf("Loaded %d words from %s\n", len(rows), genWords)
	}

	items := make([]*grapheme.ClueItem, 0, len(rows))
	for _, r := range rows {
		item, err := grapheme.NewClueItem(r.Word, r.Clue, genLocale)
		if err != nil {
			if verbosity > 0 {
				fmt.Printf("skipping %q: %v\n", r.Word, err)
			}
			continue
		}
		items = append(items, item)
	}

	var seed *int64
	if genSeedSet {
		seed = &genSeed
	}

	filtered := suitability.Filter(items, genWidth, genHeight)
	if filtered.Warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", filtered.Warning)
	}
	if len(filtered.Kept) == 0 {
		return fmt.Errorf("no words passed the suitability filter")
	}

	result := placement.GeneratePuzzle(filtered.Kept, genWidth, genHeight, seed, 0)
	if result.Warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", result.Warning)
	}

	removeUnplaced := true
	out := serialize.Serialize(result, removeUnplaced)
	fmt.Printf("Placed %d/%d words, fill ratio %.0f%%\n", result.Stats.Placed, result.Stats.Requested, result.Stats.FillRatio*100)

	id := genOutDir
	if id == "" {
		id = store.Dir(store.Root(), fmt.Sprintf("cli-%d", os.Getpid()))
	}

	theme := strings.TrimSuffix(filepath.Base(genWords), filepath.Ext(genWords))

	placements, grid := store.FromResult(result)
	bundle := store.Bundle{
		Meta: store.Meta{
			Theme: theme, Language: genLocale,
			GridSize: store.GridSizeString(result.Width, result.Height),
			Mode:     "manual_basic", RequestedCount: len(items), CreatedAt: time.Now().UTC(),
		},
		Placements: placements,
		Grid:       grid,
		Summary: store.Summary{
			PlacedCount: result.Stats.Placed, UnplacedCount: result.Stats.Unplaced,
			RequestedCount: result.Stats.Requested, FillRatio: result.Stats.FillRatio, Warning: result.Warning,
		},
	}
	if genPolyomino {
		p := polyomino.Generate(result.Placements, result.Width, result.Height, theme, polyomino.DefaultConfig())
		poly := store.FromPolyomino(p)
		bundle.Polyomino = &poly
	}

	if err := store.WriteBundle(id, bundle); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	if err := os.WriteFile(filepath.Join(id, "payload.txt"), []byte(out.Query), 0644); err != nil {
		return fmt.Errorf("failed to write payload.txt: %w", err)
	}

	fmt.Printf("Wrote artifact bundle to %s\n", id)
	return nil
}
