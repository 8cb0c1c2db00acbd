package cmd

import (
	"fmt"
	"sort"

	"github.com/crossplay/wordgrid/internal/store"
	"github.com/spf13/cobra"
)

var statsDir string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report fill ratio and piece-size statistics for a stored bundle",
	Long: `Read a persisted artifact bundle's summary.json (and polyomino.json,
if present) and report the fill ratio, placed/unplaced word counts, and
polyomino piece-size distribution.

Example:
  crossgen stats --dir data/crosswords/cw_abc123def456`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDir, "dir", "d", "", "path to an artifact bundle directory (required)")
	statsCmd.MarkFlagRequired("dir")
}

func runStats(cmd *cobra.Command, args []string) error {
	if !store.Exists(statsDir) {
		return fmt.Errorf("%s does not look like a bundle directory (no meta.json)", statsDir)
	}

	meta, err := store.ReadMeta(statsDir)
	if err != nil {
		return fmt.Errorf("failed to read meta.json: %w", err)
	}
	summary, err := store.ReadSummary(statsDir)
	if err != nil {
		return fmt.Errorf("failed to read summary.json: %w", err)
	}

	fmt.Printf("\nBundle Statistics\n")
	fmt.Printf("=================\n")
	fmt.Printf("Directory: %s\n", statsDir)
	fmt.Printf("Theme:     %s\n", meta.Theme)
	fmt.Printf("Mode:      %s\n", meta.Mode)
	fmt.Printf("Grid size: %s\n\n", meta.GridSize)

	fmt.Println("Fill:")
	fmt.Println("-----")
	fmt.Printf("  Requested: %d\n", summary.RequestedCount)
	fmt.Printf("  Placed:    %d\n", summary.PlacedCount)
	fmt.Printf("  Unplaced:  %d\n", summary.UnplacedCount)
	fmt.Printf("  Filtered:  %d\n", summary.FilteredCount)
	fmt.Printf("  FillRatio: %.1f%%\n", summary.FillRatio*100)
	if summary.Warning != "" {
		fmt.Printf("  Warning:   %s\n", summary.Warning)
	}
	fmt.Println()

	poly, err := store.ReadPolyomino(statsDir)
	if err != nil {
		fmt.Println("Polyomino: not generated for this bundle")
		return nil
	}
	displayPolyominoStats(poly)
	return nil
}

func displayPolyominoStats(poly store.Polyomino) {
	fmt.Println("Polyomino Pieces:")
	fmt.Println("-----------------")
	fmt.Printf("  Total pieces: %d\n", len(poly.Pieces))

	sizes := make(map[int]int)
	for _, p := range poly.Pieces {
		sizes[len(p.Cells)]++
	}

	distinct := make([]int, 0, len(sizes))
	for size := range sizes {
		distinct = append(distinct, size)
	}
	sort.Ints(distinct)

	for _, size := range distinct {
		fmt.Printf("  %2d cells: %d piece(s)\n", size, sizes[size])
	}
	fmt.Println()
}
