package polyomino

import "github.com/crossplay/wordgrid/internal/placement"

// Generate decomposes placements into Bonza-style polyomino pieces
// (§4.4): cell registry, optional privileged cross pentomino, greedy BFS
// partition, a merge pass to eliminate undersized pieces, piece
// construction, and advisory validation.
func Generate(placements []placement.Placement, width, height int, theme string, cfg Config) Puzzle {
	if cfg.MinPieceSize <= 0 {
		cfg.MinPieceSize = DefaultConfig().MinPieceSize
	}
	if cfg.MaxPieceSize <= 0 {
		cfg.MaxPieceSize = DefaultConfig().MaxPieceSize
	}

	registry := buildRegistry(placements)
	assigned := make(map[coord]bool, len(registry))

	var groups [][]coord
	pentominoIDs := make(map[string]bool)

	if cfg.AllowSingleCrossPentomino {
		if group := findCrossPentomino(registry, assigned); group != nil {
			for _, c := range group {
				assigned[c] = true
			}
			groups = append(groups, group)
			pentominoIDs["piece_0"] = true
		}
	}

	groups = append(groups, partition(registry, assigned, cfg.MaxPieceSize)...)
	groups = mergeUndersized(groups, registry, cfg.MinPieceSize, cfg.MaxPieceSize)

	pieces := buildPieces(groups, registry)
	validation := validatePieces(pieces, cfg.MinPieceSize, cfg.MaxPieceSize, pentominoIDs)

	return Puzzle{
		Theme:      theme,
		GridWidth:  width,
		GridHeight: height,
		Pieces:     pieces,
		Validation: validation,
	}
}
