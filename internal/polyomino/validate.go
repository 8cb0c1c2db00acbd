package polyomino

// validatePieces computes the §4.4 advisory validation flags. pentominoIDs
// names the pieces legitimately produced by the cross-pentomino path;
// any other 5-cell piece is an unauthorized pentomino.
func validatePieces(pieces []Piece, minPieceSize, maxPieceSize int, pentominoIDs map[string]bool) Validation {
	var v Validation
	fiveCellCount := 0

	for _, p := range pieces {
		size := len(p.Cells)
		switch {
		case size < minPieceSize:
			v.UndersizedPieces = append(v.UndersizedPieces, p.ID)
		case size > maxPieceSize && size != 5:
			v.OversizedNonPentomino = append(v.OversizedNonPentomino, p.ID)
		}

		if size == 5 {
			fiveCellCount++
			if !pentominoIDs[p.ID] {
				v.UnauthorizedPentomino = append(v.UnauthorizedPentomino, p.ID)
			}
		}
	}

	v.MultiplePentominoes = fiveCellCount > 1
	return v
}
