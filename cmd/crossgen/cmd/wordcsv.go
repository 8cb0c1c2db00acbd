package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
)

// wordRow is one row of a words.csv file: word,clue.
type wordRow struct {
	Word string
	Clue string
}

func readWordsCSV(path string) ([]wordRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rows := make([]wordRow, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		rows = append(rows, wordRow{Word: rec[0], Clue: rec[1]})
	}
	return rows, nil
}

// placementRow is one row of a placements.csv file for manual_advanced
// mode: word,clue,row,col,direction.
type placementRow struct {
	Word      string
	Clue      string
	Row       int
	Col       int
	Direction string
}

func readPlacementsCSV(path string) ([]placementRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rows := make([]placementRow, 0, len(records))
	for i, rec := range records {
		if len(rec) < 5 {
			continue
		}
		var row, col int
		if _, err := fmt.Sscanf(rec[2], "%d", &row); err != nil {
			return nil, fmt.Errorf("row %d: invalid row value %q", i+1, rec[2])
		}
		if _, err := fmt.Sscanf(rec[3], "%d", &col); err != nil {
			return nil, fmt.Errorf("row %d: invalid col value %q", i+1, rec[3])
		}
		rows = append(rows, placementRow{Word: rec[0], Clue: rec[1], Row: row, Col: col, Direction: rec[4]})
	}
	return rows, nil
}
