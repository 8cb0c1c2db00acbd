package placement

import (
	"testing"

	"github.com/crossplay/wordgrid/internal/grapheme"
)

func mustItem(t *testing.T, answer, clue, locale string) *grapheme.ClueItem {
	t.Helper()
	item, err := grapheme.NewClueItem(answer, clue, locale)
	if err != nil {
		t.Fatalf("NewClueItem(%q): %v", answer, err)
	}
	return item
}

func seed(n int64) *int64 { return &n }

func itemsOf(items ...*grapheme.ClueItem) []*grapheme.ClueItem { return items }

func TestGeneratePuzzle_SingleWord(t *testing.T) {
	clues := []*grapheme.ClueItem{mustItem(t, "HELLO", "A greeting", "en-US")}
	result := GeneratePuzzle(clues, 15, 15, seed(42), 0)

	if result.Stats.Placed != 1 {
		t.Fatalf("expected 1 placed, got %d", result.Stats.Placed)
	}
	if result.Width != 5 || result.Height != 1 {
		t.Fatalf("expected 5x1 grid after crop, got %dx%d", result.Width, result.Height)
	}
	if result.Placements[0].Direction != ACROSS {
		t.Fatalf("expected ACROSS, got %s", result.Placements[0].Direction)
	}
	if result.Placements[0].WordID != 1 {
		t.Fatalf("expected word_id 1, got %d", result.Placements[0].WordID)
	}
}

func TestGeneratePuzzle_TwoCrossingWords(t *testing.T) {
	clues := []*grapheme.ClueItem{
		mustItem(t, "HELLO", "A greeting", "en-US"),
		mustItem(t, "HELP", "Assistance", "en-US"),
	}
	result := GeneratePuzzle(clues, 15, 15, seed(42), 0)

	if result.Stats.Placed != 2 {
		t.Fatalf("expected both words placed, got %d", result.Stats.Placed)
	}

	shared := false
	for y := 0; y < result.Height; y++ {
		for x := 0; x < result.Width; x++ {
			cell := result.Grid.At(x, y)
			if cell.Occupied() && len(cell.WordIDs) > 1 {
				shared = true
			}
		}
	}
	if !shared {
		t.Fatal("expected at least one shared intersection cell")
	}
}

func TestGeneratePuzzle_UnreachableWord(t *testing.T) {
	clues := []*grapheme.ClueItem{
		mustItem(t, "HELLO", "A greeting", "en-US"),
		mustItem(t, "XYZ", "Unrelated", "en-US"),
	}
	result := GeneratePuzzle(clues, 15, 15, seed(42), 0)

	if result.Stats.Placed != 1 || result.Stats.Unplaced != 1 {
		t.Fatalf("expected 1 placed / 1 unplaced, got placed=%d unplaced=%d", result.Stats.Placed, result.Stats.Unplaced)
	}
	if result.Unplaced[0].Answer != "XYZ" {
		t.Fatalf("expected XYZ unplaced, got %q", result.Unplaced[0].Answer)
	}
}

func TestGeneratePuzzle_DeterministicRerun(t *testing.T) {
	build := func() []*grapheme.ClueItem {
		return []*grapheme.ClueItem{
			mustItem(t, "CROSSWORD", "Grid puzzle", "en-US"),
			mustItem(t, "COMPUTER", "Calculating machine", "en-US"),
			mustItem(t, "WORD", "Unit of language", "en-US"),
		}
	}

	first := GeneratePuzzle(build(), 20, 20, seed(12345), 0)
	second := GeneratePuzzle(build(), 20, 20, seed(12345), 0)

	if len(first.Placements) != len(second.Placements) {
		t.Fatalf("placement counts differ: %d vs %d", len(first.Placements), len(second.Placements))
	}
	for i := range first.Placements {
		a, b := first.Placements[i], second.Placements[i]
		if a.Item.Answer != b.Item.Answer || a.StartX != b.StartX || a.StartY != b.StartY || a.Direction != b.Direction {
			t.Fatalf("placement %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestGeneratePuzzle_OversizeWord(t *testing.T) {
	clues := []*grapheme.ClueItem{
		mustItem(t, "CONSTANTINOPLE", "Long word", "en-US"),
	}
	result := GeneratePuzzle(clues, 10, 10, seed(1), 0)

	if result.Stats.Placed != 0 || result.Stats.Unplaced != 1 {
		t.Fatalf("expected 0 placed / 1 unplaced, got placed=%d unplaced=%d", result.Stats.Placed, result.Stats.Unplaced)
	}
}

func TestGeneratePuzzle_HindiRoundTrip(t *testing.T) {
	clues := []*grapheme.ClueItem{mustItem(t, "नमस्ते", "greeting", "hi-IN")}
	result := GeneratePuzzle(clues, 20, 20, seed(7), 0)

	if result.Stats.Placed != 1 {
		t.Fatalf("expected 1 placed, got %d", result.Stats.Placed)
	}
	placed := result.Placements[0]
	length := len(placed.Item.Graphemes)
	if placed.Direction == ACROSS && result.Width != length {
		t.Fatalf("expected cropped width to equal grapheme count, got width=%d graphemes=%d", result.Width, length)
	}
	if placed.Direction == DOWN && result.Height != length {
		t.Fatalf("expected cropped height to equal grapheme count, got height=%d graphemes=%d", result.Height, length)
	}
}

func TestGeneratePuzzle_NoElongation(t *testing.T) {
	clues := []*grapheme.ClueItem{
		mustItem(t, "HELLO", "A greeting", "en-US"),
		mustItem(t, "HELP", "Assistance", "en-US"),
	}
	result := GeneratePuzzle(clues, 15, 15, seed(42), 0)

	for _, p := range result.Placements {
		length := len(p.Item.Graphemes)
		for i := 0; i < length; i++ {
			x, y := p.cell(i)
			cell := result.Grid.At(x, y)
			if cell == nil || !cell.Occupied() {
				t.Fatalf("placement %s missing cell at (%d,%d)", p.Item.Answer, x, y)
			}
			if *cell.Grapheme != p.Item.Graphemes[i] {
				t.Fatalf("cell (%d,%d) holds %q, want %q", x, y, *cell.Grapheme, p.Item.Graphemes[i])
			}
		}
		bx, by := p.cell(-1)
		if c := result.Grid.At(bx, by); c != nil && c.Occupied() {
			t.Fatalf("placement %s is elongated before its start at (%d,%d)", p.Item.Answer, bx, by)
		}
		ax, ay := p.cell(length)
		if c := result.Grid.At(ax, ay); c != nil && c.Occupied() {
			t.Fatalf("placement %s is elongated past its end at (%d,%d)", p.Item.Answer, ax, ay)
		}
	}
}
