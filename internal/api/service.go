package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/crossplay/wordgrid/internal/ai"
	"github.com/crossplay/wordgrid/internal/catalog"
	"github.com/crossplay/wordgrid/internal/grapheme"
	"github.com/crossplay/wordgrid/internal/logging"
	"github.com/crossplay/wordgrid/internal/placement"
	"github.com/crossplay/wordgrid/internal/polyomino"
	"github.com/crossplay/wordgrid/internal/serialize"
	"github.com/crossplay/wordgrid/internal/store"
	"github.com/crossplay/wordgrid/internal/suitability"
)

const (
	defaultNumItems  = 10
	minNumItems      = 3
	maxNumItems      = 50
	defaultGridSize  = 18
	minGridSize      = 5
	maxGridSize      = 50
	defaultRetries   = placement.DefaultRetryAttempts
)

// Service orchestrates one generation request end to end: build clue
// items, filter, place, optionally partition into polyomino pieces,
// serialize, and persist. It holds no per-request state between calls.
type Service struct {
	ai       ai.ClueSource
	catalog  *catalog.Catalog // nil when no catalog is configured
	dataRoot string
	log      *logging.Logger
	progress *ProgressHub
}

func NewService(source ai.ClueSource, cat *catalog.Catalog, dataRoot string, log *logging.Logger, progress *ProgressHub) *Service {
	return &Service{ai: source, catalog: cat, dataRoot: dataRoot, log: log, progress: progress}
}

// newCrosswordID mints a "cw_<12 hex chars>" id (§6).
func newCrosswordID() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "cw_" + hex.EncodeToString(buf), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalizeRequest(req *GenerateRequest) {
	if req.Mode == "" {
		req.Mode = ModeAI
	}
	if req.NumItems == 0 {
		req.NumItems = defaultNumItems
	}
	req.NumItems = clampInt(req.NumItems, minNumItems, maxNumItems)
	if req.GridSizeX == 0 {
		req.GridSizeX = defaultGridSize
	}
	if req.GridSizeY == 0 {
		req.GridSizeY = defaultGridSize
	}
	req.GridSizeX = clampInt(req.GridSizeX, minGridSize, maxGridSize)
	req.GridSizeY = clampInt(req.GridSizeY, minGridSize, maxGridSize)
	if req.RemoveUnplacedWords == nil {
		t := true
		req.RemoveUnplacedWords = &t
	}
}

// validate returns a non-empty error string for any bad-request condition
// in §7's "Bad request" category.
func validate(req GenerateRequest) string {
	if strings.TrimSpace(req.SessionID) == "" {
		return "sessionId is required"
	}
	if len(req.ContentLanguage) < 2 {
		return "contentLanguage must be a BCP-47 string of length >= 2"
	}
	switch req.Mode {
	case ModeAI:
		if req.InputType == "" || req.InputValue == "" {
			return "inputType and inputValue are required in ai mode"
		}
	case ModeManualBasic, ModeManualAdvanced:
		if len(req.Words) == 0 {
			return "words is required in manual mode"
		}
	default:
		return fmt.Sprintf("unknown mode %q", req.Mode)
	}
	return ""
}

func deriveTheme(req GenerateRequest) string {
	if req.Mode == ModeAI {
		return req.InputValue
	}
	return req.SessionID
}

// buildMetadata fills meta.json's free-form metadata blob with request
// parameters that have no dedicated Meta field: the AI input type, whether
// a caller-supplied seed was used (for reproducing a generation run), and
// the unplaced-word and polyomino toggles. Omits anything already captured
// by a typed Meta field (theme, language, gridSize, mode).
func buildMetadata(req GenerateRequest) map[string]interface{} {
	m := map[string]interface{}{
		"removeUnplacedWords": req.RemoveUnplacedWords != nil && *req.RemoveUnplacedWords,
		"polyomino":           req.Polyomino,
	}
	if req.Mode == ModeAI {
		m["inputType"] = req.InputType
	}
	if req.Seed != nil {
		m["seed"] = *req.Seed
	}
	return m
}

// Generate runs the full pipeline and returns the response shape of §6.
// Persistence failures are logged and never surface as the primary error
// (§7 "Persistence I/O error... non-fatal for the response shape where
// possible").
func (s *Service) Generate(ctx context.Context, req GenerateRequest) GenerateResponse {
	normalizeRequest(&req)
	if msg := validate(req); msg != "" {
		return GenerateResponse{Success: false, Error: msg}
	}

	switch req.Mode {
	case ModeManualAdvanced:
		return s.generateManualAdvanced(ctx, req)
	default:
		return s.generateAutoPlaced(ctx, req)
	}
}

func (s *Service) publishAttempt(sessionID string, attempt int, fillRatio float64) {
	if s.progress == nil {
		return
	}
	s.progress.Publish(sessionID, Message{Type: MsgAttempt, Payload: mustPayload(AttemptPayload{Attempt: attempt, FillRatio: fillRatio})})
}

func (s *Service) publishDone(sessionID, crosswordID string) {
	if s.progress == nil {
		return
	}
	s.progress.Publish(sessionID, Message{Type: MsgDone, Payload: mustPayload(DonePayload{CrosswordID: crosswordID})})
}

func (s *Service) publishFailed(sessionID, errMsg string) {
	if s.progress == nil {
		return
	}
	s.progress.Publish(sessionID, Message{Type: MsgFailed, Payload: mustPayload(FailedPayload{Error: errMsg})})
}

// buildClueItems turns raw (answer, clue) pairs into validated ClueItems,
// silently dropping any that fail the data-model invariants (too short,
// too long, literal brace) — those never reach the suitability filter.
func buildClueItems(pairs []struct{ Answer, Clue string }, locale string) []*grapheme.ClueItem {
	items := make([]*grapheme.ClueItem, 0, len(pairs))
	for _, p := range pairs {
		item, err := grapheme.NewClueItem(p.Answer, p.Clue, locale)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (s *Service) generateAutoPlaced(ctx context.Context, req GenerateRequest) GenerateResponse {
	var raw []struct{ Answer, Clue string }
	var exchange *ai.Exchange

	if req.Mode == ModeAI {
		if s.ai == nil {
			return s.fail(req, "ai clue source is not configured")
		}
		candidates, ex, err := s.ai.Generate(ctx, ai.Request{
			InputType:        ai.InputType(req.InputType),
			InputValue:       req.InputValue,
			NumItems:         req.NumItems,
			ContentLanguage:  req.ContentLanguage,
			UserInstructions: req.UserInstructions,
		})
		if err != nil {
			s.log.Error("ai generation failed for session %s: %v", req.SessionID, err)
			return s.fail(req, "AI generation failed: "+err.Error())
		}
		exchange = &ex
		for _, c := range candidates {
			raw = append(raw, struct{ Answer, Clue string }{c.Answer, c.Clue})
		}
	} else {
		for _, w := range req.Words {
			raw = append(raw, struct{ Answer, Clue string }{w.Word, w.Clue})
		}
	}

	items := buildClueItems(raw, req.ContentLanguage)
	filterResult := suitability.Filter(items, req.GridSizeX, req.GridSizeY)
	if len(filterResult.Kept) == 0 {
		return s.fail(req, "No words passed filter.")
	}

	result := placement.GeneratePuzzleWithProgress(filterResult.Kept, req.GridSizeX, req.GridSizeY, req.Seed, defaultRetries,
		func(attempt int, fillRatio float64) { s.publishAttempt(req.SessionID, attempt, fillRatio) })

	return s.finish(ctx, req, result, filterResult, exchange)
}

func (s *Service) generateManualAdvanced(ctx context.Context, req GenerateRequest) GenerateResponse {
	entries := make([]placement.ManualEntry, len(req.Words))
	for i, w := range req.Words {
		var row, col int
		var direction string
		if w.Row != nil {
			row = *w.Row
		}
		if w.Col != nil {
			col = *w.Col
		}
		if w.Direction != nil {
			direction = *w.Direction
		}
		entries[i] = placement.ManualEntry{
			Answer: w.Word, Clue: w.Clue, Row: row, Col: col,
			Direction: direction, Locale: req.ContentLanguage,
		}
	}

	result, errs := placement.GenerateManualAdvanced(entries, req.GridSizeX, req.GridSizeY)
	if len(errs) > 0 {
		return s.fail(req, placement.FormatManualErrors(errs))
	}

	emptyFilter := suitability.Result{Kept: nil}
	for _, e := range entries {
		item, err := grapheme.NewClueItem(e.Answer, e.Clue, e.Locale)
		if err == nil {
			emptyFilter.Kept = append(emptyFilter.Kept, item)
		}
	}

	return s.finish(ctx, req, *result, emptyFilter, nil)
}

func (s *Service) fail(req GenerateRequest, msg string) GenerateResponse {
	s.log.Warn("generation failed for session %s: %s", req.SessionID, msg)
	s.publishFailed(req.SessionID, msg)

	if s.dataRoot != "" {
		id, err := newCrosswordID()
		if err == nil {
			dir := store.Dir(s.dataRoot, id)
			_ = store.WriteSummaryOnly(dir, store.Summary{Mode: req.Mode, Warning: msg})
		}
	}
	return GenerateResponse{Success: false, Error: msg}
}

func (s *Service) finish(ctx context.Context, req GenerateRequest, result placement.Result, filterResult suitability.Result, exchange *ai.Exchange) GenerateResponse {
	removeUnplaced := req.RemoveUnplacedWords != nil && *req.RemoveUnplacedWords
	out := serialize.Serialize(result, removeUnplaced)

	id, err := newCrosswordID()
	if err != nil {
		return s.fail(req, "failed to mint crossword id")
	}

	var poly *polyomino.Puzzle
	if req.Polyomino {
		p := polyomino.Generate(result.Placements, result.Width, result.Height, deriveTheme(req), polyomino.DefaultConfig())
		poly = &p
	}

	s.persist(ctx, id, req, result, filterResult, out, poly, exchange)

	placements := make([]PlacedWordOut, len(result.Placements))
	for i, p := range result.Placements {
		placements[i] = PlacedWordOut{Answer: p.Item.Answer, Clue: p.Item.Clue, Row: p.StartY, Col: p.StartX, Direction: p.Direction.String()}
	}
	unplaced := make([]string, len(result.Unplaced))
	for i, item := range result.Unplaced {
		unplaced[i] = item.Answer
	}

	resp := GenerateResponse{
		Success:     true,
		CrosswordID: id,
		Puzzle: &Puzzle{
			Grid:          out.Grid,
			Placements:    placements,
			UnplacedWords: unplaced,
			GridWidth:     result.Width,
			GridHeight:    result.Height,
			Warning:       result.Warning,
		},
		Payload: out.Query,
		Warning: result.Warning,
	}

	s.publishDone(req.SessionID, id)
	return resp
}

func (s *Service) persist(ctx context.Context, id string, req GenerateRequest, result placement.Result, filterResult suitability.Result, out serialize.Output, poly *polyomino.Puzzle, exchange *ai.Exchange) {
	if s.dataRoot == "" {
		return
	}
	dir := store.Dir(s.dataRoot, id)

	placements, grid := store.FromResult(result)
	candidates, filtered := store.FromFilterResult(filterResult)

	bundle := store.Bundle{
		Meta: store.Meta{
			ID:             id,
			Theme:          deriveTheme(req),
			Language:       req.ContentLanguage,
			GridSize:       store.GridSizeString(result.Width, result.Height),
			RequestedCount: req.NumItems,
			CreatedAt:      time.Now().UTC(),
			// UserID is left empty: /api/crossword/generate is public (§6.4 —
			// only listing and raw-artifact lookup are admin-gated), so there
			// is no authenticated principal to attribute the bundle to.
			Mode:     req.Mode,
			Metadata: buildMetadata(req),
		},
		Candidates: candidates,
		Filtered:   filtered,
		Placements: placements,
		Grid:       grid,
		Summary: store.Summary{
			Mode:           req.Mode,
			PlacedCount:    result.Stats.Placed,
			UnplacedCount:  result.Stats.Unplaced,
			FilteredCount:  len(filterResult.Removed),
			RequestedCount: result.Stats.Requested,
			FillRatio:      result.Stats.FillRatio,
			Warning:        result.Warning,
		},
	}
	if exchange != nil {
		bundle.GeminiRaw = &store.GeminiRaw{
			Prompt: exchange.Prompt, Model: exchange.Model, RawResponse: exchange.RawResponse,
			Timestamp: time.Now().UTC(),
		}
	}
	if poly != nil {
		p := store.FromPolyomino(*poly)
		bundle.Polyomino = &p
	}

	if err := store.WriteBundle(dir, bundle); err != nil {
		s.log.Error("failed to persist bundle for %s: %v", id, err)
		return
	}

	if s.catalog != nil {
		entry := catalog.CatalogEntry{
			CrosswordID: id, Theme: bundle.Meta.Theme, Language: bundle.Meta.Language,
			GridSize: bundle.Meta.GridSize, Mode: bundle.Meta.Mode, CreatedAt: bundle.Meta.CreatedAt,
		}
		if err := s.catalog.Record(ctx, entry); err != nil {
			s.log.Warn("failed to record catalog entry for %s: %v", id, err)
		}
	}
}
