package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crossplay/wordgrid/internal/auth"
	"github.com/crossplay/wordgrid/internal/logging"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	svc := NewService(nil, nil, t.TempDir(), logging.New(logging.LevelError), NewProgressHub(logging.New(logging.LevelError)))
	authService := auth.NewAuthService("test-secret")
	return NewHandlers(svc, authService, nil, svc.progress, t.TempDir(), logging.New(logging.LevelError))
}

func TestGenerateHandler_Success(t *testing.T) {
	h := newTestHandlers(t)
	router := gin.New()
	router.POST("/api/crossword/generate", h.Generate)

	body, _ := json.Marshal(GenerateRequest{
		SessionID: "s1", ContentLanguage: "en", Mode: ModeManualBasic,
		Words:     []WordInput{{Word: "cat", Clue: "feline"}, {Word: "car", Clue: "vehicle"}},
		GridSizeX: 10, GridSizeY: 10,
	})
	req, _ := http.NewRequest("POST", "/api/crossword/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success")
	}
}

func TestGenerateHandler_BadRequest(t *testing.T) {
	h := newTestHandlers(t)
	router := gin.New()
	router.POST("/api/crossword/generate", h.Generate)

	req, _ := http.NewRequest("POST", "/api/crossword/generate", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity && w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want a 4xx, body = %s", w.Code, w.Body.String())
	}
}

func TestLoginHandler_RejectsWrongPassword(t *testing.T) {
	h := newTestHandlers(t)
	hash, err := h.authService.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	router := gin.New()
	router.POST("/api/auth/login", func(c *gin.Context) { h.Login(c, hash) })

	body, _ := json.Marshal(LoginRequest{Password: "wrong"})
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginHandler_AcceptsCorrectPassword(t *testing.T) {
	h := newTestHandlers(t)
	hash, err := h.authService.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	router := gin.New()
	router.POST("/api/auth/login", func(c *gin.Context) { h.Login(c, hash) })

	body, _ := json.Marshal(LoginRequest{Password: "correct-horse"})
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token == "" {
		t.Errorf("expected a non-empty token")
	}
}
