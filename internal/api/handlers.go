package api

import (
	"net/http"
	"strconv"

	"github.com/crossplay/wordgrid/internal/auth"
	"github.com/crossplay/wordgrid/internal/catalog"
	"github.com/crossplay/wordgrid/internal/logging"
	"github.com/crossplay/wordgrid/internal/middleware"
	"github.com/crossplay/wordgrid/internal/store"
	"github.com/gin-gonic/gin"
)

// Handlers holds every dependency the HTTP layer needs: the orchestration
// service, the auth service for login, the catalog for listing, the
// progress hub for the WebSocket feed, and a logger.
type Handlers struct {
	service     *Service
	authService *auth.AuthService
	catalog     *catalog.Catalog
	progress    *ProgressHub
	dataRoot    string
	log         *logging.Logger
}

func NewHandlers(service *Service, authService *auth.AuthService, cat *catalog.Catalog, progress *ProgressHub, dataRoot string, log *logging.Logger) *Handlers {
	return &Handlers{service: service, authService: authService, catalog: cat, progress: progress, dataRoot: dataRoot, log: log}
}

// Generate handles POST /api/crossword/generate. Public: no auth
// required (§6.4 only gates listing and raw-artifact lookup).
func (h *Handlers) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.service.Generate(c.Request.Context(), req)
	if !resp.Success {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LoginRequest is POST /api/auth/login's body: the single configured
// admin password, nothing else (§6.4 — no end-user accounts).
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) Login(c *gin.Context, adminPasswordHash string) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if adminPasswordHash == "" || !h.authService.CheckPassword(req.Password, adminPasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.authService.GenerateToken("admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// List handles GET /api/crossword/list (JWT-protected). It reads the
// catalog's cached-then-Postgres recent list and skips any entry whose
// artifact directory has no meta.json (§7).
func (h *Handlers) List(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not configured"})
		return
	}

	if claims := middleware.GetAuthUser(c); claims != nil {
		h.log.Debug("catalog list requested by %s", claims.Subject)
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.catalog.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list catalog"})
		return
	}

	visible := make([]catalog.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		dir := store.Dir(h.dataRoot, e.CrosswordID)
		if !store.Exists(dir) {
			h.log.Warn("catalog: skipping %s, artifact directory missing", e.CrosswordID)
			continue
		}
		visible = append(visible, e)
	}

	c.JSON(http.StatusOK, gin.H{"crosswords": visible})
}

// GetByID handles GET /api/crossword/:id (JWT-protected): returns the raw
// meta.json and summary.json for one crossword.
func (h *Handlers) GetByID(c *gin.Context) {
	if claims := middleware.GetAuthUser(c); claims != nil {
		h.log.Debug("crossword %s requested by %s", c.Param("id"), claims.Subject)
	}

	id := c.Param("id")
	dir := store.Dir(h.dataRoot, id)
	if !store.Exists(dir) {
		c.JSON(http.StatusNotFound, gin.H{"error": "crossword not found"})
		return
	}

	meta, err := store.ReadMeta(dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read crossword metadata"})
		return
	}
	summary, err := store.ReadSummary(dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read crossword summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meta": meta, "summary": summary})
}

// Progress handles GET /api/crossword/:id/progress/ws. The path segment
// is actually the generation request's sessionId, not a crosswordId — a
// caller opens this before issuing POST /api/crossword/generate with the
// same sessionId so it can observe the progress feed (§5).
func (h *Handlers) Progress(c *gin.Context) {
	sessionID := c.Param("id")
	ServeProgress(h.progress, c.Writer, c.Request, sessionID, h.log)
}
