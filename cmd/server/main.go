package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/crossplay/wordgrid/internal/ai"
	"github.com/crossplay/wordgrid/internal/api"
	"github.com/crossplay/wordgrid/internal/auth"
	"github.com/crossplay/wordgrid/internal/catalog"
	"github.com/crossplay/wordgrid/internal/config"
	"github.com/crossplay/wordgrid/internal/logging"
	"github.com/crossplay/wordgrid/internal/middleware"
	"github.com/crossplay/wordgrid/internal/store"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log := logging.New(logging.LevelInfo)

	dataRoot := cfg.DataDir
	if dataRoot == "" {
		dataRoot = store.Root()
	}

	var clueSource ai.ClueSource
	if cfg.AIAPIKey != "" {
		src, err := ai.NewClaudeSource(ai.ClaudeConfig{APIKey: cfg.AIAPIKey})
		if err != nil {
			log.Error("failed to configure AI clue source: %v", err)
		} else {
			clueSource = src
		}
	} else {
		log.Warn("AI_API_KEY not set, ai mode requests will fail")
	}

	var cat *catalog.Catalog
	if c, err := catalog.New(cfg.DatabaseURL, cfg.RedisURL); err != nil {
		log.Warn("catalog unavailable, listing endpoint will be disabled: %v", err)
	} else {
		if err := c.InitSchema(); err != nil {
			log.Error("failed to initialize catalog schema: %v", err)
		}
		cat = c
		defer cat.Close()
	}

	progressHub := api.NewProgressHub(log)
	service := api.NewService(clueSource, cat, dataRoot, log, progressHub)
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	handlers := api.NewHandlers(service, authService, cat, progressHub, dataRoot, log)

	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.PerformanceMonitor())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})
	router.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.GetMetrics())
	})

	api.RegisterRoutes(router, handlers, authMiddleware, cfg.AdminPasswordHash)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed: %v", err)
		}
	}()

	log.Info("server started on port %s", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown: %v", err)
	}

	log.Info("server exited")
}
