package api

import (
	"github.com/crossplay/wordgrid/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of §6 onto router. adminPasswordHash
// is passed to Login through a closure rather than stored on Handlers; the
// value is captured once, when the routes are registered.
func RegisterRoutes(router *gin.Engine, h *Handlers, authMW *middleware.AuthMiddleware, adminPasswordHash string) {
	router.POST("/api/crossword/generate", h.Generate)
	router.GET("/api/crossword/:id/progress/ws", h.Progress)
	router.POST("/api/auth/login", func(c *gin.Context) { h.Login(c, adminPasswordHash) })

	protected := router.Group("/api/crossword")
	protected.Use(authMW.RequireAuth())
	{
		protected.GET("/list", h.List)
		protected.GET("/:id", h.GetByID)
	}
}
