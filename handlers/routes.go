package handlers

import (
	"github.com/labstack/echo/v4"

	mw "github.com/padraicbc/jrabrowser/middleware"
)

// Register mounts the API under /api.
func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")
	snap := mw.Snapshot(h.roster)

	api.GET("/horses", h.Horses, snap)
	api.GET("/search", h.Search, snap)
	api.GET("/rankings/:kind", h.Rankings, snap)
	api.GET("/jockeys", h.Jockeys, snap)
	api.GET("/breeds", h.Breeds, snap)
	api.GET("/stats", h.Stats, snap)
	api.POST("/reload", h.Reload)

	api.GET("/comments", h.Comments)
	api.POST("/comments", h.CreateComment)
	api.POST("/comments/:id/replies", h.CreateReply)
}
