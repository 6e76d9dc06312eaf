package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the artwork endpoints onto the /api group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/daily-artwork", h.Daily)
	rg.GET("/artworks/search", h.Search)
}
