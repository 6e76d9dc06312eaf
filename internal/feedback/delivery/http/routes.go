package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the feedback endpoint onto the /api group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/feedback", h.Submit)
}
