package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat endpoints onto the /api group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)
	rg.DELETE("/chat/:conversationId", h.Reset)
}
