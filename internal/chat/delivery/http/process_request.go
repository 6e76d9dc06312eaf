package http

import "github.com/gin-gonic/gin"

// processChatReq binds the chat body. A malformed body is served as an empty request.
func (h *handler) processChatReq(c *gin.Context) chatReq {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "chat.delivery.processChatReq: %v", err)
	}
	return req
}
