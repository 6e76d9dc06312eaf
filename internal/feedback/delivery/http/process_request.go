package http

import "github.com/gin-gonic/gin"

// processSubmitReq binds the feedback body. A malformed body is served as an empty request.
func (h *handler) processSubmitReq(c *gin.Context) submitReq {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "feedback.delivery.processSubmitReq: %v", err)
	}
	return req
}
