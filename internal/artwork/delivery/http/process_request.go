package http

import "github.com/gin-gonic/gin"

// Query binding never fails the request; bad values fall back to defaults.

func (h *handler) processDailyReq(c *gin.Context) dailyReq {
	var req dailyReq
	_ = c.ShouldBindQuery(&req)
	return req
}

func (h *handler) processSearchReq(c *gin.Context) searchReq {
	var req searchReq
	_ = c.ShouldBindQuery(&req)
	return req
}
