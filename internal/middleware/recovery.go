package middleware

import (
	"github.com/gin-gonic/gin"

	"art-historian/pkg/response"
)

// Recovery turns a panic into a 500 {error} response.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		mw.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		c.Abort()
		response.InternalError(c, nil)
	})
}
