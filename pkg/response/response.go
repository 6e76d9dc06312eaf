package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "art-historian/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Success sends 200 {"message": msg, "status": "success"}.
func Success(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, StatusResp{Message: msg, Status: StatusSuccess})
}

// Error sends {"error": err.Error()} with the status carried by err (500 by default).
func Error(c *gin.Context, err error) {
	if err == nil {
		err = pkgErrors.ErrInternalServerError
	}
	c.JSON(pkgErrors.StatusCode(err), ErrorResp{Error: err.Error()})
}

// InternalError sends 500 with a generic message, hiding err from the client.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Error: pkgErrors.ErrTooManyRequests.Error()})
}
