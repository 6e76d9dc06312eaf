package http

import (
	"github.com/gin-gonic/gin"

	"art-historian/pkg/response"
)

// Submit godoc
// @Summary     Send feedback on a reply
// @Description Logs the feedback and answers with a localized acknowledgement.
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Feedback"
// @Success     200 {object} response.StatusResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/feedback [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processSubmitReq(c)

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, output.Message)
}
