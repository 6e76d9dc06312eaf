package http

import (
	"github.com/gin-gonic/gin"

	"art-historian/pkg/response"
)

// Chat godoc
// @Summary     Ask the art historian
// @Description Sends one user message (optionally with an image) and returns the formatted reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     500 {object} response.ErrorResp "Generation failed"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processChatReq(c)

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err, req.language()))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Reset godoc
// @Summary     Reset a conversation
// @Description Forgets the history of a conversation. Unknown ids succeed.
// @Tags        Chat
// @Produce     json
// @Param       conversationId path string true "Conversation ID"
// @Success     200 {object} response.StatusResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/chat/{conversationId} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, c.Param("conversationId")); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.InternalError(c, err)
		return
	}

	response.Success(c, "")
}
