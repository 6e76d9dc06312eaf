package http

import (
	"github.com/gin-gonic/gin"

	"art-historian/pkg/response"
)

// Daily godoc
// @Summary     Artwork of the day
// @Description Returns the artwork selected for today's day of month, with its description in the requested language.
// @Tags        Artwork
// @Produce     json
// @Param       language query string false "Language code (en, hi, es, fr)"
// @Success     200 {object} artworkResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/daily-artwork [GET]
func (h *handler) Daily(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processDailyReq(c)

	output, err := h.uc.Daily(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Daily: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newArtworkResp(output.Artwork))
}

// Search godoc
// @Summary     Search artworks
// @Description Case-insensitive match on title, artist, period and style.
// @Tags        Artwork
// @Produce     json
// @Param       q        query string false "Search text"
// @Param       language query string false "Language code (en, hi, es, fr)"
// @Success     200 {object} searchResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/artworks/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processSearchReq(c)

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}
