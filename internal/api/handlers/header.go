package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/dnsheader/internal/api/models"
	"github.com/jroosing/dnsheader/internal/dns"
	"github.com/jroosing/dnsheader/internal/helpers"
)

// DecodeHeader godoc
// @Summary Decode a DNS header
// @Description Decodes the first 12 bytes of the given hex. Trailing bytes are ignored.
// @Tags header
// @Accept json
// @Produce json
// @Param request body models.DecodeRequest true "Header bytes as hex"
// @Success 200 {object} models.DecodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /header/decode [post]
func (h *Handler) DecodeHeader(c *gin.Context) {
	var req models.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	raw, err := helpers.ParseHex(req.Hex)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	hdr, err := dns.Decode(raw)
	h.stats.RecordDecode(err)
	if err != nil {
		h.logger.Debug("header decode failed", "err", err, "bytes", len(raw))
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  err.Error(),
			Detail: models.ErrorDetailFrom(err),
		})
		return
	}

	flags, err := hdr.Flags()
	if err != nil {
		// A decoded header always repacks.
		h.internalError(c, fmt.Errorf("repack decoded flags: %w", err))
		return
	}

	h.logger.Debug("header decoded", "header", hdr)
	c.JSON(http.StatusOK, models.DecodeResponse{
		Hex:    helpers.FormatHex(raw[:dns.HeaderSize]),
		Flags:  fmt.Sprintf("%04X", flags),
		Header: models.FieldsFromHeader(hdr),
		Names:  models.NamesFromHeader(hdr),
	})
}

// EncodeHeader godoc
// @Summary Encode a DNS header
// @Description Validates the given fields and returns the 12 wire bytes as hex.
// @Tags header
// @Accept json
// @Produce json
// @Param request body models.EncodeRequest true "Header fields"
// @Success 200 {object} models.EncodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /header/encode [post]
func (h *Handler) EncodeHeader(c *gin.Context) {
	var req models.EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	hdr, err := req.Header()
	var out []byte
	if err == nil {
		out, err = hdr.Encode()
	}
	h.stats.RecordEncode(err)
	if err != nil {
		h.logger.Debug("header encode failed", "err", err)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  err.Error(),
			Detail: models.ErrorDetailFrom(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.EncodeResponse{
		Hex:   helpers.FormatHex(out),
		Flags: helpers.CompactHex(out[2:4]),
	})
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.Error("api internal error", "path", c.Request.URL.Path, "err", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
}
