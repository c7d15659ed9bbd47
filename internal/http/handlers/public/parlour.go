package public

import (
	"net/http"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/http/response"

	"github.com/gin-gonic/gin"
)

type parlourQuoteRequest struct {
	ParlourID uint `json:"parlour_id" binding:"required"`
	VariantID uint `json:"variant_id" binding:"required"`
	Qty       int  `json:"qty" binding:"required"`
}

// QuoteParlourPrice returns the wholesale quote for a parlour order.
func (h *Handler) QuoteParlourPrice(c *gin.Context) {
	var req parlourQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondError(c, http.StatusBadRequest, "invalid quote request", nil)
		return
	}

	quote, err := h.ParlourService.Quote(req.ParlourID, req.VariantID, req.Qty)
	if err != nil {
		respondParlourQuoteError(c, err)
		return
	}
	response.Success(c, quote)
}
