package admin

import (
	"net/http"

	"github.com/husncart/husncart/internal/http/response"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
)

// tierRequest is the commission tier payload.
type tierRequest struct {
	Name                  string       `json:"name" binding:"required"`
	MinDeliveredOrders30d int          `json:"min_delivered_orders_30d"`
	MultiplierPercent     models.Money `json:"multiplier_percent"`
	Active                bool         `json:"active"`
	SortOrder             int          `json:"sort_order"`
}

func (r tierRequest) toInput() service.TierCreateInput {
	return service.TierCreateInput{
		Name:                  r.Name,
		MinDeliveredOrders30d: r.MinDeliveredOrders30d,
		MultiplierPercent:     r.MultiplierPercent,
		Active:                r.Active,
		SortOrder:             r.SortOrder,
	}
}

// ListCommissionTiers returns all commission tiers.
func (h *Handler) ListCommissionTiers(c *gin.Context) {
	tiers, err := h.TierService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "tier list failed", err)
		return
	}
	response.Success(c, tiers)
}

// GetCommissionTier returns one tier.
func (h *Handler) GetCommissionTier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	tier, err := h.TierService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "tier fetch failed")
		return
	}
	response.Success(c, tier)
}

// CreateCommissionTier creates a tier.
func (h *Handler) CreateCommissionTier(c *gin.Context) {
	var req tierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	tier, err := h.TierService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "tier create failed")
		return
	}
	response.Created(c, tier)
}

// UpdateCommissionTier updates a tier.
func (h *Handler) UpdateCommissionTier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req tierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	tier, err := h.TierService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "tier update failed")
		return
	}
	response.Success(c, tier)
}

// DeleteCommissionTier removes a tier. The zero-threshold default
// tier is protected.
func (h *Handler) DeleteCommissionTier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.TierService.Delete(id); err != nil {
		respondServiceError(c, err, "tier delete failed")
		return
	}
	response.Success(c, gin.H{"ok": true})
}
