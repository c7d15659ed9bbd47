package admin

import (
	"net/http"
	"strconv"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/http/response"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
)

// parlourRequest is the parlour create/update payload.
type parlourRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	City  string `json:"city"`
	Notes string `json:"notes"`
}

func (r parlourRequest) toInput() service.ParlourCreateInput {
	return service.ParlourCreateInput{
		Name:  r.Name,
		Phone: r.Phone,
		City:  r.City,
		Notes: r.Notes,
	}
}

// ListParlours returns the parlour list.
func (h *Handler) ListParlours(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	parlours, total, err := h.ParlourService.List(repository.ParlourListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		City:     c.Query("city"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "parlour list failed", err)
		return
	}

	response.SuccessWithPage(c, parlours, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetParlour returns one parlour.
func (h *Handler) GetParlour(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	parlour, err := h.ParlourService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "parlour fetch failed")
		return
	}
	response.Success(c, parlour)
}

// CreateParlour registers a parlour.
func (h *Handler) CreateParlour(c *gin.Context) {
	var req parlourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	parlour, err := h.ParlourService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "parlour create failed")
		return
	}
	response.Created(c, parlour)
}

// UpdateParlour updates a parlour.
func (h *Handler) UpdateParlour(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req parlourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	parlour, err := h.ParlourService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "parlour update failed")
		return
	}
	response.Success(c, parlour)
}

// parlourStatusRequest is the status override payload.
type parlourStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateParlourStatus sets the parlour status directly.
func (h *Handler) UpdateParlourStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req parlourStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	parlour, err := h.ParlourService.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err, "parlour status update failed")
		return
	}
	response.Success(c, parlour)
}

// parlourStrikeRequest is the strike payload.
type parlourStrikeRequest struct {
	Note string `json:"note"`
}

// AddParlourStrike records a strike against a parlour.
func (h *Handler) AddParlourStrike(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req parlourStrikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	parlour, err := h.ParlourService.AddStrike(id, req.Note)
	if err != nil {
		respondServiceError(c, err, "parlour strike failed")
		return
	}
	response.Success(c, parlour)
}

// parlourTierRequest is the wholesale pricing tier payload. Exactly
// one of unit_price or discount_percent should be set.
type parlourTierRequest struct {
	ProductID       uint          `json:"product_id" binding:"required"`
	MinQty          int           `json:"min_qty"`
	UnitPrice       *models.Money `json:"unit_price"`
	DiscountPercent *models.Money `json:"discount_percent"`
	Active          bool          `json:"active"`
}

func (r parlourTierRequest) toInput() service.ParlourTierInput {
	return service.ParlourTierInput{
		ProductID:       r.ProductID,
		MinQty:          r.MinQty,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.DiscountPercent,
		Active:          r.Active,
	}
}

// ListParlourTiers returns pricing tiers, optionally for one product.
func (h *Handler) ListParlourTiers(c *gin.Context) {
	var productID uint
	if raw := c.Query("product_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			productID = uint(id)
		}
	}

	tiers, err := h.ParlourService.ListTiers(productID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "parlour tier list failed", err)
		return
	}
	response.Success(c, tiers)
}

// CreateParlourTier adds a pricing tier.
func (h *Handler) CreateParlourTier(c *gin.Context) {
	var req parlourTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	tier, err := h.ParlourService.CreateTier(req.toInput())
	if err != nil {
		respondServiceError(c, err, "parlour tier create failed")
		return
	}
	response.Created(c, tier)
}

// UpdateParlourTier updates a pricing tier.
func (h *Handler) UpdateParlourTier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req parlourTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	tier, err := h.ParlourService.UpdateTier(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "parlour tier update failed")
		return
	}
	response.Success(c, tier)
}

// DeleteParlourTier removes a pricing tier.
func (h *Handler) DeleteParlourTier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.ParlourService.DeleteTier(id); err != nil {
		respondServiceError(c, err, "parlour tier delete failed")
		return
	}
	response.Success(c, gin.H{"ok": true})
}
