package admin

import (
	"net/http"
	"strconv"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/http/response"
	"github.com/husncart/husncart/internal/repository"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
)

// affiliateCreateRequest is the admin affiliate create payload.
// RefCode is optional, a blank one gets generated.
type affiliateCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
	RefCode string `json:"ref_code"`
	Notes   string `json:"notes"`
}

// affiliateUpdateRequest is the partial update payload.
type affiliateUpdateRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	City  *string `json:"city"`
	Notes *string `json:"notes"`
}

// ListAffiliates returns the affiliate list.
func (h *Handler) ListAffiliates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.AffiliateListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}

	affiliates, total, err := h.AffiliateService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "affiliate list failed", err)
		return
	}

	response.SuccessWithPage(c, affiliates, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAffiliate returns one affiliate with ledger totals.
func (h *Handler) GetAffiliate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	summary, err := h.AffiliateService.Summary(id)
	if err != nil {
		respondServiceError(c, err, "affiliate fetch failed")
		return
	}
	response.Success(c, summary)
}

// CreateAffiliate registers an affiliate.
func (h *Handler) CreateAffiliate(c *gin.Context) {
	var req affiliateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	affiliate, err := h.AffiliateService.Create(service.AffiliateCreateInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		City:    req.City,
		RefCode: req.RefCode,
		Notes:   req.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "affiliate create failed")
		return
	}
	response.Created(c, affiliate)
}

// UpdateAffiliate applies a partial update.
func (h *Handler) UpdateAffiliate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req affiliateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	affiliate, err := h.AffiliateService.Update(id, service.AffiliateUpdateInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		City:  req.City,
		Notes: req.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "affiliate update failed")
		return
	}
	response.Success(c, affiliate)
}

// affiliateStatusRequest is the status override payload.
type affiliateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Active bool   `json:"active"`
}

// UpdateAffiliateStatus sets the affiliate status directly.
func (h *Handler) UpdateAffiliateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req affiliateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	affiliate, err := h.AffiliateService.UpdateStatus(id, req.Status, req.Active)
	if err != nil {
		respondServiceError(c, err, "affiliate status update failed")
		return
	}
	response.Success(c, affiliate)
}

// affiliateStrikeRequest is the strike payload.
type affiliateStrikeRequest struct {
	Note string `json:"note"`
}

// AddAffiliateStrike records a strike against an affiliate.
func (h *Handler) AddAffiliateStrike(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req affiliateStrikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	affiliate, err := h.AffiliateService.AddStrike(id, req.Note)
	if err != nil {
		respondServiceError(c, err, "affiliate strike failed")
		return
	}
	response.Success(c, affiliate)
}
