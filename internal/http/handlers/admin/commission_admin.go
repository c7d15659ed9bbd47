package admin

import (
	"net/http"
	"strconv"
	"time"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/http/response"
	"github.com/husncart/husncart/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCommissions returns the commission ledger with filters.
func (h *Handler) ListCommissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.CommissionListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}
	if raw := c.Query("affiliate_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.AffiliateID = uint(id)
		}
	}
	if raw := c.Query("order_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.OrderID = uint(id)
		}
	}
	if raw := c.Query("created_from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if raw := c.Query("created_to"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedTo = &t
		}
	}

	rows, total, err := h.CommissionService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "commission list failed", err)
		return
	}

	response.SuccessWithPage(c, rows, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetCommission returns one ledger row.
func (h *Handler) GetCommission(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	row, err := h.CommissionService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "commission fetch failed")
		return
	}
	response.Success(c, row)
}

// PayCommission marks a payable row as paid out.
func (h *Handler) PayCommission(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	row, err := h.CommissionService.MarkPaid(id)
	if err != nil {
		respondServiceError(c, err, "commission payout failed")
		return
	}
	response.Success(c, row)
}

// commissionVoidRequest is the void payload.
type commissionVoidRequest struct {
	Reason string `json:"reason"`
}

// VoidCommission voids an unpaid ledger row.
func (h *Handler) VoidCommission(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req commissionVoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	row, err := h.CommissionService.Void(id, req.Reason)
	if err != nil {
		respondServiceError(c, err, "commission void failed")
		return
	}
	response.Success(c, row)
}
