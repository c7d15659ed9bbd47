package admin

import (
	"net/http"

	"github.com/husncart/husncart/internal/http/response"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
)

// shippingRuleRequest is the shipping rule payload.
type shippingRuleRequest struct {
	MinQty int          `json:"min_qty"`
	Amount models.Money `json:"amount"`
	Active bool         `json:"active"`
}

// ListShippingRules returns all shipping rules.
func (h *Handler) ListShippingRules(c *gin.Context) {
	rules, err := h.ShippingService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "shipping rule list failed", err)
		return
	}
	response.Success(c, rules)
}

// CreateShippingRule creates a rule.
func (h *Handler) CreateShippingRule(c *gin.Context) {
	var req shippingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rule, err := h.ShippingService.Create(service.ShippingRuleInput{
		MinQty: req.MinQty,
		Amount: req.Amount,
		Active: req.Active,
	})
	if err != nil {
		respondServiceError(c, err, "shipping rule create failed")
		return
	}
	response.Created(c, rule)
}

// UpdateShippingRule updates a rule.
func (h *Handler) UpdateShippingRule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req shippingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rule, err := h.ShippingService.Update(id, service.ShippingRuleInput{
		MinQty: req.MinQty,
		Amount: req.Amount,
		Active: req.Active,
	})
	if err != nil {
		respondServiceError(c, err, "shipping rule update failed")
		return
	}
	response.Success(c, rule)
}

// DeleteShippingRule removes a rule.
func (h *Handler) DeleteShippingRule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.ShippingService.Delete(id); err != nil {
		respondServiceError(c, err, "shipping rule delete failed")
		return
	}
	response.Success(c, gin.H{"ok": true})
}
