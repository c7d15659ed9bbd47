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

// productRequest is the admin product payload.
type productRequest struct {
	Slug                     string       `json:"slug" binding:"required"`
	Name                     string       `json:"name" binding:"required"`
	Brand                    string       `json:"brand"`
	Description              string       `json:"description"`
	Images                   []string     `json:"images"`
	AffiliateEnabled         bool         `json:"affiliate_enabled"`
	AffiliateDiscountType    string       `json:"affiliate_discount_type"`
	AffiliateDiscountValue   models.Money `json:"affiliate_discount_value"`
	AffiliateCommissionType  string       `json:"affiliate_commission_type"`
	AffiliateCommissionValue models.Money `json:"affiliate_commission_value"`
	IsActive                 bool         `json:"is_active"`
	SortOrder                int          `json:"sort_order"`
}

func (r productRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Slug:                     r.Slug,
		Name:                     r.Name,
		Brand:                    r.Brand,
		Description:              r.Description,
		Images:                   r.Images,
		AffiliateEnabled:         r.AffiliateEnabled,
		AffiliateDiscountType:    r.AffiliateDiscountType,
		AffiliateDiscountValue:   r.AffiliateDiscountValue,
		AffiliateCommissionType:  r.AffiliateCommissionType,
		AffiliateCommissionValue: r.AffiliateCommissionValue,
		IsActive:                 r.IsActive,
		SortOrder:                r.SortOrder,
	}
}

// ListProducts returns the admin product list.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListAdmin(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Brand:        c.Query("brand"),
		Search:       c.Query("search"),
		WithVariants: true,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "product list failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetProduct returns one product with variants.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "product fetch failed")
		return
	}
	response.Success(c, product)
}

// CreateProduct creates a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "product create failed")
		return
	}
	response.Created(c, product)
}

// UpdateProduct updates a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "product update failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err, "product delete failed")
		return
	}
	response.Success(c, gin.H{"ok": true})
}

// variantRequest is the admin variant payload.
type variantRequest struct {
	SKU       string                 `json:"sku" binding:"required"`
	Attrs     map[string]interface{} `json:"attrs"`
	Price     models.Money           `json:"price"`
	IsActive  bool                   `json:"is_active"`
	SortOrder int                    `json:"sort_order"`
}

func (r variantRequest) toInput() service.VariantInput {
	return service.VariantInput{
		SKU:       r.SKU,
		Attrs:     r.Attrs,
		Price:     r.Price,
		IsActive:  r.IsActive,
		SortOrder: r.SortOrder,
	}
}

// ListVariants returns a product's variants.
func (h *Handler) ListVariants(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	variants, err := h.ProductService.ListVariants(id)
	if err != nil {
		respondServiceError(c, err, "variant list failed")
		return
	}
	response.Success(c, variants)
}

// CreateVariant adds a variant to a product.
func (h *Handler) CreateVariant(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req variantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	variant, err := h.ProductService.CreateVariant(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "variant create failed")
		return
	}
	response.Created(c, variant)
}

// UpdateVariant updates a variant.
func (h *Handler) UpdateVariant(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req variantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	variant, err := h.ProductService.UpdateVariant(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "variant update failed")
		return
	}
	response.Success(c, variant)
}

// DeleteVariant removes a variant.
func (h *Handler) DeleteVariant(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.ProductService.DeleteVariant(id); err != nil {
		respondServiceError(c, err, "variant delete failed")
		return
	}
	response.Success(c, gin.H{"ok": true})
}
