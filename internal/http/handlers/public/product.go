package public

import (
	"net/http"
	"strconv"
	"strings"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the active catalog, paginated.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListPublic(
		c.Query("brand"),
		c.Query("search"),
		page,
		pageSize,
	)
	if err != nil {
		handlershared.RespondError(c, http.StatusInternalServerError, "list products failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetProduct returns one active product by slug, with variants.
func (h *Handler) GetProduct(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	product, err := h.ProductService.GetPublicBySlug(slug)
	if err != nil {
		handlershared.RespondError(c, http.StatusNotFound, "product not found", nil)
		return
	}
	response.Success(c, product)
}
