package public

import (
	"net/http"
	"strings"

	"github.com/husncart/husncart/internal/constants"
	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/http/response"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
)

type createOrderShipping struct {
	Amount models.Money `json:"amount"`
}

type createOrderRequest struct {
	Customer service.CustomerInput               `json:"customer" binding:"required"`
	Items    []service.OrderLineInput            `json:"items" binding:"required"`
	Shipping *createOrderShipping                `json:"shipping"`
	RefCode  string                              `json:"ref_code"`
	Captcha  handlershared.CaptchaPayloadRequest `json:"captcha"`
}

// CreateOrder handles storefront checkout. The referral code comes from
// the request body with the aff_ref cookie as fallback.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondError(c, http.StatusBadRequest, "invalid order request", nil)
		return
	}

	if h.CaptchaService != nil && h.CaptchaService.Enabled() {
		if err := h.CaptchaService.Verify(req.Captcha.ToServicePayload()); err != nil {
			respondOrderCreateError(c, err)
			return
		}
	}

	cookieRefCode := ""
	if cookie, err := c.Cookie(constants.RefCookieName); err == nil {
		cookieRefCode = cookie
	}

	input := service.CreateOrderInput{
		Customer:      req.Customer,
		Items:         req.Items,
		RefCode:       req.RefCode,
		CookieRefCode: cookieRefCode,
		ClientIP:      c.ClientIP(),
	}
	if req.Shipping != nil {
		amount := req.Shipping.Amount
		input.ShippingAmount = &amount
	}

	order, err := h.OrderService.CreateOrder(input)
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	response.Created(c, gin.H{
		"ok":       true,
		"order_id": order.ID,
		"order_no": order.OrderNo,
	})
}

// GetOrder is the guest order lookup by order number plus phone.
func (h *Handler) GetOrder(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Param("order_no"))
	phone := strings.TrimSpace(c.Query("phone"))
	if orderNo == "" || phone == "" {
		handlershared.RespondError(c, http.StatusBadRequest, "order_no and phone are required", nil)
		return
	}

	order, err := h.OrderService.GetByOrderNoAndPhone(orderNo, phone)
	if err != nil {
		handlershared.RespondError(c, http.StatusNotFound, "order not found", nil)
		return
	}

	response.Success(c, gin.H{
		"order_no":        order.OrderNo,
		"status":          order.Status,
		"item_count":      order.ItemCount,
		"total_amount":    order.TotalAmount,
		"shipping_amount": order.ShippingAmount,
		"grand_total":     order.GrandTotal,
		"currency":        order.Currency,
		"created_at":      order.CreatedAt,
		"delivered_at":    order.DeliveredAt,
		"items":           order.Items,
	})
}
