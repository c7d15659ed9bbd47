package admin

import (
	"errors"
	"net/http"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

// mappedHandlerError maps one business error to an HTTP response.
type mappedHandlerError struct {
	target error
	status int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.status, rule.msg, nil)
			return
		}
	}
	respondError(c, http.StatusInternalServerError, fallbackMsg, err)
}

var notFoundErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, status: http.StatusNotFound, msg: "product not found"},
	{target: service.ErrVariantNotFound, status: http.StatusNotFound, msg: "variant not found"},
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, msg: "order not found"},
	{target: service.ErrAffiliateNotFound, status: http.StatusNotFound, msg: "affiliate not found"},
	{target: service.ErrTierNotFound, status: http.StatusNotFound, msg: "commission tier not found"},
	{target: service.ErrShippingRuleNotFound, status: http.StatusNotFound, msg: "shipping rule not found"},
	{target: service.ErrCommissionNotFound, status: http.StatusNotFound, msg: "commission not found"},
	{target: service.ErrParlourNotFound, status: http.StatusNotFound, msg: "parlour not found"},
	{target: service.ErrParlourTierNotFound, status: http.StatusNotFound, msg: "parlour pricing tier not found"},
	{target: service.ErrAdminNotFound, status: http.StatusNotFound, msg: "admin not found"},
}

var validationErrorRules = []mappedHandlerError{
	{target: service.ErrProductInvalid, status: http.StatusBadRequest, msg: "invalid product data"},
	{target: service.ErrSlugTaken, status: http.StatusBadRequest, msg: "product slug already in use"},
	{target: service.ErrVariantInvalid, status: http.StatusBadRequest, msg: "invalid variant data"},
	{target: service.ErrVariantSKUTaken, status: http.StatusBadRequest, msg: "variant sku already in use"},
	{target: service.ErrOrderStatusInvalid, status: http.StatusBadRequest, msg: "order status transition not allowed"},
	{target: service.ErrAffiliateInvalid, status: http.StatusBadRequest, msg: "invalid affiliate data"},
	{target: service.ErrAffiliateStatusInvalid, status: http.StatusBadRequest, msg: "invalid affiliate status"},
	{target: service.ErrAffiliateCodeTaken, status: http.StatusBadRequest, msg: "referral code already in use"},
	{target: service.ErrTierInvalid, status: http.StatusBadRequest, msg: "invalid tier data"},
	{target: service.ErrTierDefaultProtected, status: http.StatusBadRequest, msg: "default commission tier cannot be removed"},
	{target: service.ErrShippingRuleInvalid, status: http.StatusBadRequest, msg: "invalid shipping rule data"},
	{target: service.ErrCommissionStatusInvalid, status: http.StatusBadRequest, msg: "commission status transition not allowed"},
	{target: service.ErrParlourInvalid, status: http.StatusBadRequest, msg: "invalid parlour data"},
	{target: service.ErrParlourPhoneTaken, status: http.StatusBadRequest, msg: "parlour phone already registered"},
	{target: service.ErrParlourStatusInvalid, status: http.StatusBadRequest, msg: "invalid parlour status"},
	{target: service.ErrParlourTierInvalid, status: http.StatusBadRequest, msg: "invalid parlour pricing tier data"},
}

// respondServiceError covers the shared not-found and validation rules.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	rules := make([]mappedHandlerError, 0, len(notFoundErrorRules)+len(validationErrorRules))
	rules = append(rules, notFoundErrorRules...)
	rules = append(rules, validationErrorRules...)
	respondWithMappedError(c, err, rules, fallbackMsg)
}
