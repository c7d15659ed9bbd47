package public

import (
	"errors"
	"net/http"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps one business error to an HTTP response.
type mappedHandlerError struct {
	target error
	status int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackStatus int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			handlershared.RespondError(c, rule.status, rule.msg, nil)
			return
		}
	}
	handlershared.RespondError(c, fallbackStatus, fallbackMsg, err)
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyOrder, status: http.StatusBadRequest, msg: "order has no valid line items"},
	{target: service.ErrInvalidOrderItem, status: http.StatusBadRequest, msg: "invalid line item"},
	{target: service.ErrInvalidCustomer, status: http.StatusBadRequest, msg: "missing required customer fields"},
	{target: service.ErrInvalidOrderRequest, status: http.StatusBadRequest, msg: "invalid order request"},
	{target: service.ErrCaptchaRequired, status: http.StatusBadRequest, msg: "captcha required"},
	{target: service.ErrCaptchaInvalid, status: http.StatusBadRequest, msg: "captcha verification failed"},
}

var parlourQuoteErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidOrderItem, status: http.StatusBadRequest, msg: "invalid quote request"},
	{target: service.ErrParlourNotFound, status: http.StatusNotFound, msg: "parlour not found"},
	{target: service.ErrParlourSuspended, status: http.StatusForbidden, msg: "parlour is suspended"},
	{target: service.ErrVariantNotFound, status: http.StatusNotFound, msg: "variant not found"},
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCreateErrorRules, http.StatusInternalServerError, "order creation failed")
}

func respondParlourQuoteError(c *gin.Context, err error) {
	respondWithMappedError(c, err, parlourQuoteErrorRules, http.StatusInternalServerError, "quote failed")
}
