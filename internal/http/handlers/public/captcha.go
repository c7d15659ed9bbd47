package public

import (
	"net/http"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha issues an image captcha challenge for checkout.
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil || !h.CaptchaService.Enabled() {
		handlershared.RespondError(c, http.StatusNotFound, "captcha disabled", nil)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		handlershared.RespondError(c, http.StatusInternalServerError, "captcha generate failed", err)
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
