package admin

import (
	"errors"
	"net/http"
	"time"

	handlershared "github.com/husncart/husncart/internal/http/handlers/shared"
	"github.com/husncart/husncart/internal/http/response"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
)

// loginRequest is the admin login payload.
type loginRequest struct {
	Username string                              `json:"username" binding:"required"`
	Password string                              `json:"password" binding:"required"`
	Captcha  handlershared.CaptchaPayloadRequest `json:"captcha"`
}

// loginResponse carries the issued token.
type loginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// Login authenticates an admin and issues a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if h.CaptchaService != nil && h.CaptchaService.Enabled() {
		if err := h.CaptchaService.Verify(req.Captcha.ToServicePayload()); err != nil {
			switch {
			case errors.Is(err, service.ErrCaptchaRequired):
				respondError(c, http.StatusBadRequest, "captcha required", nil)
			case errors.Is(err, service.ErrCaptchaInvalid):
				respondError(c, http.StatusBadRequest, "captcha verification failed", nil)
			default:
				respondError(c, http.StatusInternalServerError, "captcha verification failed", err)
			}
			return
		}
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid username or password", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	requestLog(c).Infow("admin_login", "admin_id", admin.ID, "username", admin.Username)
	response.Success(c, loginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
			"is_super": admin.IsSuper,
		},
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// changePasswordRequest is the password change payload.
type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword updates the current admin's password.
func (h *Handler) ChangePassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(c, http.StatusBadRequest, "current password is incorrect", nil)
		case errors.Is(err, service.ErrAdminNotFound):
			respondError(c, http.StatusNotFound, "admin not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "password change failed", err)
		}
		return
	}

	response.Success(c, gin.H{"ok": true})
}
