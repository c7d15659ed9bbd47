package public

import (
	"net/http"
	"strings"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackReferral handles referral landing links. A resolvable code sets
// the attribution cookie and records a click; unknown or ineligible
// codes still redirect so shared links never break.
func (h *Handler) TrackReferral(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	target := strings.TrimSpace(c.Query("to"))
	if target == "" || !strings.HasPrefix(target, "/") {
		target = "/"
	}

	affiliate := h.AffiliateService.TrackClick(service.AffiliateTrackClickInput{
		Code:        code,
		LandingPath: target,
		Referrer:    c.Request.Referer(),
		ClientIP:    c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
	if affiliate != nil {
		c.SetCookie(constants.RefCookieName, affiliate.RefCode, constants.RefCookieMaxAge, "/", "", false, true)
	}

	c.Redirect(http.StatusFound, target)
}
