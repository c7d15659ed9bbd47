package admin

import (
	"net/http"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/http/response"

	"github.com/gin-gonic/gin"
)

var editableSettingKeys = map[string]bool{
	constants.SettingKeyAffiliateConfig: true,
	constants.SettingKeyAdsConfig:       true,
}

// GetSetting returns one settings document.
func (h *Handler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	if !editableSettingKeys[key] {
		respondError(c, http.StatusNotFound, "unknown setting key", nil)
		return
	}

	value, err := h.SettingService.GetByKey(key)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "setting fetch failed", err)
		return
	}
	response.Success(c, gin.H{"key": key, "value": value})
}

// UpdateSetting replaces one settings document.
func (h *Handler) UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if !editableSettingKeys[key] {
		respondError(c, http.StatusNotFound, "unknown setting key", nil)
		return
	}

	var value map[string]interface{}
	if err := c.ShouldBindJSON(&value); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	stored, err := h.SettingService.Update(key, value)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "setting update failed", err)
		return
	}

	requestLog(c).Infow("setting_updated", "key", key)
	response.Success(c, gin.H{"key": key, "value": stored})
}
