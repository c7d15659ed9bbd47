package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("admin_id")
	if !exists {
		respondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			respondError(c, http.StatusBadRequest, "invalid admin id", nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			respondError(c, http.StatusBadRequest, "invalid admin id", nil)
			return 0, false
		}
		return uint(v), true
	default:
		respondError(c, http.StatusInternalServerError, "invalid admin id type", nil)
		return 0, false
	}
}

func paramID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}
