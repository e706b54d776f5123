package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardStats handles GET /api/dashboard/stats.
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.adminSvc.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
