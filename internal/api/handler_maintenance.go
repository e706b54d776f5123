package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/mw"
)

type scheduleMaintenanceRequest struct {
	EquipmentID   int32  `json:"equipment_id" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	TechnicianID  int32  `json:"technician_id" binding:"required"`
}

type completeMaintenanceRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// ListMaintenance handles GET /api/maintenance.
func (h *Handler) ListMaintenance(c *gin.Context) {
	userID, role := mw.Identity(c)
	items, err := h.maintenanceSvc.ListMaintenance(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.MaintenanceRecord{}
	}
	c.JSON(http.StatusOK, items)
}

// ScheduleMaintenance handles POST /api/maintenance.
func (h *Handler) ScheduleMaintenance(c *gin.Context) {
	var req scheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	rec, err := h.maintenanceSvc.ScheduleMaintenance(c.Request.Context(), req.EquipmentID, req.Type, req.Description, req.ScheduledDate, req.TechnicianID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// CompleteMaintenance handles PUT /api/maintenance/:id/complete.
func (h *Handler) CompleteMaintenance(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req completeMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.maintenanceSvc.CompleteMaintenance(c.Request.Context(), id, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "maintenance completed"})
}
