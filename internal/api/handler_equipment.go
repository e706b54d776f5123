package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"enginerent-backend/internal/domain"
)

type equipmentRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Brand          string `json:"brand"`
	DailyRateCents int32  `json:"daily_rate_cents" binding:"required"`
	Location       string `json:"location"`
}

func paramID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return int32(id), true
}

// ListEquipment handles GET /api/equipment.
func (h *Handler) ListEquipment(c *gin.Context) {
	filter := domain.EquipmentFilter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Status:   c.Query("status"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	}
	items, err := h.equipmentSvc.ListEquipment(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.Equipment{}
	}
	c.JSON(http.StatusOK, items)
}

// GetEquipment handles GET /api/equipment/:id.
func (h *Handler) GetEquipment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	eq, err := h.equipmentSvc.GetEquipment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

// CreateEquipment handles POST /api/equipment.
func (h *Handler) CreateEquipment(c *gin.Context) {
	var req equipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	eq := &domain.Equipment{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Brand:          req.Brand,
		DailyRateCents: req.DailyRateCents,
		Location:       req.Location,
	}
	if err := h.equipmentSvc.AddEquipment(c.Request.Context(), eq); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, eq)
}

// UpdateEquipment handles PUT /api/equipment/:id.
func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req equipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	eq := &domain.Equipment{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Brand:          req.Brand,
		DailyRateCents: req.DailyRateCents,
		Location:       req.Location,
	}
	if err := h.equipmentSvc.UpdateEquipment(c.Request.Context(), eq); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

// DeleteEquipment handles DELETE /api/equipment/:id.
func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.equipmentSvc.DeleteEquipment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "equipment deleted"})
}
