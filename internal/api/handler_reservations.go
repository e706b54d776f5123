package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/mw"
)

type createReservationRequest struct {
	EquipmentID int32  `json:"equipment_id" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

// ListReservations handles GET /api/reservations.
func (h *Handler) ListReservations(c *gin.Context) {
	userID, role := mw.Identity(c)
	items, err := h.reservationSvc.ListReservations(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.Reservation{}
	}
	c.JSON(http.StatusOK, items)
}

// CreateReservation handles POST /api/reservations.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, _ := mw.Identity(c)
	rsv, err := h.reservationSvc.CreateReservation(c.Request.Context(), userID, req.EquipmentID, req.StartDate, req.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rsv)
}

// ApproveReservation handles PUT /api/reservations/:id/approve.
func (h *Handler) ApproveReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.reservationSvc.ApproveReservation(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation approved"})
}

// RejectReservation handles PUT /api/reservations/:id/reject.
func (h *Handler) RejectReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.reservationSvc.RejectReservation(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation rejected"})
}
