package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/logger"
	"enginerent-backend/internal/service"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	authSvc        service.AuthService
	equipmentSvc   service.EquipmentService
	reservationSvc service.ReservationService
	paymentSvc     service.PaymentService
	maintenanceSvc service.MaintenanceService
	adminSvc       service.AdminService
}

// NewHandler creates a new API handler.
func NewHandler(
	authSvc service.AuthService,
	equipmentSvc service.EquipmentService,
	reservationSvc service.ReservationService,
	paymentSvc service.PaymentService,
	maintenanceSvc service.MaintenanceService,
	adminSvc service.AdminService,
) *Handler {
	return &Handler{
		authSvc:        authSvc,
		equipmentSvc:   equipmentSvc,
		reservationSvc: reservationSvc,
		paymentSvc:     paymentSvc,
		maintenanceSvc: maintenanceSvc,
		adminSvc:       adminSvc,
	}
}

// respondError maps service error kinds to HTTP status codes. Anything
// outside the taxonomy is a 500 with the detail kept out of the response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
