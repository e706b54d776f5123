package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/mw"
	"enginerent-backend/internal/security"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, tokens security.TokenManager) *gin.Engine {
	r := gin.Default()

	// Rate limit: 10 requests per second with a burst of 5
	rateLimiter := mw.RateLimiter(rate.Limit(10), 5)

	// Cache the public equipment listing for 1 minute
	cacheStore := cache.New(1*time.Minute, 10*time.Minute)
	caching := mw.Cache(cacheStore, 1*time.Minute)

	auth := mw.Auth(tokens)
	adminOnly := mw.RequireRole(domain.UserRoleAdmin)
	maintainers := mw.RequireRole(domain.UserRoleAdmin, domain.UserRoleTechnician)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/equipment", caching, h.ListEquipment)
		api.GET("/equipment/:id", h.GetEquipment)
		api.POST("/equipment", auth, adminOnly, h.CreateEquipment)
		api.PUT("/equipment/:id", auth, adminOnly, h.UpdateEquipment)
		api.DELETE("/equipment/:id", auth, adminOnly, h.DeleteEquipment)

		api.GET("/reservations", auth, h.ListReservations)
		api.POST("/reservations", auth, h.CreateReservation)
		api.PUT("/reservations/:id/approve", auth, adminOnly, h.ApproveReservation)
		api.PUT("/reservations/:id/reject", auth, adminOnly, h.RejectReservation)

		api.GET("/payments", auth, h.ListPayments)
		api.POST("/payments/:id/process", auth, h.ProcessPayment)

		api.GET("/maintenance", auth, maintainers, h.ListMaintenance)
		api.POST("/maintenance", auth, adminOnly, h.ScheduleMaintenance)
		api.PUT("/maintenance/:id/complete", auth, maintainers, h.CompleteMaintenance)

		api.GET("/dashboard/stats", auth, adminOnly, h.DashboardStats)
	}

	return r
}
