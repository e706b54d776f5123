package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/mw"
)

// ListPayments handles GET /api/payments.
func (h *Handler) ListPayments(c *gin.Context) {
	userID, role := mw.Identity(c)
	items, err := h.paymentSvc.ListPayments(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.Payment{}
	}
	c.JSON(http.StatusOK, items)
}

// ProcessPayment handles POST /api/payments/:id/process.
func (h *Handler) ProcessPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.paymentSvc.ProcessPayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "payment processed successfully",
		"transaction_id": p.TransactionID,
	})
}
