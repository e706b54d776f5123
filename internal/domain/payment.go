package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// DefaultPaymentMethod is recorded on payments created at approval time.
const DefaultPaymentMethod = "card"

// Payment is created only as a side effect of reservation approval,
// exactly one per reservation.
type Payment struct {
	ID            int32         `json:"id"`
	ReservationID int32         `json:"reservation_id"`
	AmountCents   int32         `json:"amount_cents"`
	Method        string        `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
}
