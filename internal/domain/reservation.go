package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending  ReservationStatus = "PENDING"
	ReservationStatusApproved ReservationStatus = "APPROVED"
	ReservationStatusRejected ReservationStatus = "REJECTED"
	ReservationStatusPaid     ReservationStatus = "PAID"
)

// DateLayout is the wire format for reservation and maintenance dates.
// Duration math is day-granular; intervals are half-open [start, end).
const DateLayout = "2006-01-02"

// Reservation books one piece of equipment for a half-open date interval.
// For any equipment id, reservations in PENDING or APPROVED status must
// have pairwise-disjoint intervals.
type Reservation struct {
	ID               int32             `json:"id"`
	UserID           int32             `json:"user_id"`
	EquipmentID      int32             `json:"equipment_id"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	TotalAmountCents int32             `json:"total_amount_cents"`
	Status           ReservationStatus `json:"status"`
	CreatedOn        time.Time         `json:"created_on"`
	UpdatedOn        time.Time         `json:"updated_on"`
}

// Active reports whether the reservation still holds its interval on the
// equipment calendar.
func (r *Reservation) Active() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusApproved
}

// Overlaps tests half-open interval overlap against [start, end).
// Touching endpoints (one reservation ending the day another starts) do
// not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && start.Before(r.EndDate)
}
