package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusRented      EquipmentStatus = "RENTED"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// Equipment is a rentable machine. Status is written only by the
// reservation and maintenance services, never by equipment CRUD.
type Equipment struct {
	ID             int32           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand"`
	DailyRateCents int32           `json:"daily_rate_cents"`
	Location       string          `json:"location"`
	Status         EquipmentStatus `json:"status"`
	CreatedOn      time.Time       `json:"created_on"`
}

// EquipmentFilter narrows equipment listings. Zero values mean "no filter".
type EquipmentFilter struct {
	Category string
	Brand    string
	Status   string
	Location string
	Search   string
}
