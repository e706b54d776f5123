package domain

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled MaintenanceStatus = "SCHEDULED"
	MaintenanceStatusCompleted MaintenanceStatus = "COMPLETED"
)

// MaintenanceRecord marks a service window for one piece of equipment.
// Scheduling forces the equipment into MAINTENANCE; completion restores
// AVAILABLE.
type MaintenanceRecord struct {
	ID            int32             `json:"id"`
	EquipmentID   int32             `json:"equipment_id"`
	Type          string            `json:"type"`
	Description   string            `json:"description"`
	ScheduledDate time.Time         `json:"scheduled_date"`
	CompletedDate *time.Time        `json:"completed_date,omitempty"`
	TechnicianID  int32             `json:"technician_id"`
	Status        MaintenanceStatus `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CreatedOn     time.Time         `json:"created_on"`
}
