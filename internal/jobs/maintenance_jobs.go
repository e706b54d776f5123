package jobs

import (
	"context"
	"time"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/logger"
)

// SendMaintenanceReminders emails technicians about maintenance scheduled
// within the next day. Email failures are logged and skipped.
func (jr *JobRunner) SendMaintenanceReminders() {
	jr.runWithRecovery("SendMaintenanceReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, 1).Format(domain.DateLayout)

		due, err := jr.maintenanceRepo.ListScheduledBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list upcoming maintenance", "error", err)
			return
		}

		sent := 0
		for i := range due {
			rec := &due[i]

			tech, err := jr.userRepo.GetByID(ctx, rec.TechnicianID)
			if err != nil {
				logger.Error("Failed to load technician", "maintenance_id", rec.ID, "technician_id", rec.TechnicianID, "error", err)
				continue
			}
			eq, err := jr.equipmentRepo.GetByID(ctx, rec.EquipmentID)
			if err != nil {
				logger.Error("Failed to load equipment", "maintenance_id", rec.ID, "equipment_id", rec.EquipmentID, "error", err)
				continue
			}

			scheduled := rec.ScheduledDate.Format(domain.DateLayout)
			if err := jr.emailSvc.SendMaintenanceReminder(ctx, tech.Email, tech.Name, eq.Name, scheduled); err != nil {
				logger.Error("Failed to send maintenance reminder", "maintenance_id", rec.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent maintenance reminders", "count", sent)
	})
}
