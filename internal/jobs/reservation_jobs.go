package jobs

import (
	"context"
	"time"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/logger"
)

// ReleaseExpiredReservations returns equipment whose APPROVED or PAID
// reservation has run past its end date back to AVAILABLE. Equipment in
// MAINTENANCE stays put until the maintenance record is completed.
func (jr *JobRunner) ReleaseExpiredReservations() {
	jr.runWithRecovery("ReleaseExpiredReservations", func() {
		ctx := context.Background()
		cutoff := time.Now().Format(domain.DateLayout)

		expired, err := jr.reservationRepo.ListExpiredActive(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list expired reservations", "error", err)
			return
		}

		released := 0
		for i := range expired {
			rsv := &expired[i]

			// The swap is conditional in storage, not read-then-write in
			// process: the cronjob runs as its own binary, and its lock
			// cannot serialize against the server's. Equipment in
			// MAINTENANCE, or re-rented since, fails the condition and
			// stays put.
			lock := jr.locks.Get(rsv.EquipmentID)
			lock.Lock()
			swapped, err := jr.equipmentRepo.CompareAndSwapStatus(ctx, rsv.EquipmentID, domain.EquipmentStatusRented, domain.EquipmentStatusAvailable)
			lock.Unlock()
			if err != nil {
				logger.Error("Failed to release equipment", "equipment_id", rsv.EquipmentID, "reservation_id", rsv.ID, "error", err)
				continue
			}
			if swapped {
				released++
			}

			logger.Debug("Checked expired reservation",
				"reservation_id", rsv.ID,
				"equipment_id", rsv.EquipmentID,
				"end_date", rsv.EndDate.Format(domain.DateLayout))
		}

		logger.Info("Released equipment from expired reservations", "count", released)
	})
}
