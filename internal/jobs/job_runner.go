package jobs

import (
	"enginerent-backend/internal/config"
	"enginerent-backend/internal/logger"
	"enginerent-backend/internal/repository"
	"enginerent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	equipmentRepo   repository.EquipmentRepository
	reservationRepo repository.ReservationRepository
	maintenanceRepo repository.MaintenanceRepository
	userRepo        repository.UserRepository
	emailSvc        service.EmailService
	locks           *service.KeyLock
	config          *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	equipmentRepo repository.EquipmentRepository,
	reservationRepo repository.ReservationRepository,
	maintenanceRepo repository.MaintenanceRepository,
	userRepo repository.UserRepository,
	emailSvc service.EmailService,
	locks *service.KeyLock,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		equipmentRepo:   equipmentRepo,
		reservationRepo: reservationRepo,
		maintenanceRepo: maintenanceRepo,
		userRepo:        userRepo,
		emailSvc:        emailSvc,
		locks:           locks,
		config:          cfg,
	}
}

// Config exposes the loaded configuration for schedule registration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReleaseExpiredReservations()
	jr.SendMaintenanceReminders()
}
