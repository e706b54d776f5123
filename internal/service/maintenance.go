package service

import (
	"context"
	"fmt"
	"time"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/repository"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	equipmentRepo   repository.EquipmentRepository
	locks           *KeyLock
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	equipmentRepo repository.EquipmentRepository,
	locks *KeyLock,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		locks:           locks,
	}
}

func (s *maintenanceService) ScheduleMaintenance(ctx context.Context, equipmentID int32, mType, description, scheduledDateStr string, technicianID int32) (*domain.MaintenanceRecord, error) {
	scheduled, err := time.Parse(domain.DateLayout, scheduledDateStr)
	if err != nil {
		return nil, fmt.Errorf("scheduled date %q: %w", scheduledDateStr, domain.ErrInvalidArgument)
	}

	if _, err := s.equipmentRepo.GetByID(ctx, equipmentID); err != nil {
		return nil, err
	}

	lock := s.locks.Get(equipmentID)
	lock.Lock()
	defer lock.Unlock()

	rec := &domain.MaintenanceRecord{
		EquipmentID:   equipmentID,
		Type:          mType,
		Description:   description,
		ScheduledDate: scheduled,
		TechnicianID:  technicianID,
		Status:        domain.MaintenanceStatusScheduled,
	}
	if err := s.maintenanceRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	// Scheduling forces MAINTENANCE regardless of active reservations.
	if err := s.equipmentRepo.UpdateStatus(ctx, equipmentID, domain.EquipmentStatusMaintenance); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *maintenanceService) CompleteMaintenance(ctx context.Context, maintenanceID int32, notes string) error {
	rec, err := s.maintenanceRepo.GetByID(ctx, maintenanceID)
	if err != nil {
		return err
	}
	if rec.Status != domain.MaintenanceStatusScheduled {
		return fmt.Errorf("maintenance record %d is %s: %w", maintenanceID, rec.Status, domain.ErrInvalidState)
	}

	lock := s.locks.Get(rec.EquipmentID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.maintenanceRepo.Complete(ctx, maintenanceID, notes); err != nil {
		return err
	}

	// Completion restores AVAILABLE unconditionally, whatever state a
	// reservation may have left the equipment in.
	return s.equipmentRepo.UpdateStatus(ctx, rec.EquipmentID, domain.EquipmentStatusAvailable)
}

func (s *maintenanceService) ListMaintenance(ctx context.Context, userID int32, role domain.UserRole) ([]domain.MaintenanceRecord, error) {
	switch role {
	case domain.UserRoleAdmin:
		return s.maintenanceRepo.ListAll(ctx)
	case domain.UserRoleTechnician:
		return s.maintenanceRepo.ListByTechnician(ctx, userID)
	default:
		return nil, fmt.Errorf("role %s may not view maintenance records: %w", role, domain.ErrForbidden)
	}
}
