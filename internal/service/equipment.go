package service

import (
	"context"
	"fmt"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func (s *equipmentService) AddEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.Name == "" {
		return fmt.Errorf("equipment name is required: %w", domain.ErrInvalidArgument)
	}
	if eq.DailyRateCents <= 0 {
		return fmt.Errorf("daily rate must be positive: %w", domain.ErrInvalidArgument)
	}
	eq.Status = domain.EquipmentStatusAvailable
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.DailyRateCents <= 0 {
		return fmt.Errorf("daily rate must be positive: %w", domain.ErrInvalidArgument)
	}
	// Status is deliberately not updatable here; only the reservation and
	// maintenance paths move it.
	return s.equipmentRepo.Update(ctx, eq)
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id int32) error {
	return s.equipmentRepo.Delete(ctx, id)
}

func (s *equipmentService) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx, filter)
}
