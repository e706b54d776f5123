package service

import (
	"context"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/repository"
)

type adminService struct {
	equipmentRepo   repository.EquipmentRepository
	reservationRepo repository.ReservationRepository
	paymentRepo     repository.PaymentRepository
}

func NewAdminService(
	equipmentRepo repository.EquipmentRepository,
	reservationRepo repository.ReservationRepository,
	paymentRepo repository.PaymentRepository,
) AdminService {
	return &adminService{
		equipmentRepo:   equipmentRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	eqCounts, err := s.equipmentRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.Equipment.Available = eqCounts[domain.EquipmentStatusAvailable]
	stats.Equipment.Rented = eqCounts[domain.EquipmentStatusRented]
	stats.Equipment.Maintenance = eqCounts[domain.EquipmentStatusMaintenance]
	for _, n := range eqCounts {
		stats.Equipment.Total += n
	}

	rsvCounts, err := s.reservationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.Reservations.Pending = rsvCounts[domain.ReservationStatusPending]
	stats.Reservations.Approved = rsvCounts[domain.ReservationStatusApproved]
	for _, n := range rsvCounts {
		stats.Reservations.Total += n
	}

	revenue, err := s.paymentRepo.SumCompleted(ctx)
	if err != nil {
		return nil, err
	}
	stats.RevenueCents = revenue

	return stats, nil
}
