package api

import (
	"context"

	"enginerent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name, phone, address string, role domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, email, password, name, phone, address, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) AddEquipment(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) UpdateEquipment(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentService) DeleteEquipment(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentService) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) CreateReservation(ctx context.Context, userID, equipmentID int32, startDate, endDate string) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, equipmentID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ApproveReservation(ctx context.Context, reservationID int32) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}
func (m *MockReservationService) RejectReservation(ctx context.Context, reservationID int32) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}
func (m *MockReservationService) ListReservations(ctx context.Context, userID int32, role domain.UserRole) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID, role)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ProcessPayment(ctx context.Context, paymentID int32) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ListPayments(ctx context.Context, userID int32, role domain.UserRole) ([]domain.Payment, error) {
	args := m.Called(ctx, userID, role)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) ScheduleMaintenance(ctx context.Context, equipmentID int32, mType, description, scheduledDate string, technicianID int32) (*domain.MaintenanceRecord, error) {
	args := m.Called(ctx, equipmentID, mType, description, scheduledDate, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceService) CompleteMaintenance(ctx context.Context, maintenanceID int32, notes string) error {
	args := m.Called(ctx, maintenanceID, notes)
	return args.Error(0)
}
func (m *MockMaintenanceService) ListMaintenance(ctx context.Context, userID int32, role domain.UserRole) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx, userID, role)
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
