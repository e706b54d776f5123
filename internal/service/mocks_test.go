package service

import (
	"context"

	"enginerent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockEquipmentRepo) CompareAndSwapStatus(ctx context.Context, id int32, from, to domain.EquipmentStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) CountByStatus(ctx context.Context) (map[domain.EquipmentStatus]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.EquipmentStatus]int32), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, rsv *domain.Reservation) error {
	args := m.Called(ctx, rsv)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockReservationRepo) ListActiveByEquipment(ctx context.Context, equipmentID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListExpiredActive(ctx context.Context, cutoff string) ([]domain.Reservation, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.ReservationStatus]int32), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetByReservationID(ctx context.Context, reservationID int32) (*domain.Payment, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Complete(ctx context.Context, id int32, transactionID string) error {
	args := m.Called(ctx, id, transactionID)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListAll(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) SumCompleted(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, rec *domain.MaintenanceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceRepo) Complete(ctx context.Context, id int32, notes string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListAll(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceRepo) ListByTechnician(ctx context.Context, technicianID int32) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx, technicianID)
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceRepo) ListScheduledBefore(ctx context.Context, cutoff string) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationCreated(ctx context.Context, email, name, equipmentName string, amountCents int32) error {
	args := m.Called(ctx, email, name, equipmentName, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationDecision(ctx context.Context, email, name, equipmentName string, approved bool) error {
	args := m.Called(ctx, email, name, equipmentName, approved)
	return args.Error(0)
}
func (m *MockEmailService) SendMaintenanceReminder(ctx context.Context, email, name, equipmentName, scheduledDate string) error {
	args := m.Called(ctx, email, name, equipmentName, scheduledDate)
	return args.Error(0)
}
