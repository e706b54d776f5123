package repository

import (
	"context"

	"enginerent-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error
	// CompareAndSwapStatus sets the status to "to" only if it currently
	// equals "from", reporting whether the swap happened. The condition is
	// evaluated in storage, so it holds across processes.
	CompareAndSwapStatus(ctx context.Context, id int32, from, to domain.EquipmentStatus) (bool, error)
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	CountByStatus(ctx context.Context) (map[domain.EquipmentStatus]int32, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, rsv *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error
	// ListActiveByEquipment returns reservations in PENDING or APPROVED
	// status for the given equipment. The conflict scan runs over this set.
	ListActiveByEquipment(ctx context.Context, equipmentID int32) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	// ListExpiredActive returns APPROVED or PAID reservations whose end date
	// is on or before the given date string (YYYY-MM-DD).
	ListExpiredActive(ctx context.Context, cutoff string) ([]domain.Reservation, error)
	CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int32, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	GetByReservationID(ctx context.Context, reservationID int32) (*domain.Payment, error)
	Complete(ctx context.Context, id int32, transactionID string) error
	ListAll(ctx context.Context) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Payment, error)
	SumCompleted(ctx context.Context) (int64, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.MaintenanceRecord) error
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceRecord, error)
	Complete(ctx context.Context, id int32, notes string) error
	ListAll(ctx context.Context) ([]domain.MaintenanceRecord, error)
	ListByTechnician(ctx context.Context, technicianID int32) ([]domain.MaintenanceRecord, error)
	// ListScheduledBefore returns SCHEDULED records whose scheduled date is
	// on or before the given date string (YYYY-MM-DD).
	ListScheduledBefore(ctx context.Context, cutoff string) ([]domain.MaintenanceRecord, error)
}
