package service

import (
	"context"

	"enginerent-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name, phone, address string, role domain.UserRole) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, eq *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id int32) error
	ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, userID, equipmentID int32, startDate, endDate string) (*domain.Reservation, error)
	ApproveReservation(ctx context.Context, reservationID int32) error
	RejectReservation(ctx context.Context, reservationID int32) error
	ListReservations(ctx context.Context, userID int32, role domain.UserRole) ([]domain.Reservation, error)
}

type PaymentService interface {
	ProcessPayment(ctx context.Context, paymentID int32) (*domain.Payment, error)
	ListPayments(ctx context.Context, userID int32, role domain.UserRole) ([]domain.Payment, error)
}

type MaintenanceService interface {
	ScheduleMaintenance(ctx context.Context, equipmentID int32, mType, description, scheduledDate string, technicianID int32) (*domain.MaintenanceRecord, error)
	CompleteMaintenance(ctx context.Context, maintenanceID int32, notes string) error
	ListMaintenance(ctx context.Context, userID int32, role domain.UserRole) ([]domain.MaintenanceRecord, error)
}

type AdminService interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type EmailService interface {
	SendReservationCreated(ctx context.Context, email, name, equipmentName string, amountCents int32) error
	SendReservationDecision(ctx context.Context, email, name, equipmentName string, approved bool) error
	SendMaintenanceReminder(ctx context.Context, email, name, equipmentName, scheduledDate string) error
}
