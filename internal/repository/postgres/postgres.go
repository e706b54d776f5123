package postgres

import (
	"database/sql"

	"enginerent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EquipmentRepository
	repository.ReservationRepository
	repository.PaymentRepository
	repository.MaintenanceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		EquipmentRepository:   NewEquipmentRepository(db),
		ReservationRepository: NewReservationRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
	}
}
