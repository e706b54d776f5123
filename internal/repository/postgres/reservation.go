package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, user_id, equipment_id, start_date, end_date, total_amount_cents, status, created_on, updated_on`

func (r *reservationRepository) Create(ctx context.Context, rsv *domain.Reservation) error {
	query := `INSERT INTO reservations (user_id, equipment_id, start_date, end_date, total_amount_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, rsv.UserID, rsv.EquipmentID, rsv.StartDate, rsv.EndDate, rsv.TotalAmountCents, rsv.Status, now, now).Scan(&rsv.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rsv := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rsv.ID, &rsv.UserID, &rsv.EquipmentID, &rsv.StartDate, &rsv.EndDate, &rsv.TotalAmountCents, &rsv.Status, &rsv.CreatedOn, &rsv.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rsv, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reservations SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

func (r *reservationRepository) ListActiveByEquipment(ctx context.Context, equipmentID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE equipment_id = $1 AND status IN ($2, $3)`
	return r.list(ctx, query, equipmentID, domain.ReservationStatusPending, domain.ReservationStatusApproved)
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, userID)
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_on DESC`
	return r.list(ctx, query)
}

func (r *reservationRepository) ListExpiredActive(ctx context.Context, cutoff string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status IN ($1, $2) AND end_date <= $3`
	return r.list(ctx, query, domain.ReservationStatusApproved, domain.ReservationStatusPaid, cutoff)
}

func (r *reservationRepository) CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM reservations GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ReservationStatus]int32)
	for rows.Next() {
		var status domain.ReservationStatus
		var n int32
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *reservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var rsv domain.Reservation
		if err := rows.Scan(&rsv.ID, &rsv.UserID, &rsv.EquipmentID, &rsv.StartDate, &rsv.EndDate, &rsv.TotalAmountCents, &rsv.Status, &rsv.CreatedOn, &rsv.UpdatedOn); err != nil {
			return nil, err
		}
		out = append(out, rsv)
	}
	return out, rows.Err()
}
