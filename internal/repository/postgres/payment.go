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

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, reservation_id, amount_cents, method, status, transaction_id, created_on`

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (reservation_id, amount_cents, method, status, transaction_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.ReservationID, p.AmountCents, p.Method, p.Status, p.TransactionID, time.Now()).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), fmt.Sprintf("payment %d", id))
}

func (r *paymentRepository) GetByReservationID(ctx context.Context, reservationID int32) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE reservation_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, reservationID), fmt.Sprintf("payment for reservation %d", reservationID))
}

func (r *paymentRepository) Complete(ctx context.Context, id int32, transactionID string) error {
	query := `UPDATE payments SET status=$1, transaction_id=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, domain.PaymentStatusCompleted, transactionID, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

func (r *paymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_on DESC`
	return r.list(ctx, query)
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Payment, error) {
	query := `SELECT p.id, p.reservation_id, p.amount_cents, p.method, p.status, p.transaction_id, p.created_on
	          FROM payments p JOIN reservations rs ON rs.id = p.reservation_id
	          WHERE rs.user_id = $1 ORDER BY p.created_on DESC`
	return r.list(ctx, query, userID)
}

func (r *paymentRepository) SumCompleted(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE status = $1`, domain.PaymentStatusCompleted).Scan(&total)
	return total, err
}

func (r *paymentRepository) scanOne(row *sql.Row, what string) (*domain.Payment, error) {
	p := &domain.Payment{}
	var txnID sql.NullString
	err := row.Scan(&p.ID, &p.ReservationID, &p.AmountCents, &p.Method, &p.Status, &txnID, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	p.TransactionID = txnID.String
	return p, nil
}

func (r *paymentRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var txnID sql.NullString
		if err := rows.Scan(&p.ID, &p.ReservationID, &p.AmountCents, &p.Method, &p.Status, &txnID, &p.CreatedOn); err != nil {
			return nil, err
		}
		p.TransactionID = txnID.String
		out = append(out, p)
	}
	return out, rows.Err()
}
