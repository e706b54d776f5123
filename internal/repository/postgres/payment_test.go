package postgres

import (
	"context"
	"testing"
	"time"

	"enginerent-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentCols = []string{"id", "reservation_id", "amount_cents", "method", "status", "transaction_id", "created_on"}

func TestPaymentCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentRepository(db)
	p := &domain.Payment{
		ReservationID: 5,
		AmountCents:   50000,
		Method:        domain.DefaultPaymentMethod,
		Status:        domain.PaymentStatusPending,
	}

	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(p.ReservationID, p.AmountCents, p.Method, p.Status, p.TransactionID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err = repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int32(11), p.ID)
}

func TestPaymentGetByReservationID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE reservation_id").
		WithArgs(int32(5)).
		WillReturnRows(sqlmock.NewRows(paymentCols).
			AddRow(11, 5, 50000, "card", "PENDING", nil, time.Now()))

	p, err := repo.GetByReservationID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int32(11), p.ID)
	// NULL transaction_id comes back as empty string.
	assert.Empty(t, p.TransactionID)
}

func TestPaymentGetByReservationID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE reservation_id").
		WithArgs(int32(99)).
		WillReturnRows(sqlmock.NewRows(paymentCols))

	_, err = repo.GetByReservationID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPaymentComplete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentRepository(db)

	mock.ExpectExec("UPDATE payments SET status").
		WithArgs(domain.PaymentStatusCompleted, "txn_abc", int32(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Complete(context.Background(), 11, "txn_abc")
	require.NoError(t, err)
}

func TestPaymentSumCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentRepository(db)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(domain.PaymentStatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(125000))

	total, err := repo.SumCompleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(125000), total)
}
