package service

import (
	"context"
	"testing"

	"enginerent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessPayment(t *testing.T) {
	payRepo := new(MockPaymentRepo)
	rsvRepo := new(MockReservationRepo)
	svc := NewPaymentService(payRepo, rsvRepo)

	payRepo.On("GetByID", mock.Anything, int32(11)).Return(&domain.Payment{
		ID: 11, ReservationID: 5, AmountCents: 50000, Status: domain.PaymentStatusPending,
	}, nil)
	payRepo.On("Complete", mock.Anything, int32(11), mock.MatchedBy(func(txn string) bool {
		return len(txn) > 4 && txn[:4] == "txn_"
	})).Return(nil)
	rsvRepo.On("UpdateStatus", mock.Anything, int32(5), domain.ReservationStatusPaid).Return(nil)

	p, err := svc.ProcessPayment(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
	assert.NotEmpty(t, p.TransactionID)
	rsvRepo.AssertExpectations(t)
}

func TestProcessPayment_AlreadyCompleted(t *testing.T) {
	payRepo := new(MockPaymentRepo)
	rsvRepo := new(MockReservationRepo)
	svc := NewPaymentService(payRepo, rsvRepo)

	payRepo.On("GetByID", mock.Anything, int32(11)).Return(&domain.Payment{
		ID: 11, ReservationID: 5, Status: domain.PaymentStatusCompleted, TransactionID: "txn_x",
	}, nil)

	_, err := svc.ProcessPayment(context.Background(), 11)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	payRepo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	rsvRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessPayment_NotFound(t *testing.T) {
	payRepo := new(MockPaymentRepo)
	rsvRepo := new(MockReservationRepo)
	svc := NewPaymentService(payRepo, rsvRepo)

	payRepo.On("GetByID", mock.Anything, int32(99)).Return(nil, domain.ErrNotFound)

	_, err := svc.ProcessPayment(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPayments_RoleScoping(t *testing.T) {
	payRepo := new(MockPaymentRepo)
	rsvRepo := new(MockReservationRepo)
	svc := NewPaymentService(payRepo, rsvRepo)

	payRepo.On("ListAll", mock.Anything).Return([]domain.Payment{{ID: 1}, {ID: 2}}, nil)
	payRepo.On("ListByUser", mock.Anything, int32(3)).Return([]domain.Payment{{ID: 2}}, nil)

	all, err := svc.ListPayments(context.Background(), 3, domain.UserRoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListPayments(context.Background(), 3, domain.UserRoleClient)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}
