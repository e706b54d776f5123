package service

import (
	"context"
	"fmt"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/repository"

	"github.com/google/uuid"
)

type paymentService struct {
	paymentRepo     repository.PaymentRepository
	reservationRepo repository.ReservationRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, reservationRepo repository.ReservationRepository) PaymentService {
	return &paymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
	}
}

func (s *paymentService) ProcessPayment(ctx context.Context, paymentID int32) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.PaymentStatusCompleted {
		return nil, fmt.Errorf("payment %d already completed: %w", paymentID, domain.ErrInvalidState)
	}

	txnID := "txn_" + uuid.NewString()
	if err := s.paymentRepo.Complete(ctx, paymentID, txnID); err != nil {
		return nil, err
	}

	// Completion reconciles the reservation into its PAID terminal state.
	if err := s.reservationRepo.UpdateStatus(ctx, p.ReservationID, domain.ReservationStatusPaid); err != nil {
		return nil, err
	}

	p.Status = domain.PaymentStatusCompleted
	p.TransactionID = txnID
	return p, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID int32, role domain.UserRole) ([]domain.Payment, error) {
	if role == domain.UserRoleAdmin {
		return s.paymentRepo.ListAll(ctx)
	}
	return s.paymentRepo.ListByUser(ctx, userID)
}
