package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/logger"
	"enginerent-backend/internal/repository"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	equipmentRepo   repository.EquipmentRepository
	paymentRepo     repository.PaymentRepository
	userRepo        repository.UserRepository
	emailSvc        EmailService
	locks           *KeyLock
	// strictAvailability makes equipment status gate reservation creation.
	// When false (the default), only the conflict scan gates creation and
	// status flips happen at approval time.
	strictAvailability bool
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	equipmentRepo repository.EquipmentRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	locks *KeyLock,
	strictAvailability bool,
) ReservationService {
	return &reservationService{
		reservationRepo:    reservationRepo,
		equipmentRepo:      equipmentRepo,
		paymentRepo:        paymentRepo,
		userRepo:           userRepo,
		emailSvc:           emailSvc,
		locks:              locks,
		strictAvailability: strictAvailability,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, userID, equipmentID int32, startDateStr, endDateStr string) (*domain.Reservation, error) {
	start, err := time.Parse(domain.DateLayout, startDateStr)
	if err != nil {
		return nil, fmt.Errorf("start date %q: %w", startDateStr, domain.ErrInvalidArgument)
	}
	end, err := time.Parse(domain.DateLayout, endDateStr)
	if err != nil {
		return nil, fmt.Errorf("end date %q: %w", endDateStr, domain.ErrInvalidArgument)
	}

	days := int32(end.Sub(start).Hours() / 24)
	if days < 1 {
		return nil, fmt.Errorf("end date must be at least one day after start date: %w", domain.ErrInvalidArgument)
	}

	lock := s.locks.Get(equipmentID)
	lock.Lock()
	defer lock.Unlock()

	// Status and rate are read under the lock so the availability gate and
	// the charge never run on a snapshot another writer has since changed.
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	if s.strictAvailability && eq.Status != domain.EquipmentStatusAvailable {
		return nil, fmt.Errorf("equipment %d is %s: %w", equipmentID, eq.Status, domain.ErrInvalidState)
	}

	active, err := s.reservationRepo.ListActiveByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	for i := range active {
		if active[i].Overlaps(start, end) {
			return nil, fmt.Errorf("equipment %d already reserved from %s to %s: %w",
				equipmentID,
				active[i].StartDate.Format(domain.DateLayout),
				active[i].EndDate.Format(domain.DateLayout),
				domain.ErrConflict)
		}
	}

	rsv := &domain.Reservation{
		UserID:           userID,
		EquipmentID:      equipmentID,
		StartDate:        start,
		EndDate:          end,
		TotalAmountCents: days * eq.DailyRateCents,
		Status:           domain.ReservationStatusPending,
	}
	if err := s.reservationRepo.Create(ctx, rsv); err != nil {
		return nil, err
	}

	// Notification failures never roll back the reservation.
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		if err := s.emailSvc.SendReservationCreated(ctx, user.Email, user.Name, eq.Name, rsv.TotalAmountCents); err != nil {
			logger.Warn("reservation confirmation email failed", "reservation_id", rsv.ID, "error", err)
		}
	}

	return rsv, nil
}

func (s *reservationService) ApproveReservation(ctx context.Context, reservationID int32) error {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	lock := s.locks.Get(rsv.EquipmentID)
	lock.Lock()
	defer lock.Unlock()

	// The pre-lock read only located the equipment lock. A concurrent
	// decision may have landed in the meantime, so the status check runs
	// on a fresh read taken under the lock.
	rsv, err = s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	switch rsv.Status {
	case domain.ReservationStatusPending:
		// proceed
	case domain.ReservationStatusApproved:
		// Re-running approval is a safe no-op, except that a crash between
		// the status writes and the payment insert is recovered here by
		// re-creating the missing payment keyed on the reservation.
		return s.ensurePayment(ctx, rsv)
	default:
		return fmt.Errorf("reservation %d is %s: %w", reservationID, rsv.Status, domain.ErrInvalidState)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationStatusApproved); err != nil {
		return err
	}
	if err := s.equipmentRepo.UpdateStatus(ctx, rsv.EquipmentID, domain.EquipmentStatusRented); err != nil {
		return err
	}
	if err := s.ensurePayment(ctx, rsv); err != nil {
		return err
	}

	s.notifyDecision(ctx, rsv, true)
	return nil
}

// ensurePayment creates the pending payment for an approved reservation if
// it does not exist yet. At most one payment ever exists per reservation.
func (s *reservationService) ensurePayment(ctx context.Context, rsv *domain.Reservation) error {
	_, err := s.paymentRepo.GetByReservationID(ctx, rsv.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.paymentRepo.Create(ctx, &domain.Payment{
		ReservationID: rsv.ID,
		AmountCents:   rsv.TotalAmountCents,
		Method:        domain.DefaultPaymentMethod,
		Status:        domain.PaymentStatusPending,
	})
}

func (s *reservationService) RejectReservation(ctx context.Context, reservationID int32) error {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	// Rejection leaves equipment status alone; a merely-pending reservation
	// never moved it out of AVAILABLE. The lock still serializes against
	// concurrent conflict scans reading the active set.
	lock := s.locks.Get(rsv.EquipmentID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; an approval may have raced the pre-lock read.
	rsv, err = s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	if rsv.Status != domain.ReservationStatusPending {
		return fmt.Errorf("reservation %d is %s: %w", reservationID, rsv.Status, domain.ErrInvalidState)
	}
	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationStatusRejected); err != nil {
		return err
	}

	s.notifyDecision(ctx, rsv, false)
	return nil
}

func (s *reservationService) ListReservations(ctx context.Context, userID int32, role domain.UserRole) ([]domain.Reservation, error) {
	if role == domain.UserRoleAdmin {
		return s.reservationRepo.ListAll(ctx)
	}
	return s.reservationRepo.ListByUser(ctx, userID)
}

func (s *reservationService) notifyDecision(ctx context.Context, rsv *domain.Reservation, approved bool) {
	user, err := s.userRepo.GetByID(ctx, rsv.UserID)
	if err != nil {
		return
	}
	eq, err := s.equipmentRepo.GetByID(ctx, rsv.EquipmentID)
	if err != nil {
		return
	}
	if err := s.emailSvc.SendReservationDecision(ctx, user.Email, user.Name, eq.Name, approved); err != nil {
		logger.Warn("reservation decision email failed", "reservation_id", rsv.ID, "error", err)
	}
}
