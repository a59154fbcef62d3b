package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sristi/brainark-core/internal/api/metrics"
	"github.com/sristi/brainark-core/internal/core/domain"
	"github.com/sristi/brainark-core/internal/core/ports"
)

// SubmissionGuard abstracts the duplicate-submission window (Redis). A
// second identical booking submission inside the window is rejected.
type SubmissionGuard interface {
	IsDuplicate(ctx context.Context, userID, date, slot string) (bool, error)
	Mark(ctx context.Context, userID, date, slot string) error
}

// BookingService implements the append-only booking ledger use cases.
type BookingService struct {
	repo  ports.BookingRepository
	users ports.IdentityRepository
	guard SubmissionGuard // optional; nil disables the check
	log   zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, users ports.IdentityRepository, guard SubmissionGuard, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, users: users, guard: guard, log: log}
}

// Create validates the request, derives the amount from the price table and
// appends a pending booking to the ledger. Payment confirmation happens
// out-of-band; see ConfirmPayment.
func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	if in.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must use the %s layout", domain.ErrValidation, domain.DateFormat)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, fmt.Errorf("%w: date must not be in the past", domain.ErrValidation)
	}

	if !domain.ValidSlot(in.Time) {
		return nil, fmt.Errorf("%w: unknown time slot %q", domain.ErrValidation, in.Time)
	}

	reportType := domain.ReportType(in.ReportType)
	amount, ok := domain.PriceFor(reportType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown report type %q", domain.ErrValidation, in.ReportType)
	}
	if in.Amount != 0 && in.Amount != amount {
		return nil, fmt.Errorf("%w: amount %d does not match the %s price %d", domain.ErrValidation, in.Amount, reportType, amount)
	}

	if s.guard != nil {
		dup, err := s.guard.IsDuplicate(ctx, in.UserID, in.Date, in.Time)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("submission guard check failed, proceeding")
		} else if dup {
			return nil, fmt.Errorf("%w: an identical booking was just submitted", domain.ErrValidation)
		}
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		Date:          in.Date,
		Time:          in.Time,
		ReportType:    reportType,
		Amount:        amount,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, booking); err != nil {
		s.log.Error().Err(err).Msg("failed to append booking")
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard.Mark(ctx, in.UserID, in.Date, in.Time); err != nil {
			s.log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to set submission guard key")
		}
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(reportType)).Inc()
	s.log.Info().
		Str("booking_id", booking.ID).
		Str("user_id", booking.UserID).
		Str("report_type", string(reportType)).
		Int("amount", amount).
		Msg("booking created")

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *BookingService) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.ListAll(ctx)
}

// ConfirmPayment applies the single status transition of the ledger:
// pending -> confirmed, with the payment marked paid.
func (s *BookingService) ConfirmPayment(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.repo.ConfirmPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.PaymentsConfirmedTotal.Inc()
	s.log.Info().Str("booking_id", booking.ID).Msg("payment confirmed")
	return booking, nil
}
