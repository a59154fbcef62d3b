package ports

import (
	"context"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// CreateBookingInput carries all data needed to reserve a profiling session.
type CreateBookingInput struct {
	UserID     string
	Date       string // calendar date, domain.DateFormat layout
	Time       string // one of domain.TimeSlots
	ReportType string
	// Amount is accepted as a caller convenience only. When non-zero it must
	// equal the price-table value for the report type; mismatches fail.
	Amount int
}

// BookingService implements the booking ledger use cases.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	// ConfirmPayment is the single status transition: pending -> confirmed,
	// triggered when the out-of-band payment is confirmed.
	ConfirmPayment(ctx context.Context, id string) (*domain.Booking, error)
}
