package ports

import (
	"context"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// BookingRepository owns the append-only booking ledger. Historical entries
// are never deleted; the only mutation is the payment-confirmation
// transition.
type BookingRepository interface {
	Append(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListByUser returns the user's bookings in insertion order.
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	// ConfirmPayment atomically moves a pending booking to confirmed/paid.
	// Returns domain.ErrNotFound for unknown ids and
	// domain.ErrInvalidTransition when the booking is not pending.
	ConfirmPayment(ctx context.Context, id string) (*domain.Booking, error)
}
