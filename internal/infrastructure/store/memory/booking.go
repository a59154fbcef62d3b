package memory

import (
	"context"
	"sync"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// BookingRepository is the in-memory append-only booking ledger.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Append(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *b
	next := make([]*domain.Booking, 0, len(r.bookings)+1)
	next = append(next, r.bookings...)
	next = append(next, &clone)
	r.bookings = next

	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BookingRepository) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *BookingRepository) ListAll(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		clone := *b
		out[i] = &clone
	}
	return out, nil
}

// ConfirmPayment applies the pending -> confirmed transition as a single
// check-and-replace under the write lock.
func (r *BookingRepository) ConfirmPayment(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID != id {
			continue
		}
		if b.Status != domain.BookingPending {
			return nil, domain.ErrInvalidTransition
		}

		updated := *b
		updated.Status = domain.BookingConfirmed
		updated.PaymentStatus = domain.PaymentPaid

		next := make([]*domain.Booking, len(r.bookings))
		copy(next, r.bookings)
		next[i] = &updated
		r.bookings = next

		clone := updated
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}
