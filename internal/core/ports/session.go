package ports

import (
	"context"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// Notifier receives the user-facing notifications the session facade raises
// as a side effect of each operation.
type Notifier interface {
	Notify(n domain.Notification)
}

// BookSessionInput is the facade-level booking request; the user is taken
// from the current session.
type BookSessionInput struct {
	Date       string
	Time       string
	ReportType string
	Amount     int // optional, must match the price table when non-zero
}

// Session is the single entry point presentation code calls. It composes the
// identity, booking and forum services, enforces that mutating operations
// require an authenticated user, and raises notifications as side effects.
type Session interface {
	Register(ctx context.Context, name, email, role string) (*domain.User, error)
	Login(ctx context.Context, email string) (*domain.User, error)
	Logout(ctx context.Context)
	Current() *domain.User
	// IsAdmin reports whether the current user holds the admin role. This is
	// advisory authorization for a trusted single-process client, not a
	// security boundary.
	IsAdmin() bool
	Users(ctx context.Context) ([]*domain.User, error)

	CreateBooking(ctx context.Context, in BookSessionInput) (*domain.Booking, error)
	MyBookings(ctx context.Context) ([]*domain.Booking, error)
	// Booking returns a booking together with its owning user, for the
	// invoice and payment-handoff collaborators. Only the owner or an admin
	// may read it.
	Booking(ctx context.Context, id string) (*domain.Booking, *domain.User, error)
	AllBookings(ctx context.Context) ([]*domain.Booking, error)
	ConfirmPayment(ctx context.Context, bookingID string) (*domain.Booking, error)

	CreatePost(ctx context.Context, title, content, category string) (*domain.Post, error)
	LikePost(ctx context.Context, postID string) (*domain.Post, error)
	Posts(ctx context.Context, category string) ([]*domain.Post, error)
}
