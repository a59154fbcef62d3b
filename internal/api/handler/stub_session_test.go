package handler

import (
	"context"

	"github.com/sristi/brainark-core/internal/core/domain"
	"github.com/sristi/brainark-core/internal/core/ports"
)

// stubSession scripts the session facade for handler tests.
type stubSession struct {
	registerFn       func(ctx context.Context, name, email, role string) (*domain.User, error)
	loginFn          func(ctx context.Context, email string) (*domain.User, error)
	current          *domain.User
	loggedOut        bool
	createBookingFn  func(ctx context.Context, in ports.BookSessionInput) (*domain.Booking, error)
	myBookingsFn     func(ctx context.Context) ([]*domain.Booking, error)
	bookingFn        func(ctx context.Context, id string) (*domain.Booking, *domain.User, error)
	allBookingsFn    func(ctx context.Context) ([]*domain.Booking, error)
	confirmPaymentFn func(ctx context.Context, id string) (*domain.Booking, error)
	createPostFn     func(ctx context.Context, title, content, category string) (*domain.Post, error)
	likePostFn       func(ctx context.Context, id string) (*domain.Post, error)
	postsFn          func(ctx context.Context, category string) ([]*domain.Post, error)
}

func (s *stubSession) Register(ctx context.Context, name, email, role string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, role)
}

func (s *stubSession) Login(ctx context.Context, email string) (*domain.User, error) {
	return s.loginFn(ctx, email)
}

func (s *stubSession) Logout(context.Context) { s.loggedOut = true }

func (s *stubSession) Current() *domain.User { return s.current }

func (s *stubSession) IsAdmin() bool {
	return s.current != nil && s.current.Role == domain.RoleAdmin
}

func (s *stubSession) Users(context.Context) ([]*domain.User, error) { return nil, nil }

func (s *stubSession) CreateBooking(ctx context.Context, in ports.BookSessionInput) (*domain.Booking, error) {
	return s.createBookingFn(ctx, in)
}

func (s *stubSession) MyBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.myBookingsFn(ctx)
}

func (s *stubSession) Booking(ctx context.Context, id string) (*domain.Booking, *domain.User, error) {
	return s.bookingFn(ctx, id)
}

func (s *stubSession) AllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.allBookingsFn(ctx)
}

func (s *stubSession) ConfirmPayment(ctx context.Context, id string) (*domain.Booking, error) {
	return s.confirmPaymentFn(ctx, id)
}

func (s *stubSession) CreatePost(ctx context.Context, title, content, category string) (*domain.Post, error) {
	return s.createPostFn(ctx, title, content, category)
}

func (s *stubSession) LikePost(ctx context.Context, id string) (*domain.Post, error) {
	return s.likePostFn(ctx, id)
}

func (s *stubSession) Posts(ctx context.Context, category string) ([]*domain.Post, error) {
	return s.postsFn(ctx, category)
}
