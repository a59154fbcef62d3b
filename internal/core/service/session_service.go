package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sristi/brainark-core/internal/core/domain"
	"github.com/sristi/brainark-core/internal/core/ports"
)

// SessionService is the session facade: the single entry point presentation
// code calls. It composes the identity, booking and forum services, checks
// that mutating operations have an authenticated user, and raises a
// notification as a side effect of every mutating operation. All failures
// are recovered here; none are fatal and none leave partial state behind.
type SessionService struct {
	identity ports.IdentityService
	bookings ports.BookingService
	forum    ports.ForumService
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewSessionService(
	identity ports.IdentityService,
	bookings ports.BookingService,
	forum ports.ForumService,
	notifier ports.Notifier,
	log zerolog.Logger,
) *SessionService {
	return &SessionService{
		identity: identity,
		bookings: bookings,
		forum:    forum,
		notifier: notifier,
		log:      log,
	}
}

func (s *SessionService) Register(ctx context.Context, name, email, role string) (*domain.User, error) {
	user, err := s.identity.Register(ctx, ports.RegisterInput{Name: name, Email: email, Role: role})
	if err != nil {
		s.failure("Registration failed", err)
		return nil, err
	}

	s.success("Account created!", "Welcome to Sristi BrainArk.")
	return user, nil
}

func (s *SessionService) Login(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.identity.Login(ctx, email)
	if err != nil {
		s.failure("User not found", fmt.Errorf("please register first"))
		return nil, err
	}

	s.success("Welcome back!", fmt.Sprintf("Logged in as %s", user.Name))
	return user, nil
}

func (s *SessionService) Logout(ctx context.Context) {
	s.identity.Logout(ctx)
	s.success("Logged out", "See you soon!")
}

func (s *SessionService) Current() *domain.User {
	return s.identity.Current()
}

func (s *SessionService) IsAdmin() bool {
	u := s.identity.Current()
	return u != nil && u.Role == domain.RoleAdmin
}

func (s *SessionService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.identity.Users(ctx)
}

func (s *SessionService) CreateBooking(ctx context.Context, in ports.BookSessionInput) (*domain.Booking, error) {
	user := s.identity.Current()
	if user == nil {
		err := domain.ErrUnauthenticated
		s.failure("Please log in", fmt.Errorf("you need to be logged in to book a session"))
		return nil, err
	}

	booking, err := s.bookings.Create(ctx, ports.CreateBookingInput{
		UserID:     user.ID,
		Date:       in.Date,
		Time:       in.Time,
		ReportType: in.ReportType,
		Amount:     in.Amount,
	})
	if err != nil {
		s.failure("Booking failed", err)
		return nil, err
	}

	s.success("Booking received!", fmt.Sprintf("Session reserved for %s at %s. Complete payment to confirm.", booking.Date, booking.Time))
	return booking, nil
}

func (s *SessionService) MyBookings(ctx context.Context) ([]*domain.Booking, error) {
	user := s.identity.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.bookings.ListForUser(ctx, user.ID)
}

// Booking returns a booking with its owning user for the invoice and
// payment-handoff collaborators. Only the owner or an admin may read it.
func (s *SessionService) Booking(ctx context.Context, id string) (*domain.Booking, *domain.User, error) {
	current := s.identity.Current()
	if current == nil {
		return nil, nil, domain.ErrUnauthenticated
	}

	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if booking.UserID != current.ID && !s.IsAdmin() {
		return nil, nil, domain.ErrForbidden
	}

	owner := current
	if booking.UserID != current.ID {
		owner, err = s.identity.FindByID(ctx, booking.UserID)
		if err != nil {
			return nil, nil, err
		}
	}
	return booking, owner, nil
}

// AllBookings is the administrative review listing.
func (s *SessionService) AllBookings(ctx context.Context) ([]*domain.Booking, error) {
	if !s.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.bookings.ListAll(ctx)
}

func (s *SessionService) ConfirmPayment(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if !s.IsAdmin() {
		err := domain.ErrForbidden
		s.failure("Not allowed", fmt.Errorf("only an admin can confirm payments"))
		return nil, err
	}

	booking, err := s.bookings.ConfirmPayment(ctx, bookingID)
	if err != nil {
		s.failure("Payment confirmation failed", err)
		return nil, err
	}

	s.success("Payment confirmed", fmt.Sprintf("Booking for %s at %s is confirmed.", booking.Date, booking.Time))
	return booking, nil
}

func (s *SessionService) CreatePost(ctx context.Context, title, content, category string) (*domain.Post, error) {
	user := s.identity.Current()
	if user == nil {
		err := domain.ErrUnauthenticated
		s.failure("Please log in", fmt.Errorf("you need to be logged in to post"))
		return nil, err
	}

	post, err := s.forum.Create(ctx, ports.CreatePostInput{
		UserID:     user.ID,
		AuthorName: user.Name, // display-name snapshot at post time
		Title:      title,
		Content:    content,
		Category:   category,
	})
	if err != nil {
		s.failure("Could not publish post", err)
		return nil, err
	}

	s.success("Post published", "Your question is now live in the community.")
	return post, nil
}

func (s *SessionService) LikePost(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.forum.Like(ctx, postID)
	if err != nil {
		s.failure("Could not like post", err)
		return nil, err
	}

	s.success("Post liked", fmt.Sprintf("%q now has %d likes.", post.Title, post.Likes))
	return post, nil
}

func (s *SessionService) Posts(ctx context.Context, category string) ([]*domain.Post, error) {
	return s.forum.ListByCategory(ctx, category)
}

func (s *SessionService) success(title, description string) {
	s.notify(domain.Notification{Title: title, Description: description, Variant: domain.NotificationDefault})
}

func (s *SessionService) failure(title string, err error) {
	s.notify(domain.Notification{Title: title, Description: err.Error(), Variant: domain.NotificationDestructive})
}

func (s *SessionService) notify(n domain.Notification) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(n)
}
