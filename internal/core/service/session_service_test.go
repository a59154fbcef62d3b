package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sristi/brainark-core/internal/core/domain"
	"github.com/sristi/brainark-core/internal/core/ports"
	"github.com/sristi/brainark-core/internal/infrastructure/store/memory"
)

// captureNotifier records notifications synchronously so tests can assert
// on the feedback a user would see.
type captureNotifier struct {
	got []domain.Notification
}

func (n *captureNotifier) Notify(notification domain.Notification) {
	n.got = append(n.got, notification)
}

func (n *captureNotifier) last(t *testing.T) domain.Notification {
	t.Helper()
	if len(n.got) == 0 {
		t.Fatalf("expected at least one notification")
	}
	return n.got[len(n.got)-1]
}

func newSessionFixture() (*SessionService, *captureNotifier) {
	log := zerolog.Nop()
	users := memory.NewIdentityRepository()
	identity := NewIdentityService(users, log)
	bookings := NewBookingService(memory.NewBookingRepository(), users, nil, log)
	forum := NewForumService(memory.NewForumRepository(), log)
	notifier := &captureNotifier{}
	return NewSessionService(identity, bookings, forum, notifier, log), notifier
}

func registerParent(t *testing.T, s *SessionService) *domain.User {
	t.Helper()
	user, err := s.Register(context.Background(), "Rahul Sharma", "rahul@example.com", domain.RoleParent)
	if err != nil {
		t.Fatalf("register parent: %v", err)
	}
	return user
}

func registerAdmin(t *testing.T, s *SessionService) *domain.User {
	t.Helper()
	user, err := s.Register(context.Background(), "Admin User", "admin@sristi.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	return user
}

func nextMonday() string {
	d := time.Now().UTC().AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(domain.DateFormat)
}

func TestSessionService_BookingFlow(t *testing.T) {
	session, notifier := newSessionFixture()
	ctx := context.Background()

	registerParent(t, session)
	if n := notifier.last(t); n.Title != "Account created!" || n.Variant != domain.NotificationDefault {
		t.Fatalf("unexpected registration notification: %+v", n)
	}

	booking, err := session.CreateBooking(ctx, ports.BookSessionInput{
		Date: nextMonday(), Time: "10:00 AM", ReportType: "Child",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.Amount != 3000 {
		t.Fatalf("expected child report priced at 3000, got %d", booking.Amount)
	}
	if booking.Status != domain.BookingPending || booking.PaymentStatus != domain.PaymentUnpaid {
		t.Fatalf("expected pending/unpaid, got %s/%s", booking.Status, booking.PaymentStatus)
	}
	if n := notifier.last(t); n.Title != "Booking received!" {
		t.Fatalf("unexpected booking notification: %+v", n)
	}

	mine, err := session.MyBookings(ctx)
	if err != nil {
		t.Fatalf("MyBookings: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != booking.ID {
		t.Fatalf("expected the new booking in my list, got %+v", mine)
	}
}

func TestSessionService_CreateBooking_RequiresLogin(t *testing.T) {
	session, notifier := newSessionFixture()

	_, err := session.CreateBooking(context.Background(), ports.BookSessionInput{
		Date: nextMonday(), Time: "10:00 AM", ReportType: "Child",
	})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if n := notifier.last(t); n.Variant != domain.NotificationDestructive {
		t.Fatalf("expected destructive notification, got %+v", n)
	}
}

func TestSessionService_CreatePost_RequiresLogin(t *testing.T) {
	session, notifier := newSessionFixture()
	ctx := context.Background()

	_, err := session.CreatePost(ctx, "a question", "some content", "General")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if n := notifier.last(t); n.Variant != domain.NotificationDestructive {
		t.Fatalf("expected destructive notification, got %+v", n)
	}

	posts, err := session.Posts(ctx, "")
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("rejected post must not reach the board, got %+v", posts)
	}
}

func TestSessionService_CreatePost_SnapshotsAuthorName(t *testing.T) {
	session, _ := newSessionFixture()
	ctx := context.Background()

	user := registerParent(t, session)
	post, err := session.CreatePost(ctx, "which stream after 10th?", "science or commerce", "Stream Selection")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.AuthorName != user.Name || post.UserID != user.ID {
		t.Fatalf("expected post attributed to %s, got %+v", user.Name, post)
	}
}

func TestSessionService_AdminGates(t *testing.T) {
	session, _ := newSessionFixture()
	ctx := context.Background()

	registerParent(t, session)
	if session.IsAdmin() {
		t.Fatalf("parent must not be admin")
	}
	if _, err := session.AllBookings(ctx); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin listing, got %v", err)
	}
	if _, err := session.ConfirmPayment(ctx, "anything"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin confirm, got %v", err)
	}

	booking, err := session.CreateBooking(ctx, ports.BookSessionInput{
		Date: nextMonday(), Time: "11:00 AM", ReportType: "Adult",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	registerAdmin(t, session)
	if !session.IsAdmin() {
		t.Fatalf("admin session expected")
	}

	all, err := session.AllBookings(ctx)
	if err != nil {
		t.Fatalf("AllBookings: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 booking in admin listing, got %d", len(all))
	}

	confirmed, err := session.ConfirmPayment(ctx, booking.ID)
	if err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}
	if confirmed.Status != domain.BookingConfirmed || confirmed.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("expected confirmed/paid, got %s/%s", confirmed.Status, confirmed.PaymentStatus)
	}

	if _, err := session.ConfirmPayment(ctx, booking.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on second confirm, got %v", err)
	}
}

func TestSessionService_BookingAccess(t *testing.T) {
	session, _ := newSessionFixture()
	ctx := context.Background()

	owner := registerParent(t, session)
	booking, err := session.CreateBooking(ctx, ports.BookSessionInput{
		Date: nextMonday(), Time: "10:00 AM", ReportType: "Child",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	got, gotOwner, err := session.Booking(ctx, booking.ID)
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if got.ID != booking.ID || gotOwner.ID != owner.ID {
		t.Fatalf("owner read returned %+v / %+v", got, gotOwner)
	}

	// Another parent cannot read someone else's booking.
	if _, err := session.Register(ctx, "Priya Singh", "priya@example.com", domain.RoleParent); err != nil {
		t.Fatalf("register second parent: %v", err)
	}
	if _, _, err := session.Booking(ctx, booking.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	// Admins can read any booking, with the owner resolved.
	registerAdmin(t, session)
	_, gotOwner, err = session.Booking(ctx, booking.ID)
	if err != nil {
		t.Fatalf("admin read: %v", err)
	}
	if gotOwner.ID != owner.ID {
		t.Fatalf("expected resolved owner %s, got %+v", owner.ID, gotOwner)
	}

	session.Logout(ctx)
	if _, _, err := session.Booking(ctx, booking.ID); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}
}
