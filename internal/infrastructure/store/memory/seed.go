package memory

import (
	"context"
	"time"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// Seed loads the demo catalog: two parent accounts, an admin, a couple of
// community posts and one historical paid booking. Intended for development
// and demos; production starts empty.
func Seed(ctx context.Context, users *IdentityRepository, bookings *BookingRepository, posts *ForumRepository) error {
	seedUsers := []*domain.User{
		{ID: "1", Name: "Admin User", Email: "admin@sristi.com", Role: domain.RoleAdmin},
		{ID: "2", Name: "Rahul Sharma", Email: "rahul@example.com", Role: domain.RoleParent,
			Profile: &domain.Profile{StudentName: "Arjun", Grade: "10", Phone: "9876543210"}},
		{ID: "3", Name: "Priya Singh", Email: "priya@example.com", Role: domain.RoleParent},
	}
	for _, u := range seedUsers {
		if _, err := users.Create(ctx, u); err != nil {
			return err
		}
	}

	if err := bookings.Append(ctx, &domain.Booking{
		ID:            "b1",
		UserID:        "2",
		Date:          "2024-02-15",
		Time:          "10:00 AM",
		ReportType:    domain.ReportChild,
		Amount:        3000,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
		CreatedAt:     time.Date(2024, 2, 12, 9, 0, 0, 0, time.UTC),
	}); err != nil {
		return err
	}

	// Prepended in chronological order so the listing reads newest first.
	seedPosts := []*domain.Post{
		{
			ID:         "p1",
			UserID:     "2",
			AuthorName: "Rahul Sharma",
			Title:      "Confused about Science vs Commerce for my son",
			Content:    "My son enjoys math but struggles with physics. Should we consider Commerce with Maths? Any advice from other parents?",
			Category:   domain.CategoryStream,
			Likes:      12,
			CreatedAt:  time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC),
			Comments: []domain.Comment{
				{
					ID:         "c1",
					UserID:     "1",
					AuthorName: "Admin User",
					Content:    "Hi Rahul, GBP can really help identify his innate learning style!",
					CreatedAt:  time.Date(2024, 2, 10, 11, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			ID:         "p2",
			UserID:     "3",
			AuthorName: "Priya Singh",
			Title:      "Best memory techniques for history dates?",
			Content:    "My daughter finds it hard to remember dates for her history board exams. Any tips?",
			Category:   domain.CategoryMemory,
			Likes:      8,
			CreatedAt:  time.Date(2024, 2, 11, 9, 30, 0, 0, time.UTC),
			Comments:   []domain.Comment{},
		},
	}
	for _, p := range seedPosts {
		if err := posts.Prepend(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
