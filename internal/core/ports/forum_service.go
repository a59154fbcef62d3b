package ports

import (
	"context"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// CreatePostInput carries the data for a new community post. AuthorName is
// the display-name snapshot stored on the post.
type CreatePostInput struct {
	UserID     string
	AuthorName string
	Title      string
	Content    string
	Category   string
}

// ForumService implements the community board use cases.
type ForumService interface {
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	// Like increments the post's like counter by exactly 1 and returns the
	// updated post. Every call is a fresh increment; there is no unlike.
	Like(ctx context.Context, postID string) (*domain.Post, error)
	// ListByCategory filters the listing. "all" (or empty) returns every
	// post in the store's current order.
	ListByCategory(ctx context.Context, category string) ([]*domain.Post, error)
}
