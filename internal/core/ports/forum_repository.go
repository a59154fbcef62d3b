package ports

import (
	"context"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// ForumRepository owns the community posts and their engagement counters.
type ForumRepository interface {
	// Prepend inserts the post at the head of the listing; most-recent-first
	// ordering is the display contract.
	Prepend(ctx context.Context, p *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// IncrementLikes adds exactly 1 to the post's like counter and returns
	// the updated post. Returns domain.ErrNotFound for unknown ids.
	IncrementLikes(ctx context.Context, postID string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Post, error)
}
