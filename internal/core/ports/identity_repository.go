package ports

import (
	"context"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// IdentityRepository owns the catalog of registered users.
type IdentityRepository interface {
	// FindByEmail performs a case-sensitive exact match lookup.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create appends a new user. Returns domain.ErrDuplicateEmail when an
	// existing user already owns the email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
