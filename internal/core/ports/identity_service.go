package ports

import (
	"context"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name  string
	Email string
	Role  string
}

// IdentityService owns the user catalog and the single current-session
// pointer (nil when logged out).
type IdentityService interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Register creates the user, appends it to the catalog and makes it the
	// current user. Fails with domain.ErrDuplicateEmail on conflict.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login looks the user up by email and makes it current. On a miss it
	// fails with domain.ErrUserNotFound and the session stays as it was; no
	// user is created implicitly.
	Login(ctx context.Context, email string) (*domain.User, error)
	// Logout clears the current-user pointer. Idempotent.
	Logout(ctx context.Context)
	// Current returns the authenticated user, or nil.
	Current() *domain.User
	Users(ctx context.Context) ([]*domain.User, error)
}
