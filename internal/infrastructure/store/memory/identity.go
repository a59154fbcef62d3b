// Package memory provides the in-process stores backing the session core.
// All state is process-lifetime only; collections mutate by full slice
// replacement (copy-on-write), so a slice handed to a reader never observes
// a partially written update.
package memory

import (
	"context"
	"sync"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// IdentityRepository is the in-memory user catalog.
type IdentityRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{}
}

func (r *IdentityRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *IdentityRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *IdentityRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	stored := cloneUser(user)
	next := make([]*domain.User, 0, len(r.users)+1)
	next = append(next, r.users...)
	next = append(next, stored)
	r.users = next

	return cloneUser(stored), nil
}

func (r *IdentityRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, len(r.users))
	for i, u := range r.users {
		out[i] = cloneUser(u)
	}
	return out, nil
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Profile != nil {
		profile := *u.Profile
		clone.Profile = &profile
	}
	return &clone
}
