package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sristi/brainark-core/internal/core/domain"
	"github.com/sristi/brainark-core/internal/core/ports"
)

// IdentityService owns the user catalog and the current-session pointer.
type IdentityService struct {
	repo ports.IdentityRepository
	log  zerolog.Logger

	mu      sync.RWMutex
	current *domain.User
}

func NewIdentityService(repo ports.IdentityRepository, log zerolog.Logger) *IdentityService {
	return &IdentityService{repo: repo, log: log}
}

func (s *IdentityService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *IdentityService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Register creates a new user with a fresh id and no profile, appends it to
// the catalog and makes it the current user.
func (s *IdentityService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if !domain.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, in.Role)
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  in.Role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.setCurrent(created)
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login looks the user up by email and makes it current. On a miss the
// session is left exactly as it was.
func (s *IdentityService) Login(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	s.setCurrent(user)
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, nil
}

func (s *IdentityService) Logout(_ context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *IdentityService) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *IdentityService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *IdentityService) setCurrent(u *domain.User) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
}
