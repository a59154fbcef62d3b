package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sristi/brainark-core/internal/api/metrics"
	"github.com/sristi/brainark-core/internal/core/domain"
	"github.com/sristi/brainark-core/internal/core/ports"
)

// ForumService implements the community board use cases.
type ForumService struct {
	repo ports.ForumRepository
	log  zerolog.Logger
}

func NewForumService(repo ports.ForumRepository, log zerolog.Logger) *ForumService {
	return &ForumService{repo: repo, log: log}
}

// Create validates and prepends a new post; the listing is
// most-recent-first.
func (s *ForumService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if in.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrValidation)
	}

	category := domain.Category(in.Category)
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}

	post := &domain.Post{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		AuthorName: in.AuthorName,
		Title:      title,
		Content:    content,
		Category:   category,
		Likes:      0,
		CreatedAt:  time.Now().UTC(),
		Comments:   []domain.Comment{},
	}

	if err := s.repo.Prepend(ctx, post); err != nil {
		s.log.Error().Err(err).Msg("failed to store post")
		return nil, err
	}

	metrics.PostsCreatedTotal.WithLabelValues(in.Category).Inc()
	s.log.Info().Str("post_id", post.ID).Str("category", in.Category).Msg("post published")
	return post, nil
}

func (s *ForumService) Like(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.repo.IncrementLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	metrics.PostLikesTotal.Inc()
	return post, nil
}

func (s *ForumService) ListByCategory(ctx context.Context, category string) ([]*domain.Post, error) {
	if category == "" || domain.Category(category) == domain.CategoryAll {
		return s.repo.List(ctx)
	}
	c := domain.Category(category)
	if !domain.ValidCategory(c) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, category)
	}
	return s.repo.ListByCategory(ctx, c)
}
