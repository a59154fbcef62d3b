package memory

import (
	"context"
	"sync"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// ForumRepository is the in-memory post store.
type ForumRepository struct {
	mu    sync.RWMutex
	posts []*domain.Post
}

func NewForumRepository() *ForumRepository {
	return &ForumRepository{}
}

func (r *ForumRepository) Prepend(_ context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*domain.Post, 0, len(r.posts)+1)
	next = append(next, clonePost(p))
	next = append(next, r.posts...)
	r.posts = next

	return nil
}

func (r *ForumRepository) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ForumRepository) IncrementLikes(_ context.Context, postID string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID != postID {
			continue
		}

		updated := clonePost(p)
		updated.Likes++

		next := make([]*domain.Post, len(r.posts))
		copy(next, r.posts)
		next[i] = updated
		r.posts = next

		return clonePost(updated), nil
	}
	return nil, domain.ErrNotFound
}

func (r *ForumRepository) List(_ context.Context) ([]*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Post, len(r.posts))
	for i, p := range r.posts {
		out[i] = clonePost(p)
	}
	return out, nil
}

func (r *ForumRepository) ListByCategory(_ context.Context, category domain.Category) ([]*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Post
	for _, p := range r.posts {
		if p.Category == category {
			out = append(out, clonePost(p))
		}
	}
	return out, nil
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	clone.Comments = make([]domain.Comment, len(p.Comments))
	copy(clone.Comments, p.Comments)
	return &clone
}
