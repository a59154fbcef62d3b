package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// guardTTL is the window inside which an identical booking submission is
// treated as a duplicate (double-submit protection, not mutual exclusion).
const guardTTL = 2 * time.Minute

// SubmissionGuard provides duplicate-submission checks backed by Redis.
// Key format: booking:<user_id>:<date>:<slot>
type SubmissionGuard struct {
	client *redis.Client
}

// NewSubmissionGuard creates a SubmissionGuard wrapping the given Redis client.
func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// IsDuplicate reports whether the same user already submitted this exact
// date/slot combination inside the guard window.
func (g *SubmissionGuard) IsDuplicate(ctx context.Context, userID, date, slot string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(userID, date, slot)).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission (expires after guardTTL).
func (g *SubmissionGuard) Mark(ctx context.Context, userID, date, slot string) error {
	return g.client.Set(ctx, g.key(userID, date, slot), "1", guardTTL).Err()
}

func (g *SubmissionGuard) key(userID, date, slot string) string {
	return fmt.Sprintf("booking:%s:%s:%s", userID, date, slot)
}
