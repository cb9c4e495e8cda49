package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps in-progress drafts in Redis, one JSON value per booking
// session. The TTL stands in for the browser modal being closed: an
// expired draft is simply gone.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewStore creates a draft store. ttl <= 0 defaults to 30 minutes.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{redis: client, ttl: ttl}
}

func (s *Store) key(id string) string {
	return "draft:" + id
}

// Get loads a draft by session id.
func (s *Store) Get(ctx context.Context, id string) (Draft, error) {
	data, err := s.redis.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return Draft{}, fmt.Errorf("booking: load draft: %w", err)
	}
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("booking: decode draft: %w", err)
	}
	return d, nil
}

// Put saves a draft, refreshing its TTL.
func (s *Store) Put(ctx context.Context, id string, d Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("booking: encode draft: %w", err)
	}
	if err := s.redis.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("booking: save draft: %w", err)
	}
	return nil
}

// Delete removes a draft (submission completed or session abandoned).
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("booking: delete draft: %w", err)
	}
	return nil
}
