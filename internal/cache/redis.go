package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bibliotech/recommendation-service/internal/domain"
)

const popularKey = "rec:popular"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func userKey(userID, mode string) string {
	return fmt.Sprintf("rec:user:%s:mode:%s", userID, mode)
}

// get unmarshals the cached JSON payload at key into dest. The second
// return value reports whether the key was present.
func (c *Cache) get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		// A malformed payload is degraded to a cache miss by the caller.
		return false, &domain.ComputationError{Msg: "unmarshal cached " + key, Err: err}
	}
	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal for cache %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// GetCandidates reads cached similar-user recommendations for a user.
func (c *Cache) GetCandidates(ctx context.Context, userID string) ([]domain.Candidate, bool, error) {
	var recs []domain.Candidate
	found, err := c.get(ctx, userKey(userID, "similar-users"), &recs)
	return recs, found, err
}

func (c *Cache) SetCandidates(ctx context.Context, userID string, recs []domain.Candidate) error {
	return c.set(ctx, userKey(userID, "similar-users"), recs)
}

// GetScoredBooks reads cached preference recommendations for a user.
func (c *Cache) GetScoredBooks(ctx context.Context, userID string) ([]domain.ScoredBook, bool, error) {
	var recs []domain.ScoredBook
	found, err := c.get(ctx, userKey(userID, "preference"), &recs)
	return recs, found, err
}

func (c *Cache) SetScoredBooks(ctx context.Context, userID string, recs []domain.ScoredBook) error {
	return c.set(ctx, userKey(userID, "preference"), recs)
}

// GetPopular reads the cached popularity ranking.
func (c *Cache) GetPopular(ctx context.Context) ([]domain.PopularBook, bool, error) {
	var books []domain.PopularBook
	found, err := c.get(ctx, popularKey, &books)
	return books, found, err
}

func (c *Cache) SetPopular(ctx context.Context, books []domain.PopularBook) error {
	return c.set(ctx, popularKey, books)
}

// ClearUserCache drops a user's cached recommendations: used when their
// history changes.
func (c *Cache) ClearUserCache(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("rec:user:%s:mode:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// ClearPopular drops the popularity ranking: any history change shifts the
// counts.
func (c *Cache) ClearPopular(ctx context.Context) error {
	if err := c.client.Del(ctx, popularKey).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", popularKey, err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
