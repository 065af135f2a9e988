package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BKSpurgeon/rinku/util"
	"github.com/redis/go-redis/v9"
)

// Key prefix for cached linkify results
const LinkifiedPrefix = "linkified:"

// ErrNotFound is returned when no cached result exists for a key or it
// has already expired.
var ErrNotFound = errors.New("linkified result not found or expired")

// CachedResult is a rendered linkify response kept between requests so
// identical texts don't get rescanned.
type CachedResult struct {
	Result    string `json:"result"`
	LinkCount int    `json:"link_count"`
}

type Store interface {
	SaveLinkified(ctx context.Context, key string, data CachedResult, ttl time.Duration) error
	GetLinkified(ctx context.Context, key string) (*CachedResult, error)
	DeleteLinkified(ctx context.Context, key string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// Saves a rendered result under the request key for ttl.
func (store *RedisStore) SaveLinkified(
	ctx context.Context,
	key string,
	data CachedResult,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize linkified result: %w", err)
	}

	return store.client.Set(ctx, LinkifiedPrefix+key, jsonData, ttl).Err()
}

// Retrieves a previously rendered result. Returns ErrNotFound if no
// entry exists or it expired.
func (store *RedisStore) GetLinkified(ctx context.Context, key string) (*CachedResult, error) {
	jsonData, err := store.client.Get(ctx, LinkifiedPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get linkified result: %w", err)
	}

	var result CachedResult
	if err := json.Unmarshal([]byte(jsonData), &result); err != nil {
		return nil, fmt.Errorf("failed to parse linkified result json: %w", err)
	}

	return &result, nil
}

// Helper to drop a cached result before its TTL runs out.
func (store *RedisStore) DeleteLinkified(ctx context.Context, key string) error {
	return store.client.Del(ctx, LinkifiedPrefix+key).Err()
}
