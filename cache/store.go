package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/docfmt/render"
	"github.com/Drolfothesgnir/docfmt/util"
	"github.com/redis/go-redis/v9"
)

// FormattedPrefix namespaces the formatted-result keys so the Redis database
// can be shared with other data without collisions.
const FormattedPrefix = "fmt:"

// ErrNotFound is returned when the requested entry does not exist or expired.
var ErrNotFound = errors.New("formatted result not found or expired")

// Entry is a cached formatting result.
type Entry struct {
	Formatted string    `json:"formatted"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps recently formatted comments so repeated requests for the same
// comment and options skip the lexer and renderer.
//
// The cache is transient and best-effort: callers must treat every error as
// a miss and format anyway.
type Store interface {
	SaveFormatted(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	GetFormatted(ctx context.Context, key string) (*Entry, error)
	DeleteFormatted(ctx context.Context, key string) error
}

// Key derives the cache key for a comment and its render options. Two
// requests share a key only if both the raw comment text and every option
// match.
func Key(comment string, opts render.Options) string {
	h := sha256.New()
	h.Write([]byte(comment))
	fmt.Fprintf(h, "|%d|%d", opts.MaxLineLength, opts.Indent)
	return hex.EncodeToString(h.Sum(nil))
}

type RedisStore struct {
	client *redis.Client
}

// NewStore connects a Redis-backed Store using the configured address.
func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, // default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// SaveFormatted stores the entry as JSON under the prefixed key.
func (store *RedisStore) SaveFormatted(
	ctx context.Context,
	key string,
	entry Entry,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize formatted result: %w", err)
	}

	return store.client.Set(ctx, FormattedPrefix+key, jsonData, ttl).Err()
}

// GetFormatted retrieves a cached result.
// Returns ErrNotFound if the key is absent or expired.
func (store *RedisStore) GetFormatted(ctx context.Context, key string) (*Entry, error) {
	jsonData, err := store.client.Get(ctx, FormattedPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get formatted result: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(jsonData), &entry); err != nil {
		return nil, fmt.Errorf("failed to parse formatted result json: %w", err)
	}

	return &entry, nil
}

// DeleteFormatted removes a cached result.
func (store *RedisStore) DeleteFormatted(ctx context.Context, key string) error {
	return store.client.Del(ctx, FormattedPrefix+key).Err()
}
