package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// ByteStore is the slice of the cache client this adapter needs.
type ByteStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// JSONCache adapts a byte store into a typed query cache usable by the
// query caching decorator. Keys are derived from the JSON encoding of
// the query, so two equal queries share an entry.
type JSONCache[Q any, R any] struct {
	store  ByteStore
	prefix string
	logger logger.Logger
}

func NewJSONCache[Q any, R any](store ByteStore, prefix string, log logger.Logger) *JSONCache[Q, R] {
	return &JSONCache[Q, R]{
		store:  store,
		prefix: prefix,
		logger: log,
	}
}

// Get retrieves a cached result. A missing key is reported as a miss,
// not an error.
func (c *JSONCache[Q, R]) Get(ctx context.Context, query Q) (R, bool, error) {
	var zero R

	key, err := c.key(query)
	if err != nil {
		return zero, false, err
	}

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, false, nil
		}

		return zero, false, fmt.Errorf("getting cached result: %w", err)
	}

	var result R
	if err := json.Unmarshal(data, &result); err != nil {
		// A decode failure means a stale or corrupt entry; treat it
		// as a miss so the caller recomputes and overwrites it.
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")

		return zero, false, nil
	}

	return result, true, nil
}

// Set stores a result under the query's derived key.
func (c *JSONCache[Q, R]) Set(ctx context.Context, query Q, result R, ttl time.Duration) error {
	key, err := c.key(query)
	if err != nil {
		return err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	if err := c.store.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("setting cached result: %w", err)
	}

	return nil
}

func (c *JSONCache[Q, R]) key(query Q) (string, error) {
	encoded, err := json.Marshal(query)
	if err != nil {
		return "", fmt.Errorf("marshalling cache key: %w", err)
	}

	hash := sha256.Sum256(encoded)

	return c.prefix + hex.EncodeToString(hash[:16]), nil
}
