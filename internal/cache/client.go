package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dyluth/peyote/internal/beads"
	"github.com/redis/go-redis/v9"
)

// Client memoizes bead recommendations in Redis.
// Results are pure functions of the bead count, so entries never go stale;
// the TTL only bounds memory use. The client is safe for concurrent use.
type Client struct {
	rdb       *redis.Client
	namespace string
	ttl       time.Duration
}

// NewClient creates a cache client for the given namespace.
//
// Parameters:
//   - redisOpts: Redis connection options (address, password, DB, etc.)
//   - namespace: key prefix segment (must not be empty)
//   - ttl: expiry applied to every entry (0 means no expiry)
//
// Returns an error if namespace is empty or ttl is negative.
func NewClient(redisOpts *redis.Options, namespace string, ttl time.Duration) (*Client, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}
	if ttl < 0 {
		return nil, fmt.Errorf("ttl cannot be negative")
	}

	return &Client{
		rdb:       redis.NewClient(redisOpts),
		namespace: namespace,
		ttl:       ttl,
	}, nil
}

// NewClientFromURL parses a redis:// URL and creates a cache client.
func NewClientFromURL(url, namespace string, ttl time.Duration) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return NewClient(opts, namespace, ttl)
}

// Close closes the Redis connection. Implements io.Closer.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Get returns the memoized result for a bead count.
// found is false when no entry exists.
func (c *Client) Get(ctx context.Context, n int) (result beads.Result, found bool, err error) {
	data, err := c.rdb.Get(ctx, ResultKey(c.namespace, n)).Bytes()
	if errors.Is(err, redis.Nil) {
		return beads.Result{}, false, nil
	}
	if err != nil {
		return beads.Result{}, false, fmt.Errorf("failed to read result from Redis: %w", err)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return beads.Result{}, false, fmt.Errorf("failed to deserialize result: %w", err)
	}

	return result, true, nil
}

// Put stores the result under its bead count.
func (c *Client) Put(ctx context.Context, result beads.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	if err := c.rdb.Set(ctx, ResultKey(c.namespace, result.Beads), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write result to Redis: %w", err)
	}

	return nil
}
