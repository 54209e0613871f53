package redis

import (
	"context"
	"fmt"
	"time"

	rd "github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/procurebot/internal/domain/errors"
)

// client is the subset of the go-redis API the counter uses.
type client interface {
	Incr(ctx context.Context, key string) *rd.IntCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *rd.BoolCmd
	Ping(ctx context.Context) *rd.StatusCmd
}

// Counter reserves sequential order numbers with a single atomic INCR,
// so two concurrent submissions can never observe the same number.
type Counter struct {
	rdb client
	key string
}

// New creates a counter over an established Redis client.
func New(rdb *rd.Client, key string) *Counter {
	return &Counter{rdb: rdb, key: key}
}

// Seed initializes the counter to the last assigned number, but only if
// the key does not exist yet: numbering continues from an existing ledger
// and never regresses on restart.
func (c *Counter) Seed(ctx context.Context, last int) error {
	if err := c.rdb.SetNX(ctx, c.key, last, 0).Err(); err != nil {
		return fmt.Errorf("seed counter: %w", err)
	}
	return nil
}

// Next atomically reserves and returns the next order number.
func (c *Counter) Next(ctx context.Context) (int, error) {
	n, err := c.rdb.Incr(ctx, c.key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	return int(n), nil
}

// HealthCheck verifies Redis connectivity.
func (c *Counter) HealthCheck(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
