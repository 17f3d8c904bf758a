package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// SetContains reports set membership. A redis outage behaves like a miss so
// requests keep working without the corpus.
func (c *Client) SetContains(ctx context.Context, key, member string) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	ok, err := c.client.SIsMember(ctx, key, member).Result()
	if err != nil {
		// fail safe: behave like a miss
		return false, nil
	}
	return ok, nil
}

// SetAdd adds members to a set, ignoring redis errors.
func (c *Client) SetAdd(ctx context.Context, key string, members ...string) error {
	if c == nil || c.client == nil {
		return nil
	}
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	if err := c.client.SAdd(ctx, key, args...).Err(); err != nil {
		return nil
	}
	return nil
}
