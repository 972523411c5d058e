// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterPrefix namespaces every window counter key.
const counterPrefix = "ratelimit:"

// WindowCounter counts hits per key in fixed time windows stored in Valkey.
// A key's counter starts at the first hit and expires one window later.
type WindowCounter struct {
	client *redis.Client
}

// NewWindowCounter creates a WindowCounter on top of an existing client.
func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client}
}

// CounterKey returns the Valkey key used for a client identifier.
func CounterKey(id string) string {
	return counterPrefix + id
}

// Hit increments the counter for key and returns the new count and the time
// left until the window resets. The expiry is only set on the first hit.
func (c *WindowCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, CounterKey(key))
		pipe.ExpireNX(ctx, CounterKey(key), window)
		ttl = pipe.PTTL(ctx, CounterKey(key))
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("rate limit counter %q: %w", key, err)
	}

	reset := ttl.Val()
	if reset < 0 {
		reset = window
	}
	return incr.Val(), reset, nil
}
