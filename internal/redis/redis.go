package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Connect opens the Redis client used for shot-session persistence and the
// weather response cache. Both are low-volume key/value traffic, so the pool
// stays small.
func Connect(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opt.PoolSize = 8
	opt.MinIdleConns = 1

	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
