package contact

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "contact:last:"

// RedisLimiter shares submission timestamps across instances. Keys expire
// with the window.
type RedisLimiter struct {
	rdb    *redis.Client
	window time.Duration
}

// NewRedisLimiter wraps an existing client.
func NewRedisLimiter(rdb *redis.Client, window time.Duration) *RedisLimiter {
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &RedisLimiter{rdb: rdb, window: window}
}

// DialRedis parses a redis:// URL, connects and pings.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	cli := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return cli, nil
}

func (l *RedisLimiter) key(k string) string { return redisKeyPrefix + k }

func (l *RedisLimiter) Last(ctx context.Context, key string) (time.Time, error) {
	raw, err := l.rdb.Get(ctx, l.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("redis get: %w", err)
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, nil
	}
	return time.UnixMilli(ms), nil
}

func (l *RedisLimiter) Record(ctx context.Context, key string, at time.Time) error {
	if err := l.rdb.Set(ctx, l.key(key), strconv.FormatInt(at.UnixMilli(), 10), l.window).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
