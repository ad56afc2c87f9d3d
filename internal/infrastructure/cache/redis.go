package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/config"
	"github.com/redis/go-redis/v9"
)

// Open connects to the redis behind the idempotency store and the unit cache.
func Open(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
}

func OpenRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}
	return r, nil
}
