package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/andrewserrazina/friendly-paws-backend/internal/config"
)

// Redis wraps the go-redis client used as a read cache for hot
// lookups (client profiles). The service stays functional when Redis
// is unreachable; cache misses just fall through to Postgres.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// CacheGet fetches a cached value. A miss returns ("", false, nil).
func (r *Redis) CacheGet(ctx context.Context, key string) (string, bool, error) {
	if r == nil || r.Client == nil {
		return "", false, nil
	}
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// CacheSet stores a value with the given TTL.
func (r *Redis) CacheSet(ctx context.Context, key, value string, ttl time.Duration) error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// CacheDelete removes cached keys, for invalidation on writes.
func (r *Redis) CacheDelete(ctx context.Context, keys ...string) error {
	if r == nil || r.Client == nil || len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}
