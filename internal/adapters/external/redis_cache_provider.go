package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// RedisKeyNamespace prefixes every key the adapter writes so Clear never touches foreign keys
const RedisKeyNamespace = "floodaware:"

// RedisCacheProviderAdapter implements CacheProvider port using Redis
type RedisCacheProviderAdapter struct {
	client *redis.Client
	hitCounter
}

// NewRedisCacheProviderAdapter connects to Redis and verifies the connection with a ping
func NewRedisCacheProviderAdapter(cfg *ports.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if cfg.Addr == "" {
		return nil, errors.NewConfigurationError("redis address is required", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  seconds(cfg.DialTimeout),
		ReadTimeout:  seconds(cfg.ReadTimeout),
		WriteTimeout: seconds(cfg.WriteTimeout),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewNetworkError("failed to connect to redis", err)
	}

	return &RedisCacheProviderAdapter{client: client}, nil
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, RedisKeyNamespace+key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			r.RecordMiss()
			return nil, errors.NewNotFoundError("store miss")
		}
		return nil, errors.NewNetworkError("redis get failed", err)
	}

	r.RecordHit()
	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}
	if err := r.client.Set(ctx, RedisKeyNamespace+key, value, ttl).Err(); err != nil {
		return errors.NewNetworkError("redis set failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := r.client.Del(ctx, RedisKeyNamespace+key).Err(); err != nil {
		return errors.NewNetworkError("redis delete failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	count, err := r.client.Exists(ctx, RedisKeyNamespace+key).Result()
	if err != nil {
		return false, errors.NewNetworkError("redis exists failed", err)
	}
	return count > 0, nil
}

// Clear removes every key under the adapter's namespace
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, RedisKeyNamespace+"*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 100 {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewNetworkError("redis clear failed", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewNetworkError("redis scan failed", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewNetworkError("redis clear failed", err)
		}
	}
	return nil
}

func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	return r.snapshot(time.Now())
}

func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewNetworkError("redis ping failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewNetworkError("failed to close redis connection", err)
	}
	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
