package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock
type CacheRepository interface {
	SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error

	// JSON variants, used for idempotency records
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetJSONIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	GetJSON(ctx context.Context, key string, dest interface{}) error
}

type cacheClient struct {
	redis redis.Cmdable
}

func NewCacheRepository(rdb redis.Cmdable) CacheRepository {
	return &cacheClient{redis: rdb}
}

func (cc *cacheClient) SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return cc.redis.SetNX(ctx, key, value, ttl).Result()
}

func (cc *cacheClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return cc.redis.Set(ctx, key, value, ttl).Err()
}

// Get returns common.ErrDataNotFound when the key does not exist.
func (cc *cacheClient) Get(ctx context.Context, key string) (string, error) {
	val, err := cc.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return val, common.ErrDataNotFound
		}
		return val, err
	}

	return strings.TrimSpace(val), nil
}

func (cc *cacheClient) Del(ctx context.Context, keys ...string) error {
	return cc.redis.Del(ctx, keys...).Err()
}

func (cc *cacheClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return cc.Set(ctx, key, string(b), ttl)
}

func (cc *cacheClient) SetJSONIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return cc.SetIfNotExists(ctx, key, string(b), ttl)
}

func (cc *cacheClient) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := cc.Get(ctx, key)
	if err != nil {
		return err
	}
	if err = json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}
