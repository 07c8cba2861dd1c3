package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

const lockKeyPrefix = "fin-ledger:lock:"

// Releaser frees a lock obtained from LockRepository.
type Releaser func(ctx context.Context) error

//go:generate mockgen -source=lock.go -destination=mock/lock.go -package=mock
type LockRepository interface {
	// Obtain fails with common.ErrJobAlreadyRunning while another holder keeps key.
	Obtain(ctx context.Context, key string, ttl time.Duration) (Releaser, error)
}

type redisLockRepository struct {
	locker *redislock.Client
}

func NewLockRepository(rdb redislock.RedisClient) LockRepository {
	return &redisLockRepository{locker: redislock.New(rdb)}
}

func (l *redisLockRepository) Obtain(ctx context.Context, key string, ttl time.Duration) (Releaser, error) {
	lock, err := l.locker.Obtain(ctx, lockKeyPrefix+key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("lock %s: %w", key, common.ErrJobAlreadyRunning)
	}
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return err
		}
		return nil
	}, nil
}
