package retry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/retry"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
)

func init() {
	xlog.InitForTest()
}

func fastConfig(maxRetries uint64) config.ExponentialBackOffConfig {
	return config.ExponentialBackOffConfig{
		MaxRetries:        maxRetries,
		MaxBackoffTime:    time.Second,
		BackoffMultiplier: 1.1,
	}
}

func Test_Retry_ExponentialBackoff(t *testing.T) {
	t.Run("success - first attempt", func(t *testing.T) {
		var calls int
		retryer := retry.NewExponentialBackOff(fastConfig(3), common.ErrStorageConflict)

		err := retryer.Retry(context.Background(), func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("success - conflict resolved on retry", func(t *testing.T) {
		var calls int
		retryer := retry.NewExponentialBackOff(fastConfig(3), common.ErrStorageConflict)

		err := retryer.Retry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("settle: %w", common.ErrStorageConflict)
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("failed - retries exhausted", func(t *testing.T) {
		var calls int
		retryer := retry.NewExponentialBackOff(fastConfig(2), common.ErrStorageConflict)

		err := retryer.Retry(context.Background(), func() error {
			calls++
			return common.ErrStorageConflict
		})

		assert.ErrorIs(t, err, common.ErrStorageConflict)
		assert.Equal(t, 3, calls)
	})

	t.Run("failed - business error is not retried", func(t *testing.T) {
		var calls int
		retryer := retry.NewExponentialBackOff(fastConfig(5), common.ErrStorageConflict)

		err := retryer.Retry(context.Background(), func() error {
			calls++
			return common.ErrInsufficientFunds
		})

		assert.True(t, errors.Is(err, common.ErrInsufficientFunds))
		assert.Equal(t, 1, calls)
	})

	t.Run("success - force stop retrying", func(t *testing.T) {
		var calls int
		retryer := retry.NewExponentialBackOff(fastConfig(5))

		err := retryer.Retry(context.Background(), func() error {
			calls++
			return retryer.StopRetryWithErr(assert.AnError)
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})
}
