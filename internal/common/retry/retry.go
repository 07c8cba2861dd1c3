package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg   config.ExponentialBackOffConfig
	retryOn []error
}

/*
NewExponentialBackOff will init Retryer interface.
This retryer implement exponential backoff mechanism.

Only errors matching one of retryOn (errors.Is) are retried, any other error
stops immediately. With no retryOn every error is retried.

Example:

Retry(ctx, func() error { return svc.settle(ctx, in) })
*/
func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig, retryOn ...error) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg, retryOn: retryOn}
}

/*
Retry will create ExponentialBackOff instance for every execution.

The returned error is the last error of "operation", unwrapped from backoff.Permanent.
*/
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	attempt := 0
	op := func() error {
		attempt++
		err := operation()
		if err == nil || r.retryable(err) {
			return err
		}
		return r.StopRetryWithErr(err)
	}

	notify := func(err error, next time.Duration) {
		xlog.Warn(ctx, "[RETRY]",
			xlog.Int("attempt", attempt),
			xlog.Duration("next", next),
			xlog.Err(err))
	}

	return backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx), notify)
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}

func (r *exponentialBackoff) retryable(err error) bool {
	if len(r.retryOn) == 0 {
		return true
	}
	for _, target := range r.retryOn {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
