package monitoring

import (
	"errors"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerJob:        "[JOB]",
	LayerUnknown:    "[-]",
}

// rejections are ledger rule violations answered to the caller, they are not failures of the service.
var rejections = []error{
	common.ErrValidation,
	common.ErrDataNotFound,
	common.ErrDataExist,
	common.ErrInvalidAmount,
	common.ErrAlreadyReconciled,
	common.ErrAlreadySettled,
	common.ErrOverSettlement,
	common.ErrInsufficientFunds,
	common.ErrSameAccount,
	common.ErrAccountInactive,
	common.ErrInvalidDirection,
	common.ErrLinkedMovement,
	common.ErrAlreadyReversed,
	common.ErrInvalidPeriod,
	common.ErrInvalidInstallment,
	common.ErrInvalidDueDay,
	common.ErrCostCenterInactive,
}

type finishOptions struct {
	err        error
	xlogFields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.xlogFields = fields
	}
}

func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fOpts.xlogFields = append(fOpts.xlogFields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)))

	switch {
	case fOpts.err != nil && IsRejection(fOpts.err):
		// logged once, by the outermost layer
		if m.layer == LayerDelivery || m.layer == LayerService {
			fOpts.xlogFields = append(fOpts.xlogFields,
				xlog.String("status", "rejected"),
				xlog.Err(fOpts.err))

			xlog.Info(m.ctx, messagePrefix[m.layer], fOpts.xlogFields...)
		}
	case fOpts.err != nil:
		fOpts.xlogFields = append(
			fOpts.xlogFields,
			xlog.String("status", "error"),
			xlog.Err(fOpts.err))

		xlog.Warn(m.ctx, messagePrefix[m.layer], fOpts.xlogFields...)

		if txn := newrelic.FromContext(m.ctx); txn != nil {
			txn.NoticeError(fOpts.err)
		}
	default:
		// only log info from delivery, service & job layer to avoid duplicate log
		if m.layer != LayerRepository {
			fOpts.xlogFields = append(
				fOpts.xlogFields,
				xlog.String("status", "success"))

			xlog.Info(m.ctx, messagePrefix[m.layer], fOpts.xlogFields...)
		}
	}

	if m.segment != nil {
		m.segment.End()
	}
}
