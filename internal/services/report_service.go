package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/cache"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service.go -package=mock
type ReportService interface {
	CashFlowProjection(ctx context.Context, from, to time.Time) (models.CashFlowProjection, error)
	ReconciliationWorklist(ctx context.Context, accountID int64) (models.ReconciliationWorklist, error)
}

type report service

var _ ReportService = (*report)(nil)

func (r *report) CashFlowProjection(ctx context.Context, from, to time.Time) (projection models.CashFlowProjection, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if to.Before(from) {
		return projection, fmt.Errorf("cash flow %s..%s: %w",
			from.Format(common.DateFormatYYYYMMDD), to.Format(common.DateFormatYYYYMMDD), common.ErrInvalidPeriod)
	}

	load := func() (models.CashFlowProjection, error) {
		return r.projectCashFlow(ctx, from, to)
	}
	if r.srv.reportCache == nil || r.srv.conf.LedgerConfig.ReportCacheTTL < 0 {
		return load()
	}

	return r.srv.reportCache.GetOrSet(ctx, cache.GetOrSetOpts[models.CashFlowProjection]{
		Key: fmt.Sprintf("cash-flow:%s:%s",
			from.Format(common.DateFormatYYYYMMDD), to.Format(common.DateFormatYYYYMMDD)),
		TTL:      r.srv.conf.LedgerConfig.ReportCacheTTL,
		Callback: load,
	})
}

func (r *report) projectCashFlow(ctx context.Context, from, to time.Time) (models.CashFlowProjection, error) {
	var (
		cash   models.Money
		totals []models.OpenObligationTotal
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		cash, err = r.srv.sqlRepo.GetBankAccountRepository().SumActiveBalances(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		totals, err = r.srv.sqlRepo.GetObligationRepository().OpenTotals(egCtx, from, to)
		return err
	})
	if err := eg.Wait(); err != nil {
		return models.CashFlowProjection{}, err
	}

	payables := models.OpenObligationTotal{Direction: models.ObligationPayable, Remaining: models.ZeroMoney()}
	receivables := models.OpenObligationTotal{Direction: models.ObligationReceivable, Remaining: models.ZeroMoney()}
	for _, total := range totals {
		switch total.Direction {
		case models.ObligationPayable:
			payables = total
		case models.ObligationReceivable:
			receivables = total
		}
	}

	return models.NewCashFlowProjection(from, to, cash, payables, receivables), nil
}

func (r *report) ReconciliationWorklist(ctx context.Context, accountID int64) (worklist models.ReconciliationWorklist, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if _, err = r.srv.sqlRepo.GetBankAccountRepository().Get(ctx, accountID); err != nil {
		return worklist, err
	}

	movements, err := r.srv.sqlRepo.GetBankMovementRepository().ListUnreconciled(ctx, accountID)
	if err != nil {
		return worklist, err
	}
	return models.NewReconciliationWorklist(accountID, movements), nil
}
