package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

const lockKeyGenerateRecurring = "generate-recurring"

type ledgerHandler struct {
	lockTTL      time.Duration
	recurringSrv services.RecurringService
	accountSrv   services.BankAccountService
	statementSrv services.StatementExportService
	lockRepo     repositories.LockRepository
}

func Routes(
	cfg config.Config,
	rs services.RecurringService,
	bs services.BankAccountService,
	ss services.StatementExportService,
	lockRepo repositories.LockRepository,
) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := ledgerHandler{
		lockTTL:      cfg.WorkerConfig.LockTTL,
		recurringSrv: rs,
		accountSrv:   bs,
		statementSrv: ss,
		lockRepo:     lockRepo,
	}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"generate-recurring": handler.GenerateRecurring,
		"audit-balance":      handler.AuditBalance,
		"export-statements":  handler.ExportStatements,
		// add more job here
	}
}

// GenerateRecurring generates the obligations of the month containing date.
// Only one worker generates at a time.
func (lh *ledgerHandler) GenerateRecurring(ctx context.Context, date time.Time, _ flag.Job) (err error) {
	release, err := lh.lockRepo.Obtain(ctx, lockKeyGenerateRecurring, lh.lockTTL)
	if err != nil {
		return err
	}
	defer func() {
		if errRelease := release(ctx); errRelease != nil {
			xlog.Warn(ctx, "GenerateRecurring", xlog.String("message", "failed to release lock"), xlog.Err(errRelease))
		}
	}()

	result, err := lh.recurringSrv.GenerateForPeriod(ctx, models.PeriodOf(date))
	if err != nil {
		return err
	}

	xlog.Info(ctx, "GenerateRecurring",
		xlog.String("period", result.Period.String()),
		xlog.Int("generated", len(result.Generated)),
		xlog.Int("skipped", result.Skipped),
		xlog.Int("failed", result.Failed),
	)

	if result.Failed > 0 {
		return fmt.Errorf("period %s: %d templates failed", result.Period, result.Failed)
	}
	return nil
}

// AuditBalance compares every cached balance with the sum of its movements.
// Drift is reported, never corrected.
func (lh *ledgerHandler) AuditBalance(ctx context.Context, _ time.Time, _ flag.Job) error {
	audits, err := lh.accountSrv.AuditAll(ctx)
	if err != nil {
		return err
	}

	drifting := 0
	for _, audit := range audits {
		if audit.Consistent() {
			continue
		}
		drifting++
		xlog.Warn(ctx, "AuditBalance",
			xlog.Int64("account-id", audit.AccountID),
			xlog.String("cached", audit.CachedBalance.String()),
			xlog.String("recomputed", audit.RecomputedBalance.String()),
			xlog.String("difference", audit.Difference().String()),
		)
	}

	xlog.Info(ctx, "AuditBalance", xlog.Int("accounts", len(audits)), xlog.Int("drifting", drifting))

	return nil
}

// ExportStatements archives the statements of the month before date.
func (lh *ledgerHandler) ExportStatements(ctx context.Context, date time.Time, _ flag.Job) error {
	result, err := lh.statementSrv.ArchivePreviousMonth(ctx, date)

	xlog.Info(ctx, "ExportStatements",
		xlog.String("period", result.Period.String()),
		xlog.String("urls", strings.Join(result.Archived, ",")),
		xlog.Int("failed", result.Failed),
	)

	return err
}
