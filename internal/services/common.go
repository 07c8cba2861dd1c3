package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/metrics"
	"github.com/erpcore/go-fin-ledger/internal/common/pagination"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

// atomic runs steps as one unit of work. A storage conflict rolls the whole
// unit back and it is started again from scratch.
func (s *Services) atomic(ctx context.Context, operation string, steps func(ctx context.Context, repo repositories.SQLRepository) error) error {
	return s.retryer.Retry(ctx, func() error {
		err := s.sqlRepo.Atomic(ctx, steps)
		if errors.Is(err, common.ErrStorageConflict) {
			s.ledgerMetrics().RecordConflict(operation)
		}
		return err
	})
}

func (s *Services) ledgerMetrics() *metrics.LedgerPrometheusMetrics {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.GetLedgerPrometheus()
}

// publishLedgerEvent runs after commit. Failures are logged and counted only.
func (s *Services) publishLedgerEvent(ctx context.Context, event models.LedgerEvent) {
	if s.ledgerEvents == nil || s.flag == nil {
		return
	}
	if !s.flag.IsEnabled(s.conf.FeatureFlagKeyLookup.PublishLedgerEvent) {
		return
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = common.Now()
	}
	if err := s.ledgerEvents.PublishLedgerEvent(ctx, event); err != nil {
		xlog.Warn(ctx, "[LEDGER-EVENT] publish failed",
			xlog.String("event-type", event.Type),
			xlog.Int64("bank-account-id", event.BankAccountID),
			xlog.Err(err))
		s.ledgerMetrics().RecordPublishFailure(event.Type)
	}
}

func (s *Services) page(limit, offset int) pagination.Options {
	return pagination.Options{Limit: limit, Offset: offset}.
		Normalize(s.conf.LedgerConfig.DefaultListLimit, s.conf.LedgerConfig.MaxListLimit)
}

func today() time.Time {
	return common.TruncateDate(common.Now().UTC())
}

// dateOrToday keeps d, or falls back to the current business date.
func dateOrToday(d time.Time) time.Time {
	if d.IsZero() {
		return today()
	}
	return d
}

// lockBankAccounts locks every account in ascending id order and checks they
// can still receive movements.
func lockBankAccounts(ctx context.Context, repo repositories.SQLRepository, ids ...int64) (map[int64]models.BankAccount, error) {
	sorted := models.SortedUniqueIDs(ids)
	accounts := make(map[int64]models.BankAccount, len(sorted))
	for _, id := range sorted {
		account, err := repo.GetBankAccountRepository().GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		accounts[id] = account
	}
	return accounts, nil
}

func requireActive(account models.BankAccount) error {
	if !account.Active {
		return fmt.Errorf("bank account %d: %w", account.ID, common.ErrAccountInactive)
	}
	return nil
}
