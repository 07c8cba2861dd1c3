package services

import (
	"context"
	"fmt"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=bank_account_service.go -destination=mock/bank_account_service.go -package=mock
type BankAccountService interface {
	Create(ctx context.Context, in models.CreateBankAccountIn) (models.BankAccount, error)
	Get(ctx context.Context, id int64) (models.BankAccount, error)
	List(ctx context.Context, filter models.BankAccountFilter) ([]models.BankAccount, error)
	Deactivate(ctx context.Context, id int64) error

	// RecomputeBalance compares the cached balance with opening balance plus
	// every signed movement of the account.
	RecomputeBalance(ctx context.Context, id int64) (models.BalanceAudit, error)
	AuditAll(ctx context.Context) ([]models.BalanceAudit, error)
}

type bankAccount service

var _ BankAccountService = (*bankAccount)(nil)

func (b *bankAccount) Create(ctx context.Context, in models.CreateBankAccountIn) (account models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if in.OpeningBalance.IsNegative() {
		return account, fmt.Errorf("opening balance %s: %w", in.OpeningBalance, common.ErrInvalidAmount)
	}
	if in.OpeningBalanceDate.IsZero() {
		in.OpeningBalanceDate = today()
	}

	return b.srv.sqlRepo.GetBankAccountRepository().Create(ctx, in)
}

func (b *bankAccount) Get(ctx context.Context, id int64) (account models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return b.srv.sqlRepo.GetBankAccountRepository().Get(ctx, id)
}

func (b *bankAccount) List(ctx context.Context, filter models.BankAccountFilter) (accounts []models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return b.srv.sqlRepo.GetBankAccountRepository().List(ctx, filter)
}

func (b *bankAccount) Deactivate(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return b.srv.sqlRepo.GetBankAccountRepository().Deactivate(ctx, id)
}

func (b *bankAccount) RecomputeBalance(ctx context.Context, id int64) (audit models.BalanceAudit, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	audit, err = b.srv.sqlRepo.GetBankAccountRepository().RecomputeBalance(ctx, id)
	if err != nil {
		return audit, err
	}

	b.srv.ledgerMetrics().RecordAudit(audit)
	if !audit.Consistent() {
		xlog.Warn(ctx, "[BALANCE-AUDIT] cached balance drifted from movement log",
			xlog.Int64("bank-account-id", audit.AccountID),
			xlog.String("cached", audit.CachedBalance.String()),
			xlog.String("recomputed", audit.RecomputedBalance.String()))
	}
	return audit, nil
}

// AuditAll checks every account, active or not. It stops at the first account
// that can not be read.
func (b *bankAccount) AuditAll(ctx context.Context) (audits []models.BalanceAudit, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	accounts, err := b.srv.sqlRepo.GetBankAccountRepository().List(ctx, models.BankAccountFilter{})
	if err != nil {
		return nil, err
	}

	audits = make([]models.BalanceAudit, 0, len(accounts))
	for _, account := range accounts {
		audit, err := b.RecomputeBalance(ctx, account.ID)
		if err != nil {
			return audits, fmt.Errorf("audit bank account %d: %w", account.ID, err)
		}
		audits = append(audits, audit)
	}
	return audits, nil
}
