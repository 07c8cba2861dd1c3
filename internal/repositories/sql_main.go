package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	bar *bankAccountRepository
	bmr *bankMovementRepository
	or  *obligationRepository
	rtr *recurringTemplateRepository
	shr *settlementHistoryRepository
	ofr *offsetRepository
	ccr *costCenterRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.bar = (*bankAccountRepository)(&rtx.common)
	rtx.bmr = (*bankMovementRepository)(&rtx.common)
	rtx.or = (*obligationRepository)(&rtx.common)
	rtx.rtr = (*recurringTemplateRepository)(&rtx.common)
	rtx.shr = (*settlementHistoryRepository)(&rtx.common)
	rtx.ofr = (*offsetRepository)(&rtx.common)
	rtx.ccr = (*costCenterRepository)(&rtx.common)

	return rtx
}

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main.go -package=mock
type SQLRepository interface {
	// Atomic runs steps in one transaction, repositories taken from r inside
	// steps share it. The transaction commits when steps returns nil.
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetBankAccountRepository() BankAccountRepository
	GetBankMovementRepository() BankMovementRepository
	GetObligationRepository() ObligationRepository
	GetRecurringTemplateRepository() RecurringTemplateRepository
	GetSettlementHistoryRepository() SettlementHistoryRepository
	GetOffsetRepository() OffsetRepository
	GetCostCenterRepository() CostCenterRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	if r.config.TransactionConfig.DBTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.TransactionConfig.DBTimeout)
		defer cancel()
	}

	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return mapDBError(err, "begin transaction")
	}

	xlog.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
					return
				}
				err = mapDBError(err, "commit transaction")
				xlog.Warn(ctx, "[DATABASE.TRANSACTION.COMMIT_FAILED]", xlog.Err(err))
				return
			}

			xlog.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetBankAccountRepository() BankAccountRepository {
	return r.bar
}

func (r *Repository) GetBankMovementRepository() BankMovementRepository {
	return r.bmr
}

func (r *Repository) GetObligationRepository() ObligationRepository {
	return r.or
}

func (r *Repository) GetRecurringTemplateRepository() RecurringTemplateRepository {
	return r.rtr
}

func (r *Repository) GetSettlementHistoryRepository() SettlementHistoryRepository {
	return r.shr
}

func (r *Repository) GetOffsetRepository() OffsetRepository {
	return r.ofr
}

func (r *Repository) GetCostCenterRepository() CostCenterRepository {
	return r.ccr
}
