package repositories

import (
	"context"

	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_bank_account.go -destination=mock/sql_bank_account.go -package=mock
type BankAccountRepository interface {
	Create(ctx context.Context, in models.CreateBankAccountIn) (models.BankAccount, error)
	Get(ctx context.Context, id int64) (models.BankAccount, error)
	// GetForUpdate locks the account row until the running transaction ends.
	GetForUpdate(ctx context.Context, id int64) (models.BankAccount, error)
	List(ctx context.Context, filter models.BankAccountFilter) ([]models.BankAccount, error)
	Deactivate(ctx context.Context, id int64) error
	// AdjustBalance adds delta to the cached balance and returns the new value.
	AdjustBalance(ctx context.Context, id int64, delta models.Money) (models.Money, error)
	SumActiveBalances(ctx context.Context) (models.Money, error)
	RecomputeBalance(ctx context.Context, id int64) (models.BalanceAudit, error)
}

type bankAccountRepository sqlRepo

var _ BankAccountRepository = (*bankAccountRepository)(nil)

func scanBankAccount(row rowScanner) (a models.BankAccount, err error) {
	err = row.Scan(
		&a.ID,
		&a.Name,
		&a.BankCode,
		&a.Branch,
		&a.AccountNumber,
		&a.OpeningBalance,
		&a.OpeningBalanceDate,
		&a.CurrentBalance,
		&a.Active,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return
}

func (br *bankAccountRepository) Create(ctx context.Context, in models.CreateBankAccountIn) (account models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxWrite(ctx)

	account, err = scanBankAccount(db.QueryRowContext(ctx, queryBankAccountCreate,
		in.Name,
		in.BankCode,
		in.Branch,
		in.AccountNumber,
		in.OpeningBalance,
		in.OpeningBalanceDate,
	))
	if err != nil {
		return account, mapDBError(err, "create bank account %q", in.Name)
	}

	return account, nil
}

func (br *bankAccountRepository) Get(ctx context.Context, id int64) (account models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxRead(ctx)

	account, err = scanBankAccount(db.QueryRowContext(ctx, queryBankAccountGet, id))
	if err != nil {
		return account, mapDBError(err, "bank account %d", id)
	}

	return account, nil
}

func (br *bankAccountRepository) GetForUpdate(ctx context.Context, id int64) (account models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db, err := br.r.extractTxLock(ctx)
	if err != nil {
		return account, err
	}

	account, err = scanBankAccount(db.QueryRowContext(ctx, queryBankAccountGetForUpdate, id))
	if err != nil {
		return account, mapDBError(err, "bank account %d", id)
	}

	return account, nil
}

func (br *bankAccountRepository) List(ctx context.Context, filter models.BankAccountFilter) (accounts []models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxRead(ctx)

	query := queryBankAccountList
	if filter.ActiveOnly {
		query = queryBankAccountListActive
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapDBError(err, "list bank accounts")
	}
	defer rows.Close()

	accounts = []models.BankAccount{}
	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, mapDBError(err, "scan bank account")
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, mapDBError(err, "list bank accounts")
	}

	return accounts, nil
}

func (br *bankAccountRepository) Deactivate(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryBankAccountDeactivate, id)
	if err != nil {
		return mapDBError(err, "deactivate bank account %d", id)
	}

	return requireAffected(res, "bank account %d", id)
}

func (br *bankAccountRepository) AdjustBalance(ctx context.Context, id int64, delta models.Money) (balance models.Money, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxWrite(ctx)

	if err = db.QueryRowContext(ctx, queryBankAccountAdjustBalance, id, delta).Scan(&balance); err != nil {
		return balance, mapDBError(err, "bank account %d", id)
	}

	return balance, nil
}

func (br *bankAccountRepository) SumActiveBalances(ctx context.Context) (total models.Money, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxRead(ctx)

	if err = db.QueryRowContext(ctx, queryBankAccountSumActiveBalances).Scan(&total); err != nil {
		return total, mapDBError(err, "sum active balances")
	}

	return total, nil
}

func (br *bankAccountRepository) RecomputeBalance(ctx context.Context, id int64) (audit models.BalanceAudit, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryBankAccountRecomputeBalance, id).Scan(
		&audit.AccountID,
		&audit.CachedBalance,
		&audit.RecomputedBalance,
	)
	if err != nil {
		return audit, mapDBError(err, "bank account %d", id)
	}

	return audit, nil
}
