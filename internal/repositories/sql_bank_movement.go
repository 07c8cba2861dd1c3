package repositories

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_bank_movement.go -destination=mock/sql_bank_movement.go -package=mock
type BankMovementRepository interface {
	Create(ctx context.Context, movement models.BankMovement) (models.BankMovement, error)
	Get(ctx context.Context, id int64) (models.BankMovement, error)
	GetForUpdate(ctx context.Context, id int64) (models.BankMovement, error)
	// Update writes the editable columns of an unreconciled movement.
	Update(ctx context.Context, movement models.BankMovement) (models.BankMovement, error)
	Delete(ctx context.Context, id int64) error
	SetPaired(ctx context.Context, id, pairedID int64) error
	FindReversal(ctx context.Context, originalID int64) (models.BankMovement, error)
	// Reconcile and Unreconcile return how many of ids belong to the account.
	Reconcile(ctx context.Context, accountID int64, ids []int64) (int64, error)
	Unreconcile(ctx context.Context, accountID int64, ids []int64) (int64, error)
	SumBefore(ctx context.Context, accountID int64, before time.Time) (models.Money, error)
	ListInRange(ctx context.Context, accountID int64, from, to time.Time) ([]models.BankMovement, error)
	ListByAccount(ctx context.Context, accountID int64, filter models.MovementFilter) ([]models.BankMovement, int64, error)
	ListUnreconciled(ctx context.Context, accountID int64) ([]models.BankMovement, error)
}

type bankMovementRepository sqlRepo

var _ BankMovementRepository = (*bankMovementRepository)(nil)

func scanBankMovement(row rowScanner) (m models.BankMovement, err error) {
	err = row.Scan(
		&m.ID,
		&m.BankAccountID,
		&m.Kind,
		&m.Direction,
		&m.Amount,
		&m.PostedAt,
		&m.ValueDate,
		&m.Description,
		&m.ObligationID,
		&m.PairedMovementID,
		&m.Reference,
		&m.Reconciled,
		&m.ReconciledAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return
}

func (mr *bankMovementRepository) scanList(ctx context.Context, db sqlTx, query string, args ...any) ([]models.BankMovement, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.BankMovement{}
	for rows.Next() {
		m, err := scanBankMovement(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	return result, rows.Err()
}

func (mr *bankMovementRepository) Create(ctx context.Context, in models.BankMovement) (m models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	m, err = scanBankMovement(db.QueryRowContext(ctx, queryBankMovementCreate,
		in.BankAccountID,
		in.Kind,
		in.Direction,
		in.Amount,
		in.ValueDate,
		in.Description,
		in.ObligationID,
		in.PairedMovementID,
		in.Reference,
	))
	if err != nil {
		return m, mapDBError(err, "create movement on bank account %d", in.BankAccountID)
	}

	return m, nil
}

func (mr *bankMovementRepository) Get(ctx context.Context, id int64) (m models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	m, err = scanBankMovement(db.QueryRowContext(ctx, queryBankMovementGet, id))
	if err != nil {
		return m, mapDBError(err, "bank movement %d", id)
	}

	return m, nil
}

func (mr *bankMovementRepository) GetForUpdate(ctx context.Context, id int64) (m models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db, err := mr.r.extractTxLock(ctx)
	if err != nil {
		return m, err
	}

	m, err = scanBankMovement(db.QueryRowContext(ctx, queryBankMovementGetForUpdate, id))
	if err != nil {
		return m, mapDBError(err, "bank movement %d", id)
	}

	return m, nil
}

func (mr *bankMovementRepository) Update(ctx context.Context, in models.BankMovement) (m models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	m, err = scanBankMovement(db.QueryRowContext(ctx, queryBankMovementUpdate,
		in.ID,
		in.Kind,
		in.Direction,
		in.Amount,
		in.ValueDate,
		in.Description,
	))
	if err != nil {
		return m, mapDBError(err, "unreconciled bank movement %d", in.ID)
	}

	return m, nil
}

func (mr *bankMovementRepository) Delete(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryBankMovementDelete, id)
	if err != nil {
		return mapDBError(err, "delete bank movement %d", id)
	}

	return requireAffected(res, "unreconciled bank movement %d", id)
}

func (mr *bankMovementRepository) SetPaired(ctx context.Context, id, pairedID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryBankMovementSetPaired, id, pairedID)
	if err != nil {
		return mapDBError(err, "pair bank movement %d with %d", id, pairedID)
	}

	return requireAffected(res, "bank movement %d", id)
}

func (mr *bankMovementRepository) FindReversal(ctx context.Context, originalID int64) (m models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	m, err = scanBankMovement(db.QueryRowContext(ctx, queryBankMovementFindReversal, originalID))
	if err != nil {
		return m, mapDBError(err, "reversal of bank movement %d", originalID)
	}

	return m, nil
}

func (mr *bankMovementRepository) Reconcile(ctx context.Context, accountID int64, ids []int64) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryBankMovementReconcile, accountID, pq.Array(ids))
	if err != nil {
		return 0, mapDBError(err, "reconcile movements of bank account %d", accountID)
	}

	affected, err = res.RowsAffected()
	if err != nil {
		return 0, mapDBError(err, "reconcile movements of bank account %d", accountID)
	}

	return affected, nil
}

func (mr *bankMovementRepository) Unreconcile(ctx context.Context, accountID int64, ids []int64) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryBankMovementUnreconcile, accountID, pq.Array(ids))
	if err != nil {
		return 0, mapDBError(err, "unreconcile movements of bank account %d", accountID)
	}

	affected, err = res.RowsAffected()
	if err != nil {
		return 0, mapDBError(err, "unreconcile movements of bank account %d", accountID)
	}

	return affected, nil
}

func (mr *bankMovementRepository) SumBefore(ctx context.Context, accountID int64, before time.Time) (total models.Money, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	if err = db.QueryRowContext(ctx, queryBankMovementSumBefore, accountID, before).Scan(&total); err != nil {
		return total, mapDBError(err, "sum movements of bank account %d", accountID)
	}

	return total, nil
}

func (mr *bankMovementRepository) ListInRange(ctx context.Context, accountID int64, from, to time.Time) (result []models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	result, err = mr.scanList(ctx, db, queryBankMovementListInRange, accountID, from, to)
	if err != nil {
		return nil, mapDBError(err, "list movements of bank account %d", accountID)
	}

	return result, nil
}

func (mr *bankMovementRepository) ListByAccount(ctx context.Context, accountID int64, filter models.MovementFilter) (result []models.BankMovement, total int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	countQuery, countArgs, err := buildCountMovementQuery(accountID, filter).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err = db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapDBError(err, "count movements of bank account %d", accountID)
	}

	query, args, err := buildListMovementQuery(accountID, filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	result, err = mr.scanList(ctx, db, query, args...)
	if err != nil {
		return nil, 0, mapDBError(err, "list movements of bank account %d", accountID)
	}

	return result, total, nil
}

func (mr *bankMovementRepository) ListUnreconciled(ctx context.Context, accountID int64) (result []models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	result, err = mr.scanList(ctx, db, queryBankMovementListUnreconciled, accountID)
	if err != nil {
		return nil, mapDBError(err, "list unreconciled movements of bank account %d", accountID)
	}

	return result, nil
}
