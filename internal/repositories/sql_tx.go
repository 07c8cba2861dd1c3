package repositories

import (
	"context"
	"database/sql"
	"errors"
)

type txKey struct{}

var errLockOutsideTx = errors.New("row lock requested outside of a transaction")

type sqlTx interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func injectTx(ctx context.Context, db sqlTx) context.Context {
	return context.WithValue(ctx, txKey{}, db)
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(sqlTx)
	return ok
}

func (r *Repository) extractTxWrite(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(txKey{}).(sqlTx); ok {
		return db
	}
	return r.dbWrite
}

// extractTxRead prefers the running transaction so reads inside Atomic see
// its own writes.
func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(txKey{}).(sqlTx); ok {
		return db
	}
	return r.dbRead
}

// extractTxLock returns the running transaction, FOR UPDATE is meaningless without one.
func (r *Repository) extractTxLock(ctx context.Context) (sqlTx, error) {
	if db, ok := ctx.Value(txKey{}).(sqlTx); ok {
		return db, nil
	}
	return nil, errLockOutsideTx
}

type rowScanner interface {
	Scan(dest ...any) error
}
