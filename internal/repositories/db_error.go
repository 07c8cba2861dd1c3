package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

// SQLSTATE codes the ledger reacts to.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
)

// mapDBError translates driver errors into ledger sentinels, subject names
// the row the statement was about.
func mapDBError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	subject := fmt.Sprintf(format, args...)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", subject, common.ErrDataNotFound)
	}

	code, constraint := sqlState(err)
	switch code {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected:
		return fmt.Errorf("%s: %w", subject, common.ErrStorageConflict)
	case sqlStateUniqueViolation:
		return fmt.Errorf("%s violates %s: %w", subject, constraint, common.ErrDataExist)
	case sqlStateForeignKeyViolation:
		return fmt.Errorf("%s references a missing row (%s): %w", subject, constraint, common.ErrDataNotFound)
	}

	return fmt.Errorf("%s: %w", subject, err)
}

func sqlState(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}

// requireAffected turns an UPDATE or DELETE that touched nothing into ErrDataNotFound.
func requireAffected(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapDBError(err, format, args...)
	}
	if n == 0 {
		return mapDBError(sql.ErrNoRows, format, args...)
	}
	return nil
}
