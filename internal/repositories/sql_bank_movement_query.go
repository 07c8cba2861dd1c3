package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/erpcore/go-fin-ledger/internal/models"
)

const bankMovementColumns = `id, bank_account_id, kind, direction, amount, posted_at, value_date, description,
		obligation_id, paired_movement_id, reference, reconciled, reconciled_at, created_at, updated_at`

const signedMovementAmount = `CASE WHEN direction = 'credit' THEN amount ELSE -amount END`

var (
	queryBankMovementCreate = `
		INSERT INTO bank_movement(
			bank_account_id, kind, direction, amount, posted_at, value_date, description,
			obligation_id, paired_movement_id, reference, reconciled, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, now(), $5, $6, $7, $8, $9, false, now(), now()
		)
		RETURNING ` + bankMovementColumns + `;`

	queryBankMovementGet = `SELECT ` + bankMovementColumns + ` FROM bank_movement WHERE id = $1;`

	queryBankMovementGetForUpdate = `SELECT ` + bankMovementColumns + ` FROM bank_movement WHERE id = $1 FOR UPDATE;`

	queryBankMovementUpdate = `
		UPDATE bank_movement
		SET kind = $2, direction = $3, amount = $4, value_date = $5, description = $6, updated_at = now()
		WHERE id = $1 AND reconciled = false
		RETURNING ` + bankMovementColumns + `;`

	queryBankMovementDelete = `DELETE FROM bank_movement WHERE id = $1 AND reconciled = false;`

	queryBankMovementSetPaired = `UPDATE bank_movement SET paired_movement_id = $2, updated_at = now() WHERE id = $1;`

	queryBankMovementFindReversal = `SELECT ` + bankMovementColumns + ` FROM bank_movement
		WHERE paired_movement_id = $1 AND kind = 'reversal'
		LIMIT 1;`

	queryBankMovementReconcile = `
		UPDATE bank_movement
		SET reconciled = true, reconciled_at = COALESCE(reconciled_at, now()), updated_at = now()
		WHERE bank_account_id = $1 AND id = ANY($2);`

	queryBankMovementUnreconcile = `
		UPDATE bank_movement
		SET reconciled = false, reconciled_at = NULL, updated_at = now()
		WHERE bank_account_id = $1 AND id = ANY($2);`

	queryBankMovementSumBefore = `SELECT COALESCE(SUM(` + signedMovementAmount + `), 0)
		FROM bank_movement
		WHERE bank_account_id = $1 AND value_date < $2;`

	queryBankMovementListInRange = `SELECT ` + bankMovementColumns + ` FROM bank_movement
		WHERE bank_account_id = $1 AND value_date BETWEEN $2 AND $3
		ORDER BY value_date ASC, posted_at ASC, id ASC;`

	queryBankMovementListUnreconciled = `SELECT ` + bankMovementColumns + ` FROM bank_movement
		WHERE bank_account_id = $1 AND reconciled = false
		ORDER BY value_date ASC, posted_at ASC, id ASC;`
)

func buildMovementFilter(accountID int64, filter models.MovementFilter) sq.And {
	where := sq.And{sq.Eq{"bank_account_id": accountID}}
	if filter.From != nil {
		where = append(where, sq.GtOrEq{"value_date": *filter.From})
	}
	if filter.To != nil {
		where = append(where, sq.LtOrEq{"value_date": *filter.To})
	}
	if filter.Reconciled != nil {
		where = append(where, sq.Eq{"reconciled": *filter.Reconciled})
	}
	return where
}

func buildListMovementQuery(accountID int64, filter models.MovementFilter) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select(bankMovementColumns).
		From("bank_movement").
		Where(buildMovementFilter(accountID, filter)).
		OrderBy("value_date DESC", "posted_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
}

func buildCountMovementQuery(accountID int64, filter models.MovementFilter) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select("COUNT(*)").
		From("bank_movement").
		Where(buildMovementFilter(accountID, filter))
}
