package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/erpcore/go-fin-ledger/internal/models"
)

const obligationColumns = `id, direction, counterparty, description, source_reference, cost_center_id,
		original_amount, settled_amount, interest_accrued, discount_granted, issue_date, due_date,
		settled_at, status, installment_index, installment_count, recurring_template_id, recurring_period,
		created_at, updated_at`

const obligationRemaining = `original_amount + interest_accrued - discount_granted - settled_amount`

var (
	queryObligationCreate = `
		INSERT INTO obligation(
			direction, counterparty, description, source_reference, cost_center_id,
			original_amount, settled_amount, interest_accrued, discount_granted, issue_date, due_date,
			status, installment_index, installment_count, recurring_template_id, recurring_period,
			created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, 0, 0, 0, $7, $8, 'pending', $9, $10, $11, $12, now(), now()
		)
		RETURNING ` + obligationColumns + `;`

	queryObligationGet = `SELECT ` + obligationColumns + ` FROM obligation WHERE id = $1;`

	queryObligationGetForUpdate = `SELECT ` + obligationColumns + ` FROM obligation WHERE id = $1 FOR UPDATE;`

	queryObligationUpdate = `
		UPDATE obligation
		SET settled_amount = $2, interest_accrued = $3, discount_granted = $4, settled_at = $5,
			status = $6, due_date = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + obligationColumns + `;`

	queryObligationOpenTotals = `
		SELECT direction, COUNT(*), COALESCE(SUM(` + obligationRemaining + `), 0)
		FROM obligation
		WHERE status <> 'settled' AND due_date BETWEEN $1 AND $2
		GROUP BY direction
		ORDER BY direction;`
)

func buildObligationFilter(filter models.ObligationFilter) sq.And {
	where := sq.And{}
	if filter.Direction != "" {
		where = append(where, sq.Eq{"direction": filter.Direction})
	}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	if filter.Counterparty != "" {
		where = append(where, sq.ILike{"counterparty": "%" + filter.Counterparty + "%"})
	}
	if filter.DueFrom != nil {
		where = append(where, sq.GtOrEq{"due_date": *filter.DueFrom})
	}
	if filter.DueTo != nil {
		where = append(where, sq.LtOrEq{"due_date": *filter.DueTo})
	}
	return where
}

func buildListObligationQuery(filter models.ObligationFilter) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select(obligationColumns).
		From("obligation").
		Where(buildObligationFilter(filter)).
		OrderBy("due_date ASC", "id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
}

func buildCountObligationQuery(filter models.ObligationFilter) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select("COUNT(*)").
		From("obligation").
		Where(buildObligationFilter(filter))
}
