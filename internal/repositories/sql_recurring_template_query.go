package repositories

const recurringTemplateColumns = `id, direction, counterparty, description, amount, due_day, periodicity,
		start_date, end_date, active, last_generated_period, cost_center_id, created_at, updated_at`

var (
	queryRecurringTemplateCreate = `
		INSERT INTO recurring_template(
			direction, counterparty, description, amount, due_day, periodicity, start_date, end_date,
			active, cost_center_id, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, true, $9, now(), now()
		)
		RETURNING ` + recurringTemplateColumns + `;`

	queryRecurringTemplateGet = `SELECT ` + recurringTemplateColumns + ` FROM recurring_template WHERE id = $1;`

	queryRecurringTemplateGetForUpdate = `SELECT ` + recurringTemplateColumns + ` FROM recurring_template WHERE id = $1 FOR UPDATE;`

	queryRecurringTemplateList = `SELECT ` + recurringTemplateColumns + ` FROM recurring_template ORDER BY id ASC;`

	queryRecurringTemplateListActive = `SELECT ` + recurringTemplateColumns + ` FROM recurring_template WHERE active = true ORDER BY id ASC;`

	queryRecurringTemplateDeactivate = `UPDATE recurring_template SET active = false, updated_at = now() WHERE id = $1;`

	queryRecurringTemplateSetLastGeneratedPeriod = `
		UPDATE recurring_template SET last_generated_period = $2, updated_at = now() WHERE id = $1;`
)
