package repositories

const settlementHistoryColumns = `id, operation, obligation_id, bank_movement_id, offset_id, amount_applied,
		interest_delta, discount_delta, settled_at, note, created_at`

var (
	querySettlementHistoryCreate = `
		INSERT INTO settlement_history(
			operation, obligation_id, bank_movement_id, offset_id, amount_applied,
			interest_delta, discount_delta, settled_at, note, created_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, now()
		)
		RETURNING ` + settlementHistoryColumns + `;`

	querySettlementHistoryListByObligation = `SELECT ` + settlementHistoryColumns + ` FROM settlement_history
		WHERE obligation_id = $1
		ORDER BY settled_at ASC, id ASC;`

	queryOffsetCreate = `
		INSERT INTO obligation_offset(
			payable_id, receivable_id, amount, offset_date, note, created_at
		)
		VALUES(
			$1, $2, $3, $4, $5, now()
		)
		RETURNING id, payable_id, receivable_id, amount, offset_date, note, created_at;`
)
