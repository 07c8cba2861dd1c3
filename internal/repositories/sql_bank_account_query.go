package repositories

const bankAccountColumns = `id, name, bank_code, branch, account_number, opening_balance, opening_balance_date,
		current_balance, active, created_at, updated_at`

var (
	queryBankAccountCreate = `
		INSERT INTO bank_account(
			name, bank_code, branch, account_number, opening_balance, opening_balance_date,
			current_balance, active, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $5, true, now(), now()
		)
		RETURNING ` + bankAccountColumns + `;`

	queryBankAccountGet = `SELECT ` + bankAccountColumns + ` FROM bank_account WHERE id = $1;`

	queryBankAccountGetForUpdate = `SELECT ` + bankAccountColumns + ` FROM bank_account WHERE id = $1 FOR UPDATE;`

	queryBankAccountList = `SELECT ` + bankAccountColumns + ` FROM bank_account ORDER BY id ASC;`

	queryBankAccountListActive = `SELECT ` + bankAccountColumns + ` FROM bank_account WHERE active = true ORDER BY id ASC;`

	queryBankAccountDeactivate = `UPDATE bank_account SET active = false, updated_at = now() WHERE id = $1;`

	queryBankAccountAdjustBalance = `
		UPDATE bank_account
		SET current_balance = current_balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING current_balance;`

	queryBankAccountSumActiveBalances = `SELECT COALESCE(SUM(current_balance), 0) FROM bank_account WHERE active = true;`

	queryBankAccountRecomputeBalance = `
		SELECT a.id, a.current_balance,
			a.opening_balance + COALESCE(SUM(CASE WHEN m.direction = 'credit' THEN m.amount ELSE -m.amount END), 0)
		FROM bank_account a
		LEFT JOIN bank_movement m ON m.bank_account_id = a.id
		WHERE a.id = $1
		GROUP BY a.id, a.current_balance, a.opening_balance;`
)
