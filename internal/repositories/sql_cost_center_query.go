package repositories

const costCenterColumns = `id, code, name, description, active`

var (
	queryCostCenterCreate = `
		INSERT INTO cost_center(
			code, name, description, active, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, true, now(), now()
		)
		RETURNING ` + costCenterColumns + `;`

	queryCostCenterGet = `SELECT ` + costCenterColumns + ` FROM cost_center WHERE id = $1;`

	queryCostCenterList = `SELECT ` + costCenterColumns + ` FROM cost_center ORDER BY code ASC;`

	queryCostCenterListActive = `SELECT ` + costCenterColumns + ` FROM cost_center WHERE active = true ORDER BY code ASC;`
)
