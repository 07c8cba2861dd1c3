package repositories

import (
	"context"
	"strings"

	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_cost_center.go -destination=mock/sql_cost_center.go -package=mock
type CostCenterRepository interface {
	Create(ctx context.Context, in models.CreateCostCenterIn) (models.CostCenter, error)
	Get(ctx context.Context, id int64) (models.CostCenter, error)
	List(ctx context.Context, activeOnly bool) ([]models.CostCenter, error)
}

type costCenterRepository sqlRepo

var _ CostCenterRepository = (*costCenterRepository)(nil)

func scanCostCenter(row rowScanner) (c models.CostCenter, err error) {
	err = row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Description,
		&c.Active,
	)
	return
}

func (cr *costCenterRepository) Create(ctx context.Context, in models.CreateCostCenterIn) (c models.CostCenter, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxWrite(ctx)

	code := strings.ToUpper(in.Code)
	c, err = scanCostCenter(db.QueryRowContext(ctx, queryCostCenterCreate, code, in.Name, in.Description))
	if err != nil {
		return c, mapDBError(err, "cost center %s", code)
	}

	return c, nil
}

func (cr *costCenterRepository) Get(ctx context.Context, id int64) (c models.CostCenter, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxRead(ctx)

	c, err = scanCostCenter(db.QueryRowContext(ctx, queryCostCenterGet, id))
	if err != nil {
		return c, mapDBError(err, "cost center %d", id)
	}

	return c, nil
}

func (cr *costCenterRepository) List(ctx context.Context, activeOnly bool) (result []models.CostCenter, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxRead(ctx)

	query := queryCostCenterList
	if activeOnly {
		query = queryCostCenterListActive
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapDBError(err, "list cost centers")
	}
	defer rows.Close()

	result = []models.CostCenter{}
	for rows.Next() {
		c, err := scanCostCenter(rows)
		if err != nil {
			return nil, mapDBError(err, "scan cost center")
		}
		result = append(result, c)
	}

	if err = rows.Err(); err != nil {
		return nil, mapDBError(err, "list cost centers")
	}

	return result, nil
}
