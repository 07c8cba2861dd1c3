package repositories

import (
	"context"

	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_recurring_template.go -destination=mock/sql_recurring_template.go -package=mock
type RecurringTemplateRepository interface {
	Create(ctx context.Context, in models.CreateRecurringTemplateIn) (models.RecurringTemplate, error)
	Get(ctx context.Context, id int64) (models.RecurringTemplate, error)
	GetForUpdate(ctx context.Context, id int64) (models.RecurringTemplate, error)
	List(ctx context.Context, activeOnly bool) ([]models.RecurringTemplate, error)
	Deactivate(ctx context.Context, id int64) error
	SetLastGeneratedPeriod(ctx context.Context, id int64, period models.Period) error
}

type recurringTemplateRepository sqlRepo

var _ RecurringTemplateRepository = (*recurringTemplateRepository)(nil)

func scanRecurringTemplate(row rowScanner) (t models.RecurringTemplate, err error) {
	err = row.Scan(
		&t.ID,
		&t.Direction,
		&t.Counterparty,
		&t.Description,
		&t.Amount,
		&t.DueDay,
		&t.Periodicity,
		&t.StartDate,
		&t.EndDate,
		&t.Active,
		&t.LastGeneratedPeriod,
		&t.CostCenterID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return
}

func (rr *recurringTemplateRepository) Create(ctx context.Context, in models.CreateRecurringTemplateIn) (t models.RecurringTemplate, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)

	t, err = scanRecurringTemplate(db.QueryRowContext(ctx, queryRecurringTemplateCreate,
		in.Direction,
		in.Counterparty,
		in.Description,
		in.Amount,
		in.DueDay,
		in.Periodicity,
		in.StartDate,
		in.EndDate,
		in.CostCenterID,
	))
	if err != nil {
		return t, mapDBError(err, "create recurring template for %q", in.Counterparty)
	}

	return t, nil
}

func (rr *recurringTemplateRepository) Get(ctx context.Context, id int64) (t models.RecurringTemplate, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxRead(ctx)

	t, err = scanRecurringTemplate(db.QueryRowContext(ctx, queryRecurringTemplateGet, id))
	if err != nil {
		return t, mapDBError(err, "recurring template %d", id)
	}

	return t, nil
}

func (rr *recurringTemplateRepository) GetForUpdate(ctx context.Context, id int64) (t models.RecurringTemplate, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db, err := rr.r.extractTxLock(ctx)
	if err != nil {
		return t, err
	}

	t, err = scanRecurringTemplate(db.QueryRowContext(ctx, queryRecurringTemplateGetForUpdate, id))
	if err != nil {
		return t, mapDBError(err, "recurring template %d", id)
	}

	return t, nil
}

func (rr *recurringTemplateRepository) List(ctx context.Context, activeOnly bool) (result []models.RecurringTemplate, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxRead(ctx)

	query := queryRecurringTemplateList
	if activeOnly {
		query = queryRecurringTemplateListActive
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapDBError(err, "list recurring templates")
	}
	defer rows.Close()

	result = []models.RecurringTemplate{}
	for rows.Next() {
		t, err := scanRecurringTemplate(rows)
		if err != nil {
			return nil, mapDBError(err, "scan recurring template")
		}
		result = append(result, t)
	}

	if err = rows.Err(); err != nil {
		return nil, mapDBError(err, "list recurring templates")
	}

	return result, nil
}

func (rr *recurringTemplateRepository) Deactivate(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryRecurringTemplateDeactivate, id)
	if err != nil {
		return mapDBError(err, "deactivate recurring template %d", id)
	}

	return requireAffected(res, "recurring template %d", id)
}

func (rr *recurringTemplateRepository) SetLastGeneratedPeriod(ctx context.Context, id int64, period models.Period) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryRecurringTemplateSetLastGeneratedPeriod, id, period.String())
	if err != nil {
		return mapDBError(err, "recurring template %d", id)
	}

	return requireAffected(res, "recurring template %d", id)
}
