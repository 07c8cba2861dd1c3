package repositories

import (
	"context"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_obligation.go -destination=mock/sql_obligation.go -package=mock
type ObligationRepository interface {
	Create(ctx context.Context, in models.CreateObligationIn) (models.Obligation, error)
	Get(ctx context.Context, id int64) (models.Obligation, error)
	GetForUpdate(ctx context.Context, id int64) (models.Obligation, error)
	// Update persists the settlement columns, status and due date of o.
	Update(ctx context.Context, o models.Obligation) (models.Obligation, error)
	List(ctx context.Context, filter models.ObligationFilter) ([]models.Obligation, int64, error)
	OpenTotals(ctx context.Context, dueFrom, dueTo time.Time) ([]models.OpenObligationTotal, error)
}

type obligationRepository sqlRepo

var _ ObligationRepository = (*obligationRepository)(nil)

func scanObligation(row rowScanner) (o models.Obligation, err error) {
	err = row.Scan(
		&o.ID,
		&o.Direction,
		&o.Counterparty,
		&o.Description,
		&o.SourceReference,
		&o.CostCenterID,
		&o.OriginalAmount,
		&o.SettledAmount,
		&o.InterestAccrued,
		&o.DiscountGranted,
		&o.IssueDate,
		&o.DueDate,
		&o.SettledAt,
		&o.Status,
		&o.InstallmentIndex,
		&o.InstallmentCount,
		&o.RecurringTemplateID,
		&o.RecurringPeriod,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return
}

func (or *obligationRepository) Create(ctx context.Context, in models.CreateObligationIn) (o models.Obligation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := or.r.extractTxWrite(ctx)

	o, err = scanObligation(db.QueryRowContext(ctx, queryObligationCreate,
		in.Direction,
		in.Counterparty,
		in.Description,
		in.SourceReference,
		in.CostCenterID,
		in.OriginalAmount,
		in.IssueDate,
		in.DueDate,
		in.InstallmentIndex,
		in.InstallmentCount,
		in.RecurringTemplateID,
		in.RecurringPeriod,
	))
	if err != nil {
		return o, mapDBError(err, "create %s for %q", in.Direction, in.Counterparty)
	}

	return o, nil
}

func (or *obligationRepository) Get(ctx context.Context, id int64) (o models.Obligation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := or.r.extractTxRead(ctx)

	o, err = scanObligation(db.QueryRowContext(ctx, queryObligationGet, id))
	if err != nil {
		return o, mapDBError(err, "obligation %d", id)
	}

	return o, nil
}

func (or *obligationRepository) GetForUpdate(ctx context.Context, id int64) (o models.Obligation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db, err := or.r.extractTxLock(ctx)
	if err != nil {
		return o, err
	}

	o, err = scanObligation(db.QueryRowContext(ctx, queryObligationGetForUpdate, id))
	if err != nil {
		return o, mapDBError(err, "obligation %d", id)
	}

	return o, nil
}

func (or *obligationRepository) Update(ctx context.Context, in models.Obligation) (o models.Obligation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := or.r.extractTxWrite(ctx)

	o, err = scanObligation(db.QueryRowContext(ctx, queryObligationUpdate,
		in.ID,
		in.SettledAmount,
		in.InterestAccrued,
		in.DiscountGranted,
		in.SettledAt,
		in.Status,
		in.DueDate,
	))
	if err != nil {
		return o, mapDBError(err, "obligation %d", in.ID)
	}

	return o, nil
}

func (or *obligationRepository) List(ctx context.Context, filter models.ObligationFilter) (result []models.Obligation, total int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := or.r.extractTxRead(ctx)

	countQuery, countArgs, err := buildCountObligationQuery(filter).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err = db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapDBError(err, "count obligations")
	}

	query, args, err := buildListObligationQuery(filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapDBError(err, "list obligations")
	}
	defer rows.Close()

	result = []models.Obligation{}
	for rows.Next() {
		o, err := scanObligation(rows)
		if err != nil {
			return nil, 0, mapDBError(err, "scan obligation")
		}
		result = append(result, o)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, mapDBError(err, "list obligations")
	}

	return result, total, nil
}

func (or *obligationRepository) OpenTotals(ctx context.Context, dueFrom, dueTo time.Time) (result []models.OpenObligationTotal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := or.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryObligationOpenTotals, dueFrom, dueTo)
	if err != nil {
		return nil, mapDBError(err, "open obligation totals")
	}
	defer rows.Close()

	for rows.Next() {
		var total models.OpenObligationTotal
		if err := rows.Scan(&total.Direction, &total.Count, &total.Remaining); err != nil {
			return nil, mapDBError(err, "scan open obligation total")
		}
		result = append(result, total)
	}

	if err = rows.Err(); err != nil {
		return nil, mapDBError(err, "open obligation totals")
	}

	return result, nil
}
