package repositories

import (
	"context"

	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_settlement_history.go -destination=mock/sql_settlement_history.go -package=mock
type SettlementHistoryRepository interface {
	Create(ctx context.Context, h models.SettlementHistory) (models.SettlementHistory, error)
	ListByObligation(ctx context.Context, obligationID int64) ([]models.SettlementHistory, error)
}

// OffsetRepository stores compensations between a payable and a receivable.
type OffsetRepository interface {
	Create(ctx context.Context, in models.OffsetIn) (models.Offset, error)
}

type settlementHistoryRepository sqlRepo

type offsetRepository sqlRepo

var (
	_ SettlementHistoryRepository = (*settlementHistoryRepository)(nil)
	_ OffsetRepository            = (*offsetRepository)(nil)
)

func scanSettlementHistory(row rowScanner) (h models.SettlementHistory, err error) {
	err = row.Scan(
		&h.ID,
		&h.Operation,
		&h.ObligationID,
		&h.BankMovementID,
		&h.OffsetID,
		&h.AmountApplied,
		&h.InterestDelta,
		&h.DiscountDelta,
		&h.SettledAt,
		&h.Note,
		&h.CreatedAt,
	)
	return
}

func (sr *settlementHistoryRepository) Create(ctx context.Context, in models.SettlementHistory) (h models.SettlementHistory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := sr.r.extractTxWrite(ctx)

	h, err = scanSettlementHistory(db.QueryRowContext(ctx, querySettlementHistoryCreate,
		in.Operation,
		in.ObligationID,
		in.BankMovementID,
		in.OffsetID,
		in.AmountApplied,
		in.InterestDelta,
		in.DiscountDelta,
		in.SettledAt,
		in.Note,
	))
	if err != nil {
		return h, mapDBError(err, "settlement history of obligation %d", in.ObligationID)
	}

	return h, nil
}

func (sr *settlementHistoryRepository) ListByObligation(ctx context.Context, obligationID int64) (result []models.SettlementHistory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := sr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, querySettlementHistoryListByObligation, obligationID)
	if err != nil {
		return nil, mapDBError(err, "settlement history of obligation %d", obligationID)
	}
	defer rows.Close()

	result = []models.SettlementHistory{}
	for rows.Next() {
		h, err := scanSettlementHistory(rows)
		if err != nil {
			return nil, mapDBError(err, "scan settlement history")
		}
		result = append(result, h)
	}

	if err = rows.Err(); err != nil {
		return nil, mapDBError(err, "settlement history of obligation %d", obligationID)
	}

	return result, nil
}

func (or *offsetRepository) Create(ctx context.Context, in models.OffsetIn) (o models.Offset, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := or.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, queryOffsetCreate,
		in.PayableID,
		in.ReceivableID,
		in.Amount,
		in.OffsetDate,
		in.Note,
	).Scan(
		&o.ID,
		&o.PayableID,
		&o.ReceivableID,
		&o.Amount,
		&o.OffsetDate,
		&o.Note,
		&o.CreatedAt,
	)
	if err != nil {
		return o, mapDBError(err, "offset of payable %d with receivable %d", in.PayableID, in.ReceivableID)
	}

	return o, nil
}
