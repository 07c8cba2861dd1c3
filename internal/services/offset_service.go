package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

//go:generate mockgen -source=offset_service.go -destination=mock/offset_service.go -package=mock
type OffsetService interface {
	// Offset settles a payable against a receivable. No bank movement is
	// posted and no balance changes.
	Offset(ctx context.Context, in models.OffsetIn) (models.OffsetResult, error)
}

type offset service

var _ OffsetService = (*offset)(nil)

func (o *offset) Offset(ctx context.Context, in models.OffsetIn) (result models.OffsetResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !in.Amount.IsPositive() {
		return result, common.ErrInvalidAmount
	}
	if in.PayableID == in.ReceivableID {
		return result, fmt.Errorf("obligation %d offset against itself: %w", in.PayableID, common.ErrInvalidDirection)
	}
	in.OffsetDate = dateOrToday(in.OffsetDate)

	err = o.srv.atomic(ctx, "offset", func(ctx context.Context, repo repositories.SQLRepository) error {
		obligationRepo := repo.GetObligationRepository()

		locked := make(map[int64]models.Obligation, 2)
		for _, id := range models.SortedUniqueIDs([]int64{in.PayableID, in.ReceivableID}) {
			ob, err := obligationRepo.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			locked[id] = ob
		}

		payable, receivable := locked[in.PayableID], locked[in.ReceivableID]
		if payable.Direction != models.ObligationPayable {
			return fmt.Errorf("obligation %d is not a payable: %w", payable.ID, common.ErrInvalidDirection)
		}
		if receivable.Direction != models.ObligationReceivable {
			return fmt.Errorf("obligation %d is not a receivable: %w", receivable.ID, common.ErrInvalidDirection)
		}

		zero := models.ZeroMoney()
		payableApplied, err := payable.ApplySettlement(in.Amount, zero, zero, in.OffsetDate)
		if err != nil {
			return fmt.Errorf("payable %d: %w", payable.ID, err)
		}
		receivableApplied, err := receivable.ApplySettlement(in.Amount, zero, zero, in.OffsetDate)
		if err != nil {
			return fmt.Errorf("receivable %d: %w", receivable.ID, err)
		}

		if result.Payable, err = obligationRepo.Update(ctx, payableApplied); err != nil {
			return err
		}
		if result.Receivable, err = obligationRepo.Update(ctx, receivableApplied); err != nil {
			return err
		}
		if result.Offset, err = repo.GetOffsetRepository().Create(ctx, in); err != nil {
			return err
		}

		for _, id := range []int64{payable.ID, receivable.ID} {
			_, err = repo.GetSettlementHistoryRepository().Create(ctx, models.SettlementHistory{
				Operation:     models.SettlementOperationOffset,
				ObligationID:  id,
				OffsetID:      sql.NullInt64{Int64: result.Offset.ID, Valid: true},
				AmountApplied: in.Amount,
				InterestDelta: zero,
				DiscountDelta: zero,
				SettledAt:     in.OffsetDate,
				Note:          in.Note,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.OffsetResult{}, err
	}

	o.srv.ledgerMetrics().RecordSettlement(models.SettlementOperationOffset, result.Payable)
	o.srv.ledgerMetrics().RecordSettlement(models.SettlementOperationOffset, result.Receivable)
	return result, nil
}
