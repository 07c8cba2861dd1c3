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

//go:generate mockgen -source=settlement_service.go -destination=mock/settlement_service.go -package=mock
type SettlementService interface {
	// Settle applies a payment or receipt to an obligation and posts the
	// matching bank movement in the same unit of work.
	Settle(ctx context.Context, in models.SettleIn) (models.SettlementResult, error)
}

type settlement service

var _ SettlementService = (*settlement)(nil)

func (s *settlement) Settle(ctx context.Context, in models.SettleIn) (result models.SettlementResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !in.AmountApplied.IsPositive() || in.InterestDelta.IsNegative() || in.DiscountDelta.IsNegative() {
		return result, common.ErrInvalidAmount
	}
	settledAt := dateOrToday(in.SettledAt)

	err = s.srv.atomic(ctx, "settle", func(ctx context.Context, repo repositories.SQLRepository) error {
		// obligation first, then account
		obligation, err := repo.GetObligationRepository().GetForUpdate(ctx, in.ObligationID)
		if err != nil {
			return err
		}
		account, err := repo.GetBankAccountRepository().GetForUpdate(ctx, in.BankAccountID)
		if err != nil {
			return err
		}
		if err = requireActive(account); err != nil {
			return err
		}

		applied, err := obligation.ApplySettlement(in.AmountApplied, in.InterestDelta, in.DiscountDelta, settledAt)
		if err != nil {
			return fmt.Errorf("obligation %d: %w", obligation.ID, err)
		}

		direction := obligation.Direction.MovementDirection()
		if direction == models.DirectionDebit && account.CurrentBalance.LessThan(in.AmountApplied) {
			return fmt.Errorf("bank account %d has %s, needs %s: %w",
				account.ID, account.CurrentBalance, in.AmountApplied, common.ErrInsufficientFunds)
		}

		kind := models.MovementKindWithdrawal
		if direction == models.DirectionCredit {
			kind = models.MovementKindDeposit
		}
		movement, err := repo.GetBankMovementRepository().Create(ctx, models.BankMovement{
			BankAccountID: account.ID,
			Kind:          kind,
			Direction:     direction,
			Amount:        in.AmountApplied,
			ValueDate:     settledAt,
			Description:   settlementDescription(obligation, in.Note),
			ObligationID:  sql.NullInt64{Int64: obligation.ID, Valid: true},
		})
		if err != nil {
			return err
		}
		if _, err = repo.GetBankAccountRepository().AdjustBalance(ctx, account.ID, movement.Signed()); err != nil {
			return err
		}

		updated, err := repo.GetObligationRepository().Update(ctx, applied)
		if err != nil {
			return err
		}

		history, err := repo.GetSettlementHistoryRepository().Create(ctx, models.SettlementHistory{
			Operation:      models.SettlementOperationSettlement,
			ObligationID:   obligation.ID,
			BankMovementID: sql.NullInt64{Int64: movement.ID, Valid: true},
			AmountApplied:  in.AmountApplied,
			InterestDelta:  in.InterestDelta,
			DiscountDelta:  in.DiscountDelta,
			SettledAt:      settledAt,
			Note:           in.Note,
		})
		if err != nil {
			return err
		}

		result = models.SettlementResult{Obligation: updated, Movement: movement, History: history}
		return nil
	})
	if err != nil {
		return models.SettlementResult{}, err
	}

	s.srv.ledgerMetrics().RecordSettlement(models.SettlementOperationSettlement, result.Obligation)
	s.srv.ledgerMetrics().RecordMovement(result.Movement)
	s.srv.publishLedgerEvent(ctx, models.LedgerEvent{
		Type:          models.LedgerEventObligationSettled,
		BankAccountID: result.Movement.BankAccountID,
		MovementIDs:   []int64{result.Movement.ID},
		ObligationID:  result.Obligation.ID,
		Amount:        in.AmountApplied,
		Direction:     string(result.Movement.Direction),
		Status:        string(result.Obligation.Status),
	})
	return result, nil
}

func settlementDescription(o models.Obligation, note string) string {
	if note != "" {
		return note
	}
	return fmt.Sprintf("Settlement of %s #%d - %s", o.Direction, o.ID, o.Counterparty)
}
