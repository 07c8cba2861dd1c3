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

//go:generate mockgen -source=transfer_service.go -destination=mock/transfer_service.go -package=mock
type TransferService interface {
	Transfer(ctx context.Context, in models.TransferIn) (models.TransferResult, error)
}

type transfer service

var _ TransferService = (*transfer)(nil)

// Transfer moves money between two accounts as a debit and a credit movement
// that point at each other.
func (t *transfer) Transfer(ctx context.Context, in models.TransferIn) (result models.TransferResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !in.Amount.IsPositive() {
		return result, common.ErrInvalidAmount
	}
	if in.SourceAccountID == in.DestinationAccountID {
		return result, fmt.Errorf("bank account %d: %w", in.SourceAccountID, common.ErrSameAccount)
	}
	date := dateOrToday(in.Date)

	err = t.srv.atomic(ctx, "transfer", func(ctx context.Context, repo repositories.SQLRepository) error {
		accounts, err := lockBankAccounts(ctx, repo, in.SourceAccountID, in.DestinationAccountID)
		if err != nil {
			return err
		}
		source, destination := accounts[in.SourceAccountID], accounts[in.DestinationAccountID]
		if err = requireActive(source); err != nil {
			return err
		}
		if err = requireActive(destination); err != nil {
			return err
		}
		if source.CurrentBalance.LessThan(in.Amount) {
			return fmt.Errorf("bank account %d has %s, needs %s: %w",
				source.ID, source.CurrentBalance, in.Amount, common.ErrInsufficientFunds)
		}

		reference := t.srv.idgenerator.GenerateReference(t.srv.conf.LedgerConfig.TransferReferencePrefix, date)
		movementRepo := repo.GetBankMovementRepository()

		debit, err := movementRepo.Create(ctx, models.BankMovement{
			BankAccountID: source.ID,
			Kind:          models.MovementKindTransferOut,
			Direction:     models.DirectionDebit,
			Amount:        in.Amount,
			ValueDate:     date,
			Description:   transferDescription(in.Description, "to", destination),
			Reference:     sql.NullString{String: reference, Valid: true},
		})
		if err != nil {
			return err
		}
		credit, err := movementRepo.Create(ctx, models.BankMovement{
			BankAccountID:    destination.ID,
			Kind:             models.MovementKindTransferIn,
			Direction:        models.DirectionCredit,
			Amount:           in.Amount,
			ValueDate:        date,
			Description:      transferDescription(in.Description, "from", source),
			PairedMovementID: sql.NullInt64{Int64: debit.ID, Valid: true},
			Reference:        sql.NullString{String: reference, Valid: true},
		})
		if err != nil {
			return err
		}
		if err = movementRepo.SetPaired(ctx, debit.ID, credit.ID); err != nil {
			return err
		}
		debit.PairedMovementID = sql.NullInt64{Int64: credit.ID, Valid: true}

		if _, err = repo.GetBankAccountRepository().AdjustBalance(ctx, source.ID, debit.Signed()); err != nil {
			return err
		}
		if _, err = repo.GetBankAccountRepository().AdjustBalance(ctx, destination.ID, credit.Signed()); err != nil {
			return err
		}

		result = models.TransferResult{Reference: reference, Debit: debit, Credit: credit}
		return nil
	})
	if err != nil {
		return models.TransferResult{}, err
	}

	t.srv.ledgerMetrics().RecordTransfer()
	t.srv.ledgerMetrics().RecordMovement(result.Debit)
	t.srv.ledgerMetrics().RecordMovement(result.Credit)
	t.srv.publishLedgerEvent(ctx, models.LedgerEvent{
		Type:          models.LedgerEventTransferCompleted,
		BankAccountID: result.Debit.BankAccountID,
		MovementIDs:   []int64{result.Debit.ID, result.Credit.ID},
		Reference:     result.Reference,
		Amount:        in.Amount,
		Direction:     string(models.DirectionDebit),
	})
	return result, nil
}

func transferDescription(description, preposition string, counterpart models.BankAccount) string {
	if description != "" {
		return description
	}
	return fmt.Sprintf("Transfer %s %s", preposition, counterpart.Name)
}
