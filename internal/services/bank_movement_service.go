package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

//go:generate mockgen -source=bank_movement_service.go -destination=mock/bank_movement_service.go -package=mock
type JournalService interface {
	Post(ctx context.Context, in models.PostMovementIn) (models.BankMovement, error)
	Get(ctx context.Context, id int64) (models.BankMovement, error)
	Update(ctx context.Context, id int64, patch models.MovementPatch) (models.BankMovement, error)
	Delete(ctx context.Context, id int64) error
	Reverse(ctx context.Context, in models.ReverseMovementIn) (models.BankMovement, error)

	// Reconcile and Unreconcile apply to every id or to none of them.
	Reconcile(ctx context.Context, accountID int64, ids []int64) error
	Unreconcile(ctx context.Context, accountID int64, ids []int64) error

	Statement(ctx context.Context, accountID int64, from, to time.Time) (models.Statement, error)
	ListByAccount(ctx context.Context, accountID int64, filter models.MovementFilter) ([]models.BankMovement, int64, error)
}

type journal service

var _ JournalService = (*journal)(nil)

func (j *journal) Post(ctx context.Context, in models.PostMovementIn) (movement models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !in.Amount.IsPositive() {
		return movement, common.ErrInvalidAmount
	}
	direction, err := models.ResolveDirection(in.Kind, in.Direction)
	if err != nil {
		return movement, fmt.Errorf("kind %s direction %s: %w", in.Kind, in.Direction, err)
	}

	err = j.srv.atomic(ctx, "post_movement", func(ctx context.Context, repo repositories.SQLRepository) error {
		account, err := repo.GetBankAccountRepository().GetForUpdate(ctx, in.BankAccountID)
		if err != nil {
			return err
		}
		if err = requireActive(account); err != nil {
			return err
		}

		movement, err = repo.GetBankMovementRepository().Create(ctx, models.BankMovement{
			BankAccountID: account.ID,
			Kind:          in.Kind,
			Direction:     direction,
			Amount:        in.Amount,
			ValueDate:     dateOrToday(in.ValueDate),
			Description:   in.Description,
			ObligationID:  in.ObligationID,
		})
		if err != nil {
			return err
		}

		_, err = repo.GetBankAccountRepository().AdjustBalance(ctx, account.ID, movement.Signed())
		return err
	})
	if err != nil {
		return models.BankMovement{}, err
	}

	j.srv.ledgerMetrics().RecordMovement(movement)
	j.srv.publishLedgerEvent(ctx, models.LedgerEvent{
		Type:          models.LedgerEventMovementPosted,
		BankAccountID: movement.BankAccountID,
		MovementIDs:   []int64{movement.ID},
		Amount:        movement.Amount,
		Direction:     string(movement.Direction),
	})
	return movement, nil
}

func (j *journal) Get(ctx context.Context, id int64) (movement models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return j.srv.sqlRepo.GetBankMovementRepository().Get(ctx, id)
}

// Update reverses the old balance effect and applies the new one in the same
// unit of work. Linked movements only accept value date and description.
func (j *journal) Update(ctx context.Context, id int64, patch models.MovementPatch) (movement models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = j.srv.atomic(ctx, "update_movement", func(ctx context.Context, repo repositories.SQLRepository) error {
		current, err := repo.GetBankMovementRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		if _, err = repo.GetBankAccountRepository().GetForUpdate(ctx, current.BankAccountID); err != nil {
			return err
		}
		current, err = repo.GetBankMovementRepository().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if current.Reconciled {
			return fmt.Errorf("movement %d: %w", id, common.ErrAlreadyReconciled)
		}
		if patch.TouchesAmount() {
			if current.IsLinked() {
				return fmt.Errorf("movement %d: %w", id, common.ErrLinkedMovement)
			}
			if err = requireNotReversed(ctx, repo, current); err != nil {
				return err
			}
		}

		updated, err := patch.Apply(current)
		if err != nil {
			return err
		}
		movement, err = repo.GetBankMovementRepository().Update(ctx, updated)
		if err != nil {
			return err
		}

		delta := movement.Signed().Sub(current.Signed())
		if delta.IsZero() {
			return nil
		}
		_, err = repo.GetBankAccountRepository().AdjustBalance(ctx, movement.BankAccountID, delta)
		return err
	})
	if err != nil {
		return models.BankMovement{}, err
	}
	return movement, nil
}

// Delete removes a movement and its balance effect. Transfer legs are removed
// together with their pair. A reversal is removed alone and a reversed
// movement can not be removed while its reversal exists.
func (j *journal) Delete(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return j.srv.atomic(ctx, "delete_movement", func(ctx context.Context, repo repositories.SQLRepository) error {
		movementRepo := repo.GetBankMovementRepository()

		movement, err := movementRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if movement.IsSettlement() {
			return fmt.Errorf("movement %d: %w", id, common.ErrLinkedMovement)
		}

		legs := []models.BankMovement{movement}
		switch {
		case movement.IsTransferLeg():
			pair, err := movementRepo.Get(ctx, movement.PairedMovementID.Int64)
			if err != nil {
				return err
			}
			legs = append(legs, pair)
		case !movement.IsPaired():
			if err = requireNotReversed(ctx, repo, movement); err != nil {
				return err
			}
		}

		accountIDs := make([]int64, 0, len(legs))
		movementIDs := make([]int64, 0, len(legs))
		for _, leg := range legs {
			accountIDs = append(accountIDs, leg.BankAccountID)
			movementIDs = append(movementIDs, leg.ID)
		}
		if _, err = lockBankAccounts(ctx, repo, accountIDs...); err != nil {
			return err
		}

		locked := make([]models.BankMovement, 0, len(legs))
		for _, legID := range models.SortedUniqueIDs(movementIDs) {
			leg, err := movementRepo.GetForUpdate(ctx, legID)
			if err != nil {
				return err
			}
			if leg.Reconciled {
				return fmt.Errorf("movement %d: %w", leg.ID, common.ErrAlreadyReconciled)
			}
			locked = append(locked, leg)
		}

		for _, leg := range locked {
			if err = movementRepo.Delete(ctx, leg.ID); err != nil {
				return err
			}
			if _, err = repo.GetBankAccountRepository().AdjustBalance(ctx, leg.BankAccountID, leg.Signed().Neg()); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reverse posts an opposite movement of the same amount. Only the reversal
// points at the original, so a reconciled original is never written.
func (j *journal) Reverse(ctx context.Context, in models.ReverseMovementIn) (reversal models.BankMovement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = j.srv.atomic(ctx, "reverse_movement", func(ctx context.Context, repo repositories.SQLRepository) error {
		movementRepo := repo.GetBankMovementRepository()

		original, err := movementRepo.Get(ctx, in.MovementID)
		if err != nil {
			return err
		}
		account, err := repo.GetBankAccountRepository().GetForUpdate(ctx, original.BankAccountID)
		if err != nil {
			return err
		}
		original, err = movementRepo.GetForUpdate(ctx, in.MovementID)
		if err != nil {
			return err
		}

		_, err = movementRepo.FindReversal(ctx, original.ID)
		switch {
		case err == nil:
			return fmt.Errorf("movement %d: %w", original.ID, common.ErrAlreadyReversed)
		case !errors.Is(err, common.ErrDataNotFound):
			return err
		}
		if original.IsLinked() {
			return fmt.Errorf("movement %d: %w", original.ID, common.ErrLinkedMovement)
		}
		if err = requireActive(account); err != nil {
			return err
		}

		description := in.Description
		if description == "" {
			description = fmt.Sprintf("Reversal of movement #%d", original.ID)
		}
		reversal, err = movementRepo.Create(ctx, models.BankMovement{
			BankAccountID:    original.BankAccountID,
			Kind:             models.MovementKindReversal,
			Direction:        original.Direction.Opposite(),
			Amount:           original.Amount,
			ValueDate:        dateOrToday(in.ValueDate),
			Description:      description,
			PairedMovementID: sql.NullInt64{Int64: original.ID, Valid: true},
		})
		if err != nil {
			return err
		}
		_, err = repo.GetBankAccountRepository().AdjustBalance(ctx, reversal.BankAccountID, reversal.Signed())
		return err
	})
	if err != nil {
		return models.BankMovement{}, err
	}

	j.srv.ledgerMetrics().RecordMovement(reversal)
	j.srv.publishLedgerEvent(ctx, models.LedgerEvent{
		Type:          models.LedgerEventMovementPosted,
		BankAccountID: reversal.BankAccountID,
		MovementIDs:   []int64{in.MovementID, reversal.ID},
		Amount:        reversal.Amount,
		Direction:     string(reversal.Direction),
	})
	return reversal, nil
}

func (j *journal) Reconcile(ctx context.Context, accountID int64, ids []int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return j.setReconciled(ctx, "reconcile", accountID, ids, repositories.BankMovementRepository.Reconcile)
}

func (j *journal) Unreconcile(ctx context.Context, accountID int64, ids []int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return j.setReconciled(ctx, "unreconcile", accountID, ids, repositories.BankMovementRepository.Unreconcile)
}

func requireNotReversed(ctx context.Context, repo repositories.SQLRepository, movement models.BankMovement) error {
	reversal, err := repo.GetBankMovementRepository().FindReversal(ctx, movement.ID)
	switch {
	case err == nil:
		return fmt.Errorf("movement %d is reversed by movement %d: %w", movement.ID, reversal.ID, common.ErrLinkedMovement)
	case errors.Is(err, common.ErrDataNotFound):
		return nil
	default:
		return err
	}
}

type reconcileFunc func(r repositories.BankMovementRepository, ctx context.Context, accountID int64, ids []int64) (int64, error)

func (j *journal) setReconciled(ctx context.Context, operation string, accountID int64, ids []int64, apply reconcileFunc) error {
	unique := models.SortedUniqueIDs(ids)
	if len(unique) == 0 {
		return fmt.Errorf("%s: movement ids are required: %w", operation, common.ErrValidation)
	}

	return j.srv.atomic(ctx, operation, func(ctx context.Context, repo repositories.SQLRepository) error {
		if _, err := repo.GetBankAccountRepository().Get(ctx, accountID); err != nil {
			return err
		}

		affected, err := apply(repo.GetBankMovementRepository(), ctx, accountID, unique)
		if err != nil {
			return err
		}
		if affected != int64(len(unique)) {
			return fmt.Errorf("%s: %d of %d movements belong to bank account %d: %w",
				operation, affected, len(unique), accountID, common.ErrDataNotFound)
		}
		return nil
	})
}

// Statement is always rebuilt from the movement log, never from the cached
// balance.
func (j *journal) Statement(ctx context.Context, accountID int64, from, to time.Time) (statement models.Statement, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if to.Before(from) {
		return statement, fmt.Errorf("statement %s..%s: %w",
			from.Format(common.DateFormatYYYYMMDD), to.Format(common.DateFormatYYYYMMDD), common.ErrInvalidPeriod)
	}

	account, err := j.srv.sqlRepo.GetBankAccountRepository().Get(ctx, accountID)
	if err != nil {
		return statement, err
	}

	var (
		before    models.Money
		movements []models.BankMovement
	)
	movementRepo := j.srv.sqlRepo.GetBankMovementRepository()
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		before, err = movementRepo.SumBefore(egCtx, accountID, from)
		return err
	})
	eg.Go(func() (err error) {
		movements, err = movementRepo.ListInRange(egCtx, accountID, from, to)
		return err
	})
	if err = eg.Wait(); err != nil {
		return statement, err
	}

	opening := account.OpeningBalance.Add(before)
	return models.BuildStatement(accountID, from, to, opening, movements), nil
}

func (j *journal) ListByAccount(ctx context.Context, accountID int64, filter models.MovementFilter) (movements []models.BankMovement, total int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if _, err = j.srv.sqlRepo.GetBankAccountRepository().Get(ctx, accountID); err != nil {
		return nil, 0, err
	}

	page := j.srv.page(filter.Limit, filter.Offset)
	filter.Limit, filter.Offset = page.Limit, page.Offset

	return j.srv.sqlRepo.GetBankMovementRepository().ListByAccount(ctx, accountID, filter)
}
