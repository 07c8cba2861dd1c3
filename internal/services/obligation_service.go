package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

//go:generate mockgen -source=obligation_service.go -destination=mock/obligation_service.go -package=mock
type ObligationService interface {
	Create(ctx context.Context, in models.CreateObligationIn) (models.Obligation, error)
	CreatePayable(ctx context.Context, in models.CreateObligationIn) (models.Obligation, error)
	CreateReceivable(ctx context.Context, in models.CreateObligationIn) (models.Obligation, error)
	Get(ctx context.Context, id int64) (models.Obligation, error)
	List(ctx context.Context, filter models.ObligationFilter) ([]models.Obligation, int64, error)
	Reschedule(ctx context.Context, id int64, dueDate time.Time) (models.Obligation, error)
	ListSettlementHistory(ctx context.Context, obligationID int64) ([]models.SettlementHistory, error)
}

type obligation service

var _ ObligationService = (*obligation)(nil)

func (o *obligation) Create(ctx context.Context, in models.CreateObligationIn) (created models.Obligation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	in, err = o.prepare(ctx, in)
	if err != nil {
		return created, err
	}

	return o.srv.sqlRepo.GetObligationRepository().Create(ctx, in)
}

func (o *obligation) CreatePayable(ctx context.Context, in models.CreateObligationIn) (models.Obligation, error) {
	in.Direction = models.ObligationPayable
	return o.Create(ctx, in)
}

func (o *obligation) CreateReceivable(ctx context.Context, in models.CreateObligationIn) (models.Obligation, error) {
	in.Direction = models.ObligationReceivable
	return o.Create(ctx, in)
}

// prepare validates in and fills the issue date. It is shared by every path
// that creates obligations.
func (o *obligation) prepare(ctx context.Context, in models.CreateObligationIn) (models.CreateObligationIn, error) {
	if !in.Direction.Valid() {
		return in, fmt.Errorf("obligation direction %q: %w", in.Direction, common.ErrInvalidDirection)
	}
	if !in.OriginalAmount.IsPositive() {
		return in, fmt.Errorf("original amount %s: %w", in.OriginalAmount, common.ErrInvalidAmount)
	}
	in.Counterparty = strings.TrimSpace(in.Counterparty)
	if in.Counterparty == "" {
		return in, fmt.Errorf("counterparty is required: %w", common.ErrValidation)
	}
	if in.DueDate.IsZero() {
		return in, fmt.Errorf("due date is required: %w", common.ErrValidation)
	}
	in.IssueDate = dateOrToday(in.IssueDate)

	if in.CostCenterID.Valid {
		if err := (*costCenter)(o).requireActive(ctx, in.CostCenterID.Int64); err != nil {
			return in, err
		}
	}
	return in, nil
}

func (o *obligation) Get(ctx context.Context, id int64) (ob models.Obligation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return o.srv.sqlRepo.GetObligationRepository().Get(ctx, id)
}

func (o *obligation) List(ctx context.Context, filter models.ObligationFilter) (obligations []models.Obligation, total int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if filter.Direction != "" && !filter.Direction.Valid() {
		return nil, 0, fmt.Errorf("obligation direction %q: %w", filter.Direction, common.ErrInvalidDirection)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("obligation status %q: %w", filter.Status, common.ErrValidation)
	}

	page := o.srv.page(filter.Limit, filter.Offset)
	filter.Limit, filter.Offset = page.Limit, page.Offset

	return o.srv.sqlRepo.GetObligationRepository().List(ctx, filter)
}

func (o *obligation) Reschedule(ctx context.Context, id int64, dueDate time.Time) (updated models.Obligation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if dueDate.IsZero() {
		return updated, fmt.Errorf("due date is required: %w", common.ErrValidation)
	}

	err = o.srv.atomic(ctx, "reschedule", func(ctx context.Context, repo repositories.SQLRepository) error {
		current, err := repo.GetObligationRepository().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.IsSettled() {
			return fmt.Errorf("obligation %d: %w", id, common.ErrAlreadySettled)
		}

		current.DueDate = dueDate
		updated, err = repo.GetObligationRepository().Update(ctx, current)
		return err
	})
	if err != nil {
		return models.Obligation{}, err
	}
	return updated, nil
}

func (o *obligation) ListSettlementHistory(ctx context.Context, obligationID int64) (histories []models.SettlementHistory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if _, err = o.srv.sqlRepo.GetObligationRepository().Get(ctx, obligationID); err != nil {
		return nil, err
	}

	return o.srv.sqlRepo.GetSettlementHistoryRepository().ListByObligation(ctx, obligationID)
}
