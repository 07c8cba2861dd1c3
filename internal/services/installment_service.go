package services

import (
	"context"
	"fmt"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

//go:generate mockgen -source=installment_service.go -destination=mock/installment_service.go -package=mock
type InstallmentService interface {
	// Split is a pure calculation, every installment is round(principal/count).
	Split(principal models.Money, count int, firstDueDate time.Time, intervalDays int) ([]models.Installment, error)
	CreatePlan(ctx context.Context, in models.InstallmentPlanIn) ([]models.Obligation, error)
}

type installment service

var _ InstallmentService = (*installment)(nil)

func (i *installment) Split(principal models.Money, count int, firstDueDate time.Time, intervalDays int) ([]models.Installment, error) {
	if intervalDays == 0 {
		intervalDays = i.srv.conf.LedgerConfig.DefaultInstallmentIntervalDays
	}
	if limit := i.srv.conf.LedgerConfig.MaxInstallmentCount; limit > 0 && count > limit {
		return nil, fmt.Errorf("%w: at most %d installments", common.ErrInvalidInstallment, limit)
	}
	return models.SplitInstallments(principal, count, firstDueDate, intervalDays)
}

func (i *installment) CreatePlan(ctx context.Context, in models.InstallmentPlanIn) (obligations []models.Obligation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	installments, err := i.Split(in.Principal, in.Count, in.FirstDueDate, in.IntervalDays)
	if err != nil {
		return nil, err
	}

	planned := in.Obligations(installments)
	for idx := range planned {
		planned[idx], err = (*obligation)(i).prepare(ctx, planned[idx])
		if err != nil {
			return nil, err
		}
	}

	err = i.srv.atomic(ctx, "create_installment_plan", func(ctx context.Context, repo repositories.SQLRepository) error {
		obligations = make([]models.Obligation, 0, len(planned))
		for _, p := range planned {
			created, err := repo.GetObligationRepository().Create(ctx, p)
			if err != nil {
				return fmt.Errorf("installment %d/%d: %w", p.InstallmentIndex.Int32, p.InstallmentCount.Int32, err)
			}
			obligations = append(obligations, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obligations, nil
}
