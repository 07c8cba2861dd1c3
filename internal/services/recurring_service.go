package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

//go:generate mockgen -source=recurring_service.go -destination=mock/recurring_service.go -package=mock
type RecurringService interface {
	CreateTemplate(ctx context.Context, in models.CreateRecurringTemplateIn) (models.RecurringTemplate, error)
	DeactivateTemplate(ctx context.Context, id int64) error
	ListTemplates(ctx context.Context, activeOnly bool) ([]models.RecurringTemplate, error)

	// GenerateForPeriod creates at most one obligation per template and period.
	// Running it twice for the same period generates nothing the second time.
	GenerateForPeriod(ctx context.Context, period models.Period) (models.GenerationResult, error)
}

type recurring service

var _ RecurringService = (*recurring)(nil)

var errTemplateNotEligible = errors.New("template not eligible for period")

func (r *recurring) CreateTemplate(ctx context.Context, in models.CreateRecurringTemplateIn) (template models.RecurringTemplate, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !in.Direction.Valid() {
		return template, fmt.Errorf("template direction %q: %w", in.Direction, common.ErrInvalidDirection)
	}
	if !in.Amount.IsPositive() {
		return template, fmt.Errorf("template amount %s: %w", in.Amount, common.ErrInvalidAmount)
	}
	if in.DueDay < 1 || in.DueDay > models.MaxDueDay {
		return template, fmt.Errorf("due day %d: %w", in.DueDay, common.ErrInvalidDueDay)
	}
	if in.Periodicity == "" {
		in.Periodicity = models.PeriodicityMonthly
	}
	if in.Periodicity != models.PeriodicityMonthly {
		return template, fmt.Errorf("periodicity %q is not supported: %w", in.Periodicity, common.ErrValidation)
	}
	in.Counterparty = strings.TrimSpace(in.Counterparty)
	if in.Counterparty == "" {
		return template, fmt.Errorf("counterparty is required: %w", common.ErrValidation)
	}
	if in.StartDate.IsZero() {
		in.StartDate = today()
	}
	if in.EndDate.Valid && in.EndDate.Time.Before(in.StartDate) {
		return template, fmt.Errorf("end date before start date: %w", common.ErrInvalidPeriod)
	}
	if in.CostCenterID.Valid {
		if err = (*costCenter)(r).requireActive(ctx, in.CostCenterID.Int64); err != nil {
			return template, err
		}
	}

	return r.srv.sqlRepo.GetRecurringTemplateRepository().Create(ctx, in)
}

func (r *recurring) DeactivateTemplate(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return r.srv.sqlRepo.GetRecurringTemplateRepository().Deactivate(ctx, id)
}

func (r *recurring) ListTemplates(ctx context.Context, activeOnly bool) (templates []models.RecurringTemplate, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return r.srv.sqlRepo.GetRecurringTemplateRepository().List(ctx, activeOnly)
}

// GenerateForPeriod runs one unit of work per template. A failing template
// does not stop the others, failures are returned together.
func (r *recurring) GenerateForPeriod(ctx context.Context, period models.Period) (result models.GenerationResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	result = models.GenerationResult{Period: period, Generated: []models.Obligation{}}

	templates, err := r.srv.sqlRepo.GetRecurringTemplateRepository().List(ctx, true)
	if err != nil {
		return result, err
	}

	var errs *multierror.Error
	for _, t := range templates {
		if !t.EligibleFor(period) {
			result.Skipped++
			continue
		}

		generated, err := r.generate(ctx, t.ID, period)
		switch {
		case err == nil:
			result.Generated = append(result.Generated, generated)
		case errors.Is(err, errTemplateNotEligible), errors.Is(err, common.ErrDataExist):
			result.Skipped++
		default:
			result.Failed++
			errs = multierror.Append(errs, fmt.Errorf("template %d: %w", t.ID, err))
		}
	}

	r.srv.ledgerMetrics().RecordGeneration(result)
	xlog.Info(ctx, "[RECURRING] generation finished",
		xlog.String("period", period.String()),
		xlog.Int("generated", len(result.Generated)),
		xlog.Int("skipped", result.Skipped),
		xlog.Int("failed", result.Failed))

	return result, errs.ErrorOrNil()
}

func (r *recurring) generate(ctx context.Context, templateID int64, period models.Period) (generated models.Obligation, err error) {
	err = r.srv.atomic(ctx, "generate_recurring", func(ctx context.Context, repo repositories.SQLRepository) error {
		template, err := repo.GetRecurringTemplateRepository().GetForUpdate(ctx, templateID)
		if err != nil {
			return err
		}
		if !template.EligibleFor(period) {
			return errTemplateNotEligible
		}

		generated, err = repo.GetObligationRepository().Create(ctx, template.ObligationFor(period))
		if err != nil {
			return err
		}

		return repo.GetRecurringTemplateRepository().SetLastGeneratedPeriod(ctx, template.ID, period)
	})
	return generated, err
}
