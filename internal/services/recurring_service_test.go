package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

func sampleTemplate(id int64) models.RecurringTemplate {
	return models.RecurringTemplate{
		ID:           id,
		Direction:    models.ObligationPayable,
		Counterparty: "Landlord",
		Description:  "Office rent",
		Amount:       models.MustMoney("2500.00"),
		DueDay:       10,
		Periodicity:  models.PeriodicityMonthly,
		StartDate:    date("2025-01-01"),
		Active:       true,
	}
}

func TestRecurringService_CreateTemplate(t *testing.T) {
	validIn := func() models.CreateRecurringTemplateIn {
		return models.CreateRecurringTemplateIn{
			Direction:    models.ObligationPayable,
			Counterparty: "Landlord",
			Amount:       models.MustMoney("2500.00"),
			DueDay:       10,
			StartDate:    date("2025-01-01"),
		}
	}

	tests := []struct {
		name    string
		mutate  func(in *models.CreateRecurringTemplateIn)
		wantErr error
	}{
		{name: "valid"},
		{name: "due day 31", mutate: func(in *models.CreateRecurringTemplateIn) { in.DueDay = 31 }, wantErr: common.ErrInvalidDueDay},
		{name: "due day 0", mutate: func(in *models.CreateRecurringTemplateIn) { in.DueDay = 0 }, wantErr: common.ErrInvalidDueDay},
		{name: "weekly", mutate: func(in *models.CreateRecurringTemplateIn) { in.Periodicity = "weekly" }, wantErr: common.ErrValidation},
		{
			name: "end before start",
			mutate: func(in *models.CreateRecurringTemplateIn) {
				in.EndDate = sql.NullTime{Time: date("2024-12-01"), Valid: true}
			},
			wantErr: common.ErrInvalidPeriod,
		},
		{name: "negative amount", mutate: func(in *models.CreateRecurringTemplateIn) { in.Amount = models.MustMoney("-1") }, wantErr: common.ErrInvalidAmount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			in := validIn()
			if tc.mutate != nil {
				tc.mutate(&in)
			}
			if tc.wantErr == nil {
				h.mockRecurringRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.CreateRecurringTemplateIn) (models.RecurringTemplate, error) {
						assert.Equal(t, models.PeriodicityMonthly, in.Periodicity)
						return models.RecurringTemplate{ID: 1}, nil
					})
			}

			_, err := h.recurringService.CreateTemplate(context.TODO(), in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRecurringService_GenerateForPeriod(t *testing.T) {
	period := models.Period{Year: 2025, Month: 3}

	t.Run("generates once per template and period", func(t *testing.T) {
		h := serviceTestHelper(t)

		eligible := sampleTemplate(1)
		alreadyGenerated := sampleTemplate(2)
		alreadyGenerated.LastGeneratedPeriod = sql.NullString{String: "2025-03", Valid: true}
		notStarted := sampleTemplate(3)
		notStarted.StartDate = date("2025-04-01")

		h.mockRecurringRepo.EXPECT().List(gomock.Any(), true).
			Return([]models.RecurringTemplate{eligible, alreadyGenerated, notStarted}, nil)
		h.mockRecurringRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(eligible, nil)
		h.mockObligationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in models.CreateObligationIn) (models.Obligation, error) {
				assert.Equal(t, date("2025-03-10"), in.DueDate)
				assert.Equal(t, date("2025-03-01"), in.IssueDate)
				assert.Equal(t, sql.NullString{String: "2025-03", Valid: true}, in.RecurringPeriod)
				assert.Equal(t, sql.NullInt64{Int64: 1, Valid: true}, in.RecurringTemplateID)
				return models.Obligation{ID: 50, RecurringPeriod: in.RecurringPeriod}, nil
			})
		h.mockRecurringRepo.EXPECT().SetLastGeneratedPeriod(gomock.Any(), int64(1), period).Return(nil)

		result, err := h.recurringService.GenerateForPeriod(context.TODO(), period)
		require.NoError(t, err)
		assert.Len(t, result.Generated, 1)
		assert.Equal(t, 2, result.Skipped)
		assert.Zero(t, result.Failed)
	})

	t.Run("concurrent run already generated the period", func(t *testing.T) {
		h := serviceTestHelper(t)

		stale := sampleTemplate(1)
		fresh := sampleTemplate(1)
		fresh.LastGeneratedPeriod = sql.NullString{String: "2025-03", Valid: true}
		duplicate := sampleTemplate(2)

		h.mockRecurringRepo.EXPECT().List(gomock.Any(), true).Return([]models.RecurringTemplate{stale, duplicate}, nil)
		h.mockRecurringRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(fresh, nil)
		h.mockRecurringRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(duplicate, nil)
		h.mockObligationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Obligation{}, common.ErrDataExist)

		result, err := h.recurringService.GenerateForPeriod(context.TODO(), period)
		require.NoError(t, err)
		assert.Empty(t, result.Generated)
		assert.Equal(t, 2, result.Skipped)
	})

	t.Run("one failure does not stop the others", func(t *testing.T) {
		h := serviceTestHelper(t)

		failing, succeeding := sampleTemplate(1), sampleTemplate(2)

		h.mockRecurringRepo.EXPECT().List(gomock.Any(), true).Return([]models.RecurringTemplate{failing, succeeding}, nil)
		h.mockRecurringRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(models.RecurringTemplate{}, assert.AnError)
		h.mockRecurringRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(succeeding, nil)
		h.mockObligationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Obligation{ID: 51}, nil)
		h.mockRecurringRepo.EXPECT().SetLastGeneratedPeriod(gomock.Any(), int64(2), period).Return(nil)

		result, err := h.recurringService.GenerateForPeriod(context.TODO(), period)
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 1)
		assert.Equal(t, 1, result.Failed)
		assert.Len(t, result.Generated, 1)
	})
}
