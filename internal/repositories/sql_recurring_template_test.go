package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

func recurringTemplateRows(templates ...models.RecurringTemplate) *sqlmock.Rows {
	rows := sqlmock.NewRows(columnsOf(recurringTemplateColumns))
	for _, t := range templates {
		var endDate, lastPeriod, costCenterID any
		if t.EndDate.Valid {
			endDate = t.EndDate.Time
		}
		if t.LastGeneratedPeriod.Valid {
			lastPeriod = t.LastGeneratedPeriod.String
		}
		if t.CostCenterID.Valid {
			costCenterID = t.CostCenterID.Int64
		}
		rows.AddRow(t.ID, string(t.Direction), t.Counterparty, t.Description, t.Amount.String(), t.DueDay,
			t.Periodicity, t.StartDate, endDate, t.Active, lastPeriod, costCenterID, t.CreatedAt, t.UpdatedAt)
	}
	return rows
}

func sampleRecurringTemplate() models.RecurringTemplate {
	return models.RecurringTemplate{
		ID:                  4,
		Direction:           models.ObligationPayable,
		Counterparty:        "Landlord Ltd",
		Description:         "Office rent",
		Amount:              models.MustMoney("3500.00"),
		DueDay:              10,
		Periodicity:         models.PeriodicityMonthly,
		StartDate:           testDate,
		Active:              true,
		LastGeneratedPeriod: sql.NullString{String: "2025-01", Valid: true},
		CostCenterID:        nullInt64(2),
		CreatedAt:           testTime,
		UpdatedAt:           testTime,
	}
}

func TestRecurringTemplateRepository_Create(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	want := sampleRecurringTemplate()
	want.LastGeneratedPeriod = sql.NullString{}

	mock.ExpectQuery(regexp.QuoteMeta(queryRecurringTemplateCreate)).
		WithArgs("payable", want.Counterparty, want.Description, want.Amount, want.DueDay, "monthly",
			want.StartDate, nil, int64(2)).
		WillReturnRows(recurringTemplateRows(want))

	got, err := repo.GetRecurringTemplateRepository().Create(context.Background(), models.CreateRecurringTemplateIn{
		Direction:    want.Direction,
		Counterparty: want.Counterparty,
		Description:  want.Description,
		Amount:       want.Amount,
		DueDay:       want.DueDay,
		Periodicity:  want.Periodicity,
		StartDate:    want.StartDate,
		CostCenterID: want.CostCenterID,
	})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got, moneyComparer()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringTemplateRepository_List(t *testing.T) {
	tests := []struct {
		name       string
		activeOnly bool
		query      string
	}{
		{name: "all", query: queryRecurringTemplateList},
		{name: "active only", activeOnly: true, query: queryRecurringTemplateListActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newSQLMockRepository(t)
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WillReturnRows(recurringTemplateRows(sampleRecurringTemplate()))

			got, err := repo.GetRecurringTemplateRepository().List(context.Background(), tt.activeOnly)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "2025-01", got[0].LastGeneratedPeriod.String)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecurringTemplateRepository_SetLastGeneratedPeriod(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	period, err := models.NewPeriod(2025, 2)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(queryRecurringTemplateSetLastGeneratedPeriod)).
		WithArgs(int64(4), "2025-02").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryRecurringTemplateSetLastGeneratedPeriod)).
		WithArgs(int64(5), "2025-02").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.GetRecurringTemplateRepository().SetLastGeneratedPeriod(context.Background(), 4, period))
	assert.ErrorIs(t, repo.GetRecurringTemplateRepository().SetLastGeneratedPeriod(context.Background(), 5, period), common.ErrDataNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringTemplateRepository_Deactivate(t *testing.T) {
	repo, mock := newSQLMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(queryRecurringTemplateDeactivate)).
		WithArgs(int64(4)).
		WillReturnError(assert.AnError)

	err := repo.GetRecurringTemplateRepository().Deactivate(context.Background(), 4)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
