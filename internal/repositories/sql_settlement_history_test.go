package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

func settlementHistoryRows(histories ...models.SettlementHistory) *sqlmock.Rows {
	rows := sqlmock.NewRows(columnsOf(settlementHistoryColumns))
	for _, h := range histories {
		var movementID, offsetID any
		if h.BankMovementID.Valid {
			movementID = h.BankMovementID.Int64
		}
		if h.OffsetID.Valid {
			offsetID = h.OffsetID.Int64
		}
		rows.AddRow(h.ID, h.Operation, h.ObligationID, movementID, offsetID, h.AmountApplied.String(),
			h.InterestDelta.String(), h.DiscountDelta.String(), h.SettledAt, h.Note, h.CreatedAt)
	}
	return rows
}

func TestSettlementHistoryRepository_Create(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	want := models.SettlementHistory{
		ID:             1,
		Operation:      models.SettlementOperationSettlement,
		ObligationID:   3,
		BankMovementID: nullInt64(10),
		AmountApplied:  models.MustMoney("400.00"),
		InterestDelta:  models.MustMoney("12.50"),
		DiscountDelta:  models.ZeroMoney(),
		SettledAt:      testDate,
		Note:           "first installment",
		CreatedAt:      testTime,
	}

	mock.ExpectQuery(regexp.QuoteMeta(querySettlementHistoryCreate)).
		WithArgs("settlement", int64(3), int64(10), nil, want.AmountApplied, want.InterestDelta, want.DiscountDelta,
			testDate, want.Note).
		WillReturnRows(settlementHistoryRows(want))

	in := want
	in.ID = 0
	got, err := repo.GetSettlementHistoryRepository().Create(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got, moneyComparer()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementHistoryRepository_ListByObligation(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	history := models.SettlementHistory{
		ID:            2,
		Operation:     models.SettlementOperationOffset,
		ObligationID:  3,
		OffsetID:      nullInt64(1),
		AmountApplied: models.MustMoney("100.00"),
		InterestDelta: models.ZeroMoney(),
		DiscountDelta: models.ZeroMoney(),
		SettledAt:     testDate,
		CreatedAt:     testTime,
	}

	mock.ExpectQuery(regexp.QuoteMeta(querySettlementHistoryListByObligation)).
		WithArgs(int64(3)).
		WillReturnRows(settlementHistoryRows(history))
	mock.ExpectQuery(regexp.QuoteMeta(querySettlementHistoryListByObligation)).
		WithArgs(int64(4)).
		WillReturnRows(settlementHistoryRows())

	got, err := repo.GetSettlementHistoryRepository().ListByObligation(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]models.SettlementHistory{history}, got, moneyComparer()))

	got, err = repo.GetSettlementHistoryRepository().ListByObligation(context.Background(), 4)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOffsetRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryOffsetCreate)).
					WithArgs(int64(3), int64(5), models.MustMoney("250.00"), testDate, "netting").
					WillReturnRows(sqlmock.NewRows(
						[]string{"id", "payable_id", "receivable_id", "amount", "offset_date", "note", "created_at"}).
						AddRow(int64(1), int64(3), int64(5), "250.00", testDate, "netting", testTime))
			},
		},
		{
			name: "missing obligation",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryOffsetCreate)).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "obligation_offset_receivable_id_fkey"})
			},
			wantErr: common.ErrDataNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newSQLMockRepository(t)
			tt.doMock(mock)

			got, err := repo.GetOffsetRepository().Create(context.Background(), models.OffsetIn{
				PayableID:    3,
				ReceivableID: 5,
				Amount:       models.MustMoney("250.00"),
				OffsetDate:   testDate,
				Note:         "netting",
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), got.ID)
				assert.Equal(t, "250.00", got.Amount.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

