package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

func TestObligationService_Create(t *testing.T) {
	validIn := func() models.CreateObligationIn {
		return models.CreateObligationIn{
			Counterparty:   "  ACME Supplies ",
			Description:    "office chairs",
			OriginalAmount: models.MustMoney("1200.00"),
			IssueDate:      date("2025-01-01"),
			DueDate:        date("2025-01-31"),
		}
	}

	tests := []struct {
		name    string
		in      func() models.CreateObligationIn
		doMock  func(h testServiceHelper)
		wantErr error
	}{
		{
			name: "trims counterparty",
			in:   validIn,
			doMock: func(h testServiceHelper) {
				h.mockObligationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.CreateObligationIn) (models.Obligation, error) {
						assert.Equal(t, models.ObligationPayable, in.Direction)
						assert.Equal(t, "ACME Supplies", in.Counterparty)
						return models.Obligation{ID: 1, Direction: in.Direction, Status: models.ObligationStatusPending}, nil
					})
			},
		},
		{
			name: "zero amount",
			in: func() models.CreateObligationIn {
				in := validIn()
				in.OriginalAmount = models.ZeroMoney()
				return in
			},
			wantErr: common.ErrInvalidAmount,
		},
		{
			name: "blank counterparty",
			in: func() models.CreateObligationIn {
				in := validIn()
				in.Counterparty = "   "
				return in
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "missing due date",
			in: func() models.CreateObligationIn {
				in := validIn()
				in.DueDate = date("0001-01-01")
				return in
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "inactive cost center",
			in: func() models.CreateObligationIn {
				in := validIn()
				in.CostCenterID = sql.NullInt64{Int64: 7, Valid: true}
				return in
			},
			doMock: func(h testServiceHelper) {
				h.mockCostCenterRepo.EXPECT().Get(gomock.Any(), int64(7)).
					Return(models.CostCenter{ID: 7, Code: "OPS", Active: false}, nil)
			},
			wantErr: common.ErrCostCenterInactive,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			if tc.doMock != nil {
				tc.doMock(h)
			}

			_, err := h.obligationService.CreatePayable(context.TODO(), tc.in())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestObligationService_CreateReceivable_DefaultsIssueDate(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockObligationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.CreateObligationIn) (models.Obligation, error) {
			assert.Equal(t, models.ObligationReceivable, in.Direction)
			assert.False(t, in.IssueDate.IsZero())
			return models.Obligation{ID: 2, Direction: in.Direction}, nil
		})

	created, err := h.obligationService.CreateReceivable(context.TODO(), models.CreateObligationIn{
		Counterparty:   "Globex",
		OriginalAmount: models.MustMoney("50.00"),
		DueDate:        date("2025-02-10"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestObligationService_Reschedule(t *testing.T) {
	t.Run("open obligation", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockObligationRepo.EXPECT().GetForUpdate(gomock.Any(), int64(3)).Return(samplePayable(3, "100.00"), nil)
		h.mockObligationRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoObligation)

		updated, err := h.obligationService.Reschedule(context.TODO(), 3, date("2025-03-15"))
		require.NoError(t, err)
		assert.Equal(t, date("2025-03-15"), updated.DueDate)
	})

	t.Run("settled obligation", func(t *testing.T) {
		h := serviceTestHelper(t)
		settled := samplePayable(3, "100.00")
		settled.Status = models.ObligationStatusSettled

		h.mockObligationRepo.EXPECT().GetForUpdate(gomock.Any(), int64(3)).Return(settled, nil)

		_, err := h.obligationService.Reschedule(context.TODO(), 3, date("2025-03-15"))
		assert.ErrorIs(t, err, common.ErrAlreadySettled)
	})
}

func TestObligationService_List(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockObligationRepo.EXPECT().
		List(gomock.Any(), models.ObligationFilter{Direction: models.ObligationPayable, Limit: 50}).
		Return([]models.Obligation{samplePayable(1, "10.00")}, int64(1), nil)

	obligations, total, err := h.obligationService.List(context.TODO(), models.ObligationFilter{Direction: models.ObligationPayable})
	require.NoError(t, err)
	assert.Len(t, obligations, 1)
	assert.Equal(t, int64(1), total)

	_, _, err = h.obligationService.List(context.TODO(), models.ObligationFilter{Status: "overdue"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestObligationService_ListSettlementHistory(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockObligationRepo.EXPECT().Get(gomock.Any(), int64(3)).Return(models.Obligation{}, common.ErrDataNotFound)

	_, err := h.obligationService.ListSettlementHistory(context.TODO(), 3)
	assert.ErrorIs(t, err, common.ErrDataNotFound)
}
