package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

func TestInstallmentService_Split(t *testing.T) {
	h := serviceTestHelper(t)

	installments, err := h.installmentService.Split(models.MustMoney("1000.00"), 3, date("2025-02-01"), 0)
	require.NoError(t, err)
	require.Len(t, installments, 3)
	for _, inst := range installments {
		assert.Equal(t, "333.33", inst.Amount.String())
	}
	assert.Equal(t, date("2025-03-03"), installments[1].DueDate)
	assert.Equal(t, date("2025-04-02"), installments[2].DueDate)

	_, err = h.installmentService.Split(models.MustMoney("1000.00"), 13, date("2025-02-01"), 30)
	assert.ErrorIs(t, err, common.ErrInvalidInstallment)

	_, err = h.installmentService.Split(models.MustMoney("1000.00"), 0, date("2025-02-01"), 30)
	assert.ErrorIs(t, err, common.ErrInvalidInstallment)
}

func TestInstallmentService_CreatePlan(t *testing.T) {
	t.Run("one obligation per installment", func(t *testing.T) {
		h := serviceTestHelper(t)

		var nextID int64
		h.mockObligationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in models.CreateObligationIn) (models.Obligation, error) {
				nextID++
				return models.Obligation{
					ID:               nextID,
					Description:      in.Description,
					OriginalAmount:   in.OriginalAmount,
					DueDate:          in.DueDate,
					InstallmentIndex: in.InstallmentIndex,
					InstallmentCount: in.InstallmentCount,
				}, nil
			}).
			Times(2)

		obligations, err := h.installmentService.CreatePlan(context.TODO(), models.InstallmentPlanIn{
			Direction:    models.ObligationReceivable,
			Counterparty: "Globex",
			Description:  "Consulting",
			Principal:    models.MustMoney("500.00"),
			Count:        2,
			FirstDueDate: date("2025-02-10"),
			IntervalDays: 15,
		})
		require.NoError(t, err)
		require.Len(t, obligations, 2)
		assert.Equal(t, "Consulting (1/2)", obligations[0].Description)
		assert.Equal(t, "Consulting (2/2)", obligations[1].Description)
		assert.Equal(t, date("2025-02-25"), obligations[1].DueDate)
		assert.Equal(t, int32(2), obligations[1].InstallmentIndex.Int32)
	})

	t.Run("a failing installment rolls back the plan", func(t *testing.T) {
		h := serviceTestHelper(t)

		gomock.InOrder(
			h.mockObligationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Obligation{ID: 1}, nil),
			h.mockObligationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Obligation{}, assert.AnError),
		)

		obligations, err := h.installmentService.CreatePlan(context.TODO(), models.InstallmentPlanIn{
			Direction:    models.ObligationPayable,
			Counterparty: "ACME",
			Principal:    models.MustMoney("500.00"),
			Count:        2,
			FirstDueDate: date("2025-02-10"),
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, obligations)
	})

	t.Run("invalid direction is rejected before storage", func(t *testing.T) {
		h := serviceTestHelper(t)

		_, err := h.installmentService.CreatePlan(context.TODO(), models.InstallmentPlanIn{
			Counterparty: "ACME",
			Principal:    models.MustMoney("500.00"),
			Count:        2,
			FirstDueDate: date("2025-02-10"),
		})
		assert.ErrorIs(t, err, common.ErrInvalidDirection)
	})
}
