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

func TestBankAccountService_Create(t *testing.T) {
	t.Run("defaults the opening balance date", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockBankAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in models.CreateBankAccountIn) (models.BankAccount, error) {
				assert.False(t, in.OpeningBalanceDate.IsZero())
				return models.BankAccount{ID: 1, Name: in.Name, CurrentBalance: in.OpeningBalance, Active: true}, nil
			})

		account, err := h.bankAccountService.Create(context.TODO(), models.CreateBankAccountIn{
			Name:           "Operating",
			BankCode:       "001",
			OpeningBalance: models.MustMoney("1000.00"),
		})
		require.NoError(t, err)
		assert.Equal(t, "1000.00", account.CurrentBalance.String())
	})

	t.Run("negative opening balance", func(t *testing.T) {
		h := serviceTestHelper(t)

		_, err := h.bankAccountService.Create(context.TODO(), models.CreateBankAccountIn{
			Name:           "Operating",
			OpeningBalance: models.MustMoney("-1.00"),
		})
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
	})
}

func TestBankAccountService_AuditAll(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockBankAccountRepo.EXPECT().List(gomock.Any(), models.BankAccountFilter{}).
		Return([]models.BankAccount{sampleAccount(1, "100.00"), sampleAccount(2, "50.00")}, nil)
	h.mockBankAccountRepo.EXPECT().RecomputeBalance(gomock.Any(), int64(1)).
		Return(models.BalanceAudit{AccountID: 1, CachedBalance: models.MustMoney("100.00"), RecomputedBalance: models.MustMoney("100.00")}, nil)
	h.mockBankAccountRepo.EXPECT().RecomputeBalance(gomock.Any(), int64(2)).
		Return(models.BalanceAudit{AccountID: 2, CachedBalance: models.MustMoney("50.00"), RecomputedBalance: models.MustMoney("45.00")}, nil)

	audits, err := h.bankAccountService.AuditAll(context.TODO())
	require.NoError(t, err)
	require.Len(t, audits, 2)
	assert.True(t, audits[0].Consistent())
	assert.False(t, audits[1].Consistent())
	assert.Equal(t, "5.00", audits[1].Difference().String())
}

func TestBankAccountService_AuditAll_StopsOnReadFailure(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockBankAccountRepo.EXPECT().List(gomock.Any(), models.BankAccountFilter{}).
		Return([]models.BankAccount{sampleAccount(1, "100.00"), sampleAccount(2, "50.00")}, nil)
	h.mockBankAccountRepo.EXPECT().RecomputeBalance(gomock.Any(), int64(1)).Return(models.BalanceAudit{}, common.ErrDataNotFound)

	_, err := h.bankAccountService.AuditAll(context.TODO())
	assert.ErrorIs(t, err, common.ErrDataNotFound)
}

func TestBankAccountService_Deactivate(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockBankAccountRepo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(nil)

	assert.NoError(t, h.bankAccountService.Deactivate(context.TODO(), 1))
}
