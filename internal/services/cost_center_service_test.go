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

func TestCostCenterService_Get_ReadsThroughCache(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockCostCenterRepo.EXPECT().Get(gomock.Any(), int64(7)).
		Return(models.CostCenter{ID: 7, Code: "OPS", Name: "Operations", Active: true}, nil).
		Times(1)

	for i := 0; i < 3; i++ {
		cc, err := h.costCenterService.Get(context.TODO(), 7)
		require.NoError(t, err)
		assert.Equal(t, "OPS", cc.Code)
	}
}

func TestCostCenterService_Get_ErrorIsNotCached(t *testing.T) {
	h := serviceTestHelper(t)

	gomock.InOrder(
		h.mockCostCenterRepo.EXPECT().Get(gomock.Any(), int64(7)).Return(models.CostCenter{}, common.ErrDataNotFound),
		h.mockCostCenterRepo.EXPECT().Get(gomock.Any(), int64(7)).Return(models.CostCenter{ID: 7, Active: true}, nil),
	)

	_, err := h.costCenterService.Get(context.TODO(), 7)
	assert.ErrorIs(t, err, common.ErrDataNotFound)

	cc, err := h.costCenterService.Get(context.TODO(), 7)
	require.NoError(t, err)
	assert.True(t, cc.Active)
}

func TestCostCenterService_CreateAndList(t *testing.T) {
	h := serviceTestHelper(t)
	in := models.CreateCostCenterIn{Code: "OPS", Name: "Operations"}

	h.mockCostCenterRepo.EXPECT().Create(gomock.Any(), in).Return(models.CostCenter{ID: 1, Code: "OPS", Active: true}, nil)
	h.mockCostCenterRepo.EXPECT().List(gomock.Any(), true).Return([]models.CostCenter{{ID: 1}}, nil)

	created, err := h.costCenterService.Create(context.TODO(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	centers, err := h.costCenterService.List(context.TODO(), true)
	require.NoError(t, err)
	assert.Len(t, centers, 1)
}
