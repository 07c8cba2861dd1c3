package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/cache"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

const costCenterCacheKeyPrefix = "cost-center:"

//go:generate mockgen -source=cost_center_service.go -destination=mock/cost_center_service.go -package=mock
type CostCenterService interface {
	Create(ctx context.Context, in models.CreateCostCenterIn) (models.CostCenter, error)
	Get(ctx context.Context, id int64) (models.CostCenter, error)
	List(ctx context.Context, activeOnly bool) ([]models.CostCenter, error)
}

type costCenter service

var _ CostCenterService = (*costCenter)(nil)

func (c *costCenter) Create(ctx context.Context, in models.CreateCostCenterIn) (created models.CostCenter, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return c.srv.sqlRepo.GetCostCenterRepository().Create(ctx, in)
}

// Get reads through the cost center cache, cost centers almost never change.
func (c *costCenter) Get(ctx context.Context, id int64) (cc models.CostCenter, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	load := func() (models.CostCenter, error) {
		return c.srv.sqlRepo.GetCostCenterRepository().Get(ctx, id)
	}
	if c.srv.costCenterCache == nil {
		return load()
	}

	return c.srv.costCenterCache.GetOrSet(ctx, cache.GetOrSetOpts[models.CostCenter]{
		Key:      costCenterCacheKeyPrefix + strconv.FormatInt(id, 10),
		TTL:      c.srv.conf.LedgerConfig.CostCenterTTL,
		Callback: load,
	})
}

func (c *costCenter) List(ctx context.Context, activeOnly bool) (centers []models.CostCenter, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return c.srv.sqlRepo.GetCostCenterRepository().List(ctx, activeOnly)
}

func (c *costCenter) requireActive(ctx context.Context, id int64) error {
	cc, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	if !cc.Active {
		return fmt.Errorf("cost center %s: %w", cc.Code, common.ErrCostCenterInactive)
	}
	return nil
}
