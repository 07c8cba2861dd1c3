package monitoring

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
)

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(fmt.Errorf("settle 10: %w", common.ErrOverSettlement)))
	assert.True(t, IsRejection(common.ErrDataNotFound))
	assert.False(t, IsRejection(common.ErrStorageConflict))
	assert.False(t, IsRejection(assert.AnError))
}

func TestMonitor_Finish(t *testing.T) {
	xlog.InitForTest()

	for _, err := range []error{nil, common.ErrInsufficientFunds, assert.AnError} {
		m := New(context.Background(), WithLayer(LayerService), WithSegmentName("ledger.Test"))
		assert.NotPanics(t, func() {
			m.Finish(WithFinishCheckError(err), WithFinishXlogFields(xlog.Int64("bankAccountId", 1)))
		})
	}
}
