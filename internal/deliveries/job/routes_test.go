package job

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func TestJob_Start(t *testing.T) {
	var gotDate time.Time
	j := &Job{Routes: JobRoutes{
		"v1": {
			"noop": func(ctx context.Context, date time.Time, _ flag.Job) error {
				gotDate = date
				assert.NotEmpty(t, xlog.GetCorrelationID(ctx))
				return nil
			},
			"broken": func(context.Context, time.Time, flag.Job) error { return assert.AnError },
		},
	}}

	assert.Equal(t, []string{"v1/broken", "v1/noop"}, j.List())

	assert.NoError(t, j.Start(context.TODO(), flag.Job{JobName: "noop", Version: "v1", Date: "2025-02-01"}))
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), gotDate)

	assert.ErrorIs(t, j.Start(context.TODO(), flag.Job{JobName: "broken", Version: "v1"}), assert.AnError)
	assert.ErrorIs(t, j.Start(context.TODO(), flag.Job{JobName: "noop", Version: "v2"}), errUnknownJob)
	assert.Error(t, j.Start(context.TODO(), flag.Job{JobName: "noop", Version: "v1", Date: "01-02-2025"}))
}
