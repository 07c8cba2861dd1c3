package log

import (
	"context"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
)

func LogJob(ctx context.Context, jobName, version, date string, elapsed time.Duration, err error) {
	field := []xlog.Field{
		xlog.String("job-name", jobName),
		xlog.String("version", version),
		xlog.String("execution-date", date),
		xlog.Duration("elapsed", elapsed),
	}
	if err != nil {
		field = append(field, xlog.String("status", "fail"), xlog.Err(err))
		xlog.Warn(ctx, "[JOB]", field...)
	} else {
		field = append(field, xlog.String("status", "success"))
		xlog.Info(ctx, "[JOB]", field...)
	}
}
