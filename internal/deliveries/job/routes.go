package job

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/log"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	v1ledger "github.com/erpcore/go-fin-ledger/internal/deliveries/job/v1/ledger"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

var errUnknownJob = errors.New("invalid version or job name")

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag flag.Job) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services, lockRepo repositories.LockRepository) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1ledger.Routes(cfg, srv.Recurring, srv.BankAccount, srv.Statement, lockRepo),
		// add other version routes
	}

	return &Job{jobRoutes}
}

// List returns "version/name" of every registered job, sorted.
func (j *Job) List() []string {
	var out []string
	for version, routes := range j.Routes {
		for name := range routes {
			out = append(out, version+"/"+name)
		}
	}
	sort.Strings(out)
	return out
}

func (j *Job) Start(ctx context.Context, flag flag.Job) (err error) {
	fn, ok := j.Routes[flag.Version][flag.JobName]
	if !ok {
		log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, 0, errUnknownJob)
		return errUnknownJob
	}

	var runningDate time.Time
	ctx = xlog.SetCorrelationID(ctx, uuid.New().String())
	start := time.Now()

	defer func() {
		log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, time.Since(start), err)
	}()

	if flag.Date != "" {
		runningDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, flag.Date)
		if err != nil {
			return err
		}
	} else {
		runningDate = common.Now()
	}

	return fn(ctx, runningDate, flag)
}
