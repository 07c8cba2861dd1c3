package services

import (
	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/cache"
	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/idgenerator"
	"github.com/erpcore/go-fin-ledger/internal/common/metrics"
	"github.com/erpcore/go-fin-ledger/internal/common/publisher"
	"github.com/erpcore/go-fin-ledger/internal/common/retry"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo      repositories.SQLRepository
	cloudStorage repositories.CloudStorageRepository

	reportCache     cache.Client[models.CashFlowProjection]
	costCenterCache cache.Client[models.CostCenter]

	ledgerEvents publisher.LedgerEventPublisher
	idgenerator  idgenerator.Generator
	flag         flag.Client
	metrics      metrics.Metrics
	retryer      retry.Retryer

	common service

	BankAccount *bankAccount
	Journal     *journal
	Obligation  *obligation
	Settlement  *settlement
	Transfer    *transfer
	Installment *installment
	Recurring   *recurring
	Offset      *offset
	CostCenter  *costCenter
	Report      *report
	Statement   *statementExport
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cloudStorage repositories.CloudStorageRepository,
	reportCache cache.Client[models.CashFlowProjection],
	costCenterCache cache.Client[models.CostCenter],
	ledgerEvents publisher.LedgerEventPublisher,
	idgenerator idgenerator.Generator,
	flag flag.Client,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:            conf,
		sqlRepo:         sqlRepo,
		cloudStorage:    cloudStorage,
		reportCache:     reportCache,
		costCenterCache: costCenterCache,
		ledgerEvents:    ledgerEvents,
		idgenerator:     idgenerator,
		flag:            flag,
		metrics:         metrics,
		retryer:         retry.NewExponentialBackOff(conf.ExponentialBackoff, common.ErrStorageConflict),
	}
	srv.common.srv = srv
	srv.BankAccount = (*bankAccount)(&srv.common)
	srv.Journal = (*journal)(&srv.common)
	srv.Obligation = (*obligation)(&srv.common)
	srv.Settlement = (*settlement)(&srv.common)
	srv.Transfer = (*transfer)(&srv.common)
	srv.Installment = (*installment)(&srv.common)
	srv.Recurring = (*recurring)(&srv.common)
	srv.Offset = (*offset)(&srv.common)
	srv.CostCenter = (*costCenter)(&srv.common)
	srv.Report = (*report)(&srv.common)
	srv.Statement = (*statementExport)(&srv.common)

	return srv
}
