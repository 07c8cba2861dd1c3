package ledger

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
	mockRepo "github.com/erpcore/go-fin-ledger/internal/repositories/mock"
	"github.com/erpcore/go-fin-ledger/internal/services/mock"
)

type testLedgerHelper struct {
	mockCtrl         *gomock.Controller
	mockRecurringSrv *mock.MockRecurringService
	mockAccountSrv   *mock.MockBankAccountService
	mockStatementSrv *mock.MockStatementExportService
	mockLockRepo     *mockRepo.MockLockRepository
	handler          *ledgerHandler
}

func ledgerTestHelper(t *testing.T) testLedgerHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	h := testLedgerHelper{
		mockCtrl:         mockCtrl,
		mockRecurringSrv: mock.NewMockRecurringService(mockCtrl),
		mockAccountSrv:   mock.NewMockBankAccountService(mockCtrl),
		mockStatementSrv: mock.NewMockStatementExportService(mockCtrl),
		mockLockRepo:     mockRepo.NewMockLockRepository(mockCtrl),
	}
	h.handler = &ledgerHandler{
		lockTTL:      time.Minute,
		recurringSrv: h.mockRecurringSrv,
		accountSrv:   h.mockAccountSrv,
		statementSrv: h.mockStatementSrv,
		lockRepo:     h.mockLockRepo,
	}
	return h
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func TestRoutes(t *testing.T) {
	routes := Routes(config.Config{}, nil, nil, nil, nil)
	assert.Len(t, routes, 3)
	assert.Contains(t, routes, "generate-recurring")
	assert.Contains(t, routes, "audit-balance")
	assert.Contains(t, routes, "export-statements")
}

func Test_ledgerHandler_GenerateRecurring(t *testing.T) {
	february := models.Period{Year: 2025, Month: time.February}
	runningDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		doMock  func(h testLedgerHelper, released *bool)
		wantErr    error
		wantErrMsg string
		release    bool
	}{
		{
			name: "success",
			doMock: func(h testLedgerHelper, released *bool) {
				h.mockLockRepo.EXPECT().Obtain(gomock.Any(), "generate-recurring", time.Minute).
					Return(repositories.Releaser(func(context.Context) error { *released = true; return nil }), nil)
				h.mockRecurringSrv.EXPECT().GenerateForPeriod(gomock.Any(), february).
					Return(models.GenerationResult{Period: february, Generated: []models.Obligation{{ID: 1}}, Skipped: 2}, nil)
			},
			release: true,
		},
		{
			name: "another worker holds the lock",
			doMock: func(h testLedgerHelper, _ *bool) {
				h.mockLockRepo.EXPECT().Obtain(gomock.Any(), "generate-recurring", time.Minute).
					Return(nil, common.ErrJobAlreadyRunning)
			},
			wantErr: common.ErrJobAlreadyRunning,
		},
		{
			name: "some templates failed",
			doMock: func(h testLedgerHelper, released *bool) {
				h.mockLockRepo.EXPECT().Obtain(gomock.Any(), "generate-recurring", time.Minute).
					Return(repositories.Releaser(func(context.Context) error { *released = true; return assert.AnError }), nil)
				h.mockRecurringSrv.EXPECT().GenerateForPeriod(gomock.Any(), february).
					Return(models.GenerationResult{Period: february, Failed: 1}, nil)
			},
			wantErrMsg: "period 2025-02: 1 templates failed",
			release:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ledgerTestHelper(t)
			released := false
			tt.doMock(h, &released)

			err := h.handler.GenerateRecurring(context.TODO(), runningDate, flag.Job{})
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				require.EqualError(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.release, released)
		})
	}
}

func Test_ledgerHandler_AuditBalance(t *testing.T) {
	t.Run("drift is reported without failing", func(t *testing.T) {
		h := ledgerTestHelper(t)
		h.mockAccountSrv.EXPECT().AuditAll(gomock.Any()).Return([]models.BalanceAudit{
			{AccountID: 1, CachedBalance: models.MustMoney("100.00"), RecomputedBalance: models.MustMoney("100.00")},
			{AccountID: 2, CachedBalance: models.MustMoney("50.00"), RecomputedBalance: models.MustMoney("45.00")},
		}, nil)

		assert.NoError(t, h.handler.AuditBalance(context.TODO(), time.Time{}, flag.Job{}))
	})

	t.Run("error", func(t *testing.T) {
		h := ledgerTestHelper(t)
		h.mockAccountSrv.EXPECT().AuditAll(gomock.Any()).Return(nil, assert.AnError)

		assert.ErrorIs(t, h.handler.AuditBalance(context.TODO(), time.Time{}, flag.Job{}), assert.AnError)
	})
}

func Test_ledgerHandler_ExportStatements(t *testing.T) {
	runningDate := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		h := ledgerTestHelper(t)
		h.mockStatementSrv.EXPECT().ArchivePreviousMonth(gomock.Any(), runningDate).
			Return(models.ArchiveResult{Period: models.Period{Year: 2025, Month: time.February}, Archived: []string{"gs://a"}}, nil)

		assert.NoError(t, h.handler.ExportStatements(context.TODO(), runningDate, flag.Job{}))
	})

	t.Run("partial failure", func(t *testing.T) {
		h := ledgerTestHelper(t)
		h.mockStatementSrv.EXPECT().ArchivePreviousMonth(gomock.Any(), runningDate).
			Return(models.ArchiveResult{Period: models.Period{Year: 2025, Month: time.February}, Failed: 1}, assert.AnError)

		assert.ErrorIs(t, h.handler.ExportStatements(context.TODO(), runningDate, flag.Job{}), assert.AnError)
	})
}
