package obligation

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/http/middleware"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/services/mock"
)

func date(value string) time.Time {
	t, _ := time.Parse(common.DateFormatYYYYMMDD, value)
	return t
}

func sampleObligation(id int64, direction models.ObligationDirection, original string) models.Obligation {
	return models.Obligation{
		ID:              id,
		Direction:       direction,
		Counterparty:    "ACME Supplies",
		Description:     "Chairs",
		SourceReference: sql.NullString{String: "PO-1", Valid: true},
		OriginalAmount:  models.MustMoney(original),
		SettledAmount:   models.ZeroMoney(),
		InterestAccrued: models.ZeroMoney(),
		DiscountGranted: models.ZeroMoney(),
		IssueDate:       date("2025-01-02"),
		DueDate:         date("2025-02-02"),
		Status:          models.ObligationStatusPending,
	}
}

// obligationJSON renders the ObligationOut of a sampleObligation.
func obligationJSON(id int64, direction, original, settled, remaining, dueDate, settledAt, status string) string {
	return fmt.Sprintf(`{"kind":"obligation","id":%d,"direction":"%s","counterparty":"ACME Supplies","description":"Chairs","sourceReference":"PO-1","costCenterId":null,"originalAmount":"%s","settledAmount":"%s","interestAccrued":"0.00","discountGranted":"0.00","remaining":"%s","issueDate":"2025-01-02","dueDate":"%s","settledAt":%s,"status":"%s","installmentIndex":null,"installmentCount":null,"recurringTemplateId":null,"recurringPeriod":null}`,
		id, direction, original, settled, remaining, dueDate, settledAt, status)
}

var pendingPayableJSON = obligationJSON(10, "payable", "1500.00", "0.00", "1500.00", "2025-02-02", "null", "pending")

type testObligationHelper struct {
	router            *echo.Echo
	mockCtrl          *gomock.Controller
	mockObligationSvc *mock.MockObligationService
	mockSettlementSvc *mock.MockSettlementService
	mockOffsetSvc     *mock.MockOffsetService
}

func obligationTestHelper(t *testing.T) testObligationHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	h := testObligationHelper{
		mockCtrl:          mockCtrl,
		mockObligationSvc: mock.NewMockObligationService(mockCtrl),
		mockSettlementSvc: mock.NewMockSettlementService(mockCtrl),
		mockOffsetSvc:     mock.NewMockOffsetService(mockCtrl),
	}

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	m := middleware.NewMiddleware(config.Config{}, nil, flag.NewStatic(nil))
	New(v1Group, h.mockObligationSvc, h.mockSettlementSvc, h.mockOffsetSvc, m)
	h.router = app

	return h
}

func (h testObligationHelper) do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	res, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, strings.TrimSuffix(string(res), "\n")
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_createObligation(t *testing.T) {
	const validBody = `{"counterparty":"ACME Supplies","description":"Chairs","originalAmount":"1500.00","issueDate":"2025-01-02","dueDate":"2025-02-02","sourceReference":"PO-1"}`

	tests := []struct {
		name     string
		url      string
		body     string
		wantRes  string
		wantCode int
		doMock   func(h testObligationHelper)
	}{
		{
			name:     "payable",
			url:      "/api/v1/payables",
			body:     validBody,
			wantRes:  pendingPayableJSON,
			wantCode: 201,
			doMock: func(h testObligationHelper) {
				h.mockObligationSvc.EXPECT().CreatePayable(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.CreateObligationIn) (models.Obligation, error) {
						assert.Equal(t, models.ObligationPayable, in.Direction)
						assert.Equal(t, "1500.00", in.OriginalAmount.String())
						assert.Equal(t, date("2025-01-02"), in.IssueDate)
						assert.Equal(t, date("2025-02-02"), in.DueDate)
						assert.Equal(t, sql.NullString{String: "PO-1", Valid: true}, in.SourceReference)
						assert.False(t, in.CostCenterID.Valid)
						return sampleObligation(10, models.ObligationPayable, "1500.00"), nil
					})
			},
		},
		{
			name:     "receivable",
			url:      "/api/v1/receivables",
			body:     validBody,
			wantRes:  obligationJSON(11, "receivable", "1500.00", "0.00", "1500.00", "2025-02-02", "null", "pending"),
			wantCode: 201,
			doMock: func(h testObligationHelper) {
				h.mockObligationSvc.EXPECT().CreateReceivable(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.CreateObligationIn) (models.Obligation, error) {
						assert.Equal(t, models.ObligationReceivable, in.Direction)
						return sampleObligation(11, models.ObligationReceivable, "1500.00"), nil
					})
			},
		},
		{
			name:     "inactive cost center",
			url:      "/api/v1/payables",
			body:     `{"counterparty":"ACME Supplies","originalAmount":"10.00","dueDate":"2025-02-02","costCenterId":3}`,
			wantRes:  `{"status":"error","code":"COST_CENTER_INACTIVE","message":"cost center 3: cost center is inactive"}`,
			wantCode: 422,
			doMock: func(h testObligationHelper) {
				h.mockObligationSvc.EXPECT().CreatePayable(gomock.Any(), gomock.Any()).
					Return(models.Obligation{}, fmt.Errorf("cost center 3: %w", common.ErrCostCenterInactive))
			},
		},
		{
			name:     "error validating request",
			url:      "/api/v1/payables",
			body:     `{"originalAmount":"0"}`,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"MISSING_FIELD","field":"counterparty","message":"field is missing"},{"code":"INVALID_AMOUNT","field":"originalAmount","message":"amount must be greater than zero"},{"code":"MISSING_FIELD","field":"dueDate","message":"field is missing"}]}`,
			wantCode: 422,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := obligationTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			code, res := h.do(t, http.MethodPost, tt.url, tt.body)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, res)
		})
	}
}

func Test_Handler_listObligations(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantRes  string
		wantCode int
		doMock   func(h testObligationHelper)
	}{
		{
			name:     "filtered",
			url:      "/api/v1/obligations?direction=payable&status=pending&limit=50",
			wantRes:  `{"kind":"collection","contents":[` + pendingPayableJSON + `],"pagination":{"limit":50,"offset":0,"total_rows":1}}`,
			wantCode: 200,
			doMock: func(h testObligationHelper) {
				h.mockObligationSvc.EXPECT().List(gomock.Any(), models.ObligationFilter{
					Direction: models.ObligationPayable,
					Status:    models.ObligationStatusPending,
					Limit:     50,
				}).Return([]models.Obligation{sampleObligation(10, models.ObligationPayable, "1500.00")}, int64(1), nil)
			},
		},
		{
			name:     "unknown status",
			url:      "/api/v1/obligations?status=void",
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"INVALID_VALUE","field":"status","message":"field value is not allowed"}]}`,
			wantCode: 422,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := obligationTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			code, res := h.do(t, http.MethodGet, tt.url, "")
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, res)
		})
	}
}

func Test_Handler_getObligation(t *testing.T) {
	h := obligationTestHelper(t)

	h.mockObligationSvc.EXPECT().Get(gomock.Any(), int64(10)).Return(sampleObligation(10, models.ObligationPayable, "1500.00"), nil)
	h.mockObligationSvc.EXPECT().Get(gomock.Any(), int64(99)).Return(models.Obligation{}, common.ErrDataNotFound)

	code, res := h.do(t, http.MethodGet, "/api/v1/obligations/10", "")
	require.Equal(t, 200, code)
	require.Equal(t, pendingPayableJSON, res)

	code, res = h.do(t, http.MethodGet, "/api/v1/obligations/99", "")
	require.Equal(t, 404, code)
	require.Equal(t, `{"status":"error","code":"DATA_NOT_FOUND","message":"data not found"}`, res)
}

func Test_Handler_settle(t *testing.T) {
	settledAt := date("2025-01-20")

	tests := []struct {
		name     string
		body     string
		wantRes  string
		wantCode int
		doMock   func(h testObligationHelper)
	}{
		{
			name: "partial payment",
			body: `{"amountApplied":"1200.00","bankAccountId":1,"settledAt":"2025-01-20"}`,
			wantRes: `{"kind":"settlement","obligation":` +
				obligationJSON(10, "payable", "1500.00", "1200.00", "300.00", "2025-02-02", `"2025-01-20T00:00:00+00:00"`, "partial") +
				`,"movement":{"kind":"bankMovement","id":5,"bankAccountId":1,"movementKind":"withdrawal","direction":"debit","amount":"1200.00","postedAt":"2025-01-20T10:00:00+00:00","valueDate":"2025-01-20","description":"Payment ACME Supplies","obligationId":10,"pairedMovementId":null,"reference":null,"reconciled":false,"reconciledAt":null}` +
				`,"history":{"kind":"settlementHistory","id":3,"operation":"settlement","obligationId":10,"bankMovementId":5,"offsetId":null,"amountApplied":"1200.00","interestDelta":"0.00","discountDelta":"0.00","settledAt":"2025-01-20","note":""}}`,
			wantCode: 201,
			doMock: func(h testObligationHelper) {
				h.mockSettlementSvc.EXPECT().Settle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.SettleIn) (models.SettlementResult, error) {
						assert.Equal(t, int64(10), in.ObligationID)
						assert.Equal(t, int64(1), in.BankAccountID)
						assert.Equal(t, "1200.00", in.AmountApplied.String())
						assert.Equal(t, "0.00", in.InterestDelta.String())
						assert.Equal(t, settledAt, in.SettledAt)

						obligation, err := sampleObligation(10, models.ObligationPayable, "1500.00").
							ApplySettlement(in.AmountApplied, models.ZeroMoney(), models.ZeroMoney(), in.SettledAt)
						require.NoError(t, err)

						return models.SettlementResult{
							Obligation: obligation,
							Movement: models.BankMovement{
								ID:            5,
								BankAccountID: 1,
								Kind:          models.MovementKindWithdrawal,
								Direction:     models.DirectionDebit,
								Amount:        in.AmountApplied,
								PostedAt:      time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
								ValueDate:     settledAt,
								Description:   "Payment ACME Supplies",
								ObligationID:  sql.NullInt64{Int64: 10, Valid: true},
							},
							History: models.SettlementHistory{
								ID:             3,
								Operation:      models.SettlementOperationSettlement,
								ObligationID:   10,
								BankMovementID: sql.NullInt64{Int64: 5, Valid: true},
								AmountApplied:  in.AmountApplied,
								InterestDelta:  models.ZeroMoney(),
								DiscountDelta:  models.ZeroMoney(),
								SettledAt:      settledAt,
							},
						}, nil
					})
			},
		},
		{
			name:     "over settlement",
			body:     `{"amountApplied":"400.00","bankAccountId":1}`,
			wantRes:  `{"status":"error","code":"OVER_SETTLEMENT","message":"amount applied exceeds the remaining balance of the obligation"}`,
			wantCode: 422,
			doMock: func(h testObligationHelper) {
				h.mockSettlementSvc.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(models.SettlementResult{}, common.ErrOverSettlement)
			},
		},
		{
			name:     "negative discount",
			body:     `{"amountApplied":"10.00","discountDelta":"-1.00","bankAccountId":1}`,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"INVALID_AMOUNT","field":"discountDelta","message":"amount must not be negative"}]}`,
			wantCode: 422,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := obligationTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			code, res := h.do(t, http.MethodPost, "/api/v1/obligations/10/settle", tt.body)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, res)
		})
	}
}

func Test_Handler_reschedule(t *testing.T) {
	h := obligationTestHelper(t)
	rescheduled := sampleObligation(10, models.ObligationPayable, "1500.00")
	rescheduled.DueDate = date("2025-03-01")

	h.mockObligationSvc.EXPECT().Reschedule(gomock.Any(), int64(10), date("2025-03-01")).Return(rescheduled, nil)
	h.mockObligationSvc.EXPECT().Reschedule(gomock.Any(), int64(12), date("2025-03-01")).Return(models.Obligation{}, common.ErrAlreadySettled)

	code, res := h.do(t, http.MethodPost, "/api/v1/obligations/10/reschedule", `{"dueDate":"2025-03-01"}`)
	require.Equal(t, 200, code)
	require.Equal(t, obligationJSON(10, "payable", "1500.00", "0.00", "1500.00", "2025-03-01", "null", "pending"), res)

	code, res = h.do(t, http.MethodPost, "/api/v1/obligations/12/reschedule", `{"dueDate":"2025-03-01"}`)
	require.Equal(t, 422, code)
	require.Equal(t, `{"status":"error","code":"ALREADY_SETTLED","message":"obligation is already settled"}`, res)
}

func Test_Handler_listSettlements(t *testing.T) {
	h := obligationTestHelper(t)

	h.mockObligationSvc.EXPECT().ListSettlementHistory(gomock.Any(), int64(10)).Return([]models.SettlementHistory{{
		ID:            4,
		Operation:     models.SettlementOperationOffset,
		ObligationID:  10,
		OffsetID:      sql.NullInt64{Int64: 2, Valid: true},
		AmountApplied: models.MustMoney("300.00"),
		InterestDelta: models.ZeroMoney(),
		DiscountDelta: models.ZeroMoney(),
		SettledAt:     date("2025-01-31"),
		Note:          "netting",
	}}, nil)

	code, res := h.do(t, http.MethodGet, "/api/v1/obligations/10/settlements", "")
	require.Equal(t, 200, code)
	require.Equal(t, `{"kind":"collection","contents":[{"kind":"settlementHistory","id":4,"operation":"offset","obligationId":10,"bankMovementId":null,"offsetId":2,"amountApplied":"300.00","interestDelta":"0.00","discountDelta":"0.00","settledAt":"2025-01-31","note":"netting"}],"total_rows":1}`, res)
}

func Test_Handler_offset(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantRes  string
		wantCode int
		doMock   func(h testObligationHelper)
	}{
		{
			name: "success",
			body: `{"payableId":10,"receivableId":11,"amount":"300.00","offsetDate":"2025-01-31","note":"netting"}`,
			wantRes: `{"kind":"offset","id":2,"amount":"300.00","offsetDate":"2025-01-31","note":"netting","payable":` +
				obligationJSON(10, "payable", "1500.00", "300.00", "1200.00", "2025-02-02", `"2025-01-31T00:00:00+00:00"`, "partial") +
				`,"receivable":` +
				obligationJSON(11, "receivable", "300.00", "300.00", "0.00", "2025-02-02", `"2025-01-31T00:00:00+00:00"`, "settled") + `}`,
			wantCode: 201,
			doMock: func(h testObligationHelper) {
				h.mockOffsetSvc.EXPECT().Offset(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.OffsetIn) (models.OffsetResult, error) {
						assert.Equal(t, int64(10), in.PayableID)
						assert.Equal(t, int64(11), in.ReceivableID)
						assert.Equal(t, date("2025-01-31"), in.OffsetDate)

						payable, err := sampleObligation(10, models.ObligationPayable, "1500.00").
							ApplySettlement(in.Amount, models.ZeroMoney(), models.ZeroMoney(), in.OffsetDate)
						require.NoError(t, err)
						receivable, err := sampleObligation(11, models.ObligationReceivable, "300.00").
							ApplySettlement(in.Amount, models.ZeroMoney(), models.ZeroMoney(), in.OffsetDate)
						require.NoError(t, err)

						return models.OffsetResult{
							Offset: models.Offset{
								ID:           2,
								PayableID:    10,
								ReceivableID: 11,
								Amount:       in.Amount,
								OffsetDate:   in.OffsetDate,
								Note:         in.Note,
							},
							Payable:    payable,
							Receivable: receivable,
						}, nil
					})
			},
		},
		{
			name:     "swapped directions",
			body:     `{"payableId":11,"receivableId":10,"amount":"300.00"}`,
			wantRes:  `{"status":"error","code":"INVALID_DIRECTION","message":"obligation 11: direction does not match the movement kind or obligation"}`,
			wantCode: 422,
			doMock: func(h testObligationHelper) {
				h.mockOffsetSvc.EXPECT().Offset(gomock.Any(), gomock.Any()).
					Return(models.OffsetResult{}, fmt.Errorf("obligation 11: %w", common.ErrInvalidDirection))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := obligationTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			code, res := h.do(t, http.MethodPost, "/api/v1/obligations/offsets", tt.body)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, res)
		})
	}
}
