package bank_movement

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

const depositJSON = `{"kind":"bankMovement","id":1,"bankAccountId":1,"movementKind":"deposit","direction":"credit","amount":"50.00","postedAt":"2025-01-10T09:00:00+00:00","valueDate":"2025-01-10","description":"Deposit","obligationId":null,"pairedMovementId":null,"reference":null,"reconciled":false,"reconciledAt":null}`

func sampleMovement() models.BankMovement {
	return models.BankMovement{
		ID:            1,
		BankAccountID: 1,
		Kind:          models.MovementKindDeposit,
		Direction:     models.DirectionCredit,
		Amount:        models.MustMoney("50.00"),
		PostedAt:      time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		ValueDate:     date("2025-01-10"),
		Description:   "Deposit",
	}
}

func date(value string) time.Time {
	t, _ := time.Parse(common.DateFormatYYYYMMDD, value)
	return t
}

type testBankMovementHelper struct {
	router         *echo.Echo
	mockCtrl       *gomock.Controller
	mockJournalSvc *mock.MockJournalService
}

func bankMovementTestHelper(t *testing.T) testBankMovementHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockJournalSvc := mock.NewMockJournalService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockJournalSvc, middleware.NewMiddleware(config.Config{}, nil, flag.NewStatic(nil)))

	return testBankMovementHelper{
		router:         app,
		mockCtrl:       mockCtrl,
		mockJournalSvc: mockJournalSvc,
	}
}

func (h testBankMovementHelper) do(t *testing.T, method, url, body string) (int, string) {
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

func Test_Handler_postMovement(t *testing.T) {
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name     string
		body     string
		mockData mockData
		doMock   func(h testBankMovementHelper)
	}{
		{
			name: "success",
			body: `{"bankAccountId":1,"kind":"deposit","amount":"50.00","valueDate":"2025-01-10","description":"Deposit"}`,
			mockData: mockData{
				wantRes:  depositJSON,
				wantCode: 201,
			},
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Post(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.PostMovementIn) (models.BankMovement, error) {
						assert.Equal(t, int64(1), in.BankAccountID)
						assert.Equal(t, models.MovementKindDeposit, in.Kind)
						assert.Empty(t, in.Direction)
						assert.Equal(t, "50.00", in.Amount.String())
						assert.Equal(t, date("2025-01-10"), in.ValueDate)
						assert.False(t, in.ObligationID.Valid)
						return sampleMovement(), nil
					})
			},
		},
		{
			name: "success linked to an obligation",
			body: `{"bankAccountId":1,"kind":"deposit","amount":"50.00","valueDate":"2025-01-10","description":"Deposit","obligationId":7}`,
			mockData: mockData{
				wantRes:  strings.Replace(depositJSON, `"obligationId":null`, `"obligationId":7`, 1),
				wantCode: 201,
			},
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Post(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.PostMovementIn) (models.BankMovement, error) {
						assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, in.ObligationID)
						movement := sampleMovement()
						movement.ObligationID = in.ObligationID
						return movement, nil
					})
			},
		},
		{
			name: "error validating request",
			body: `{"bankAccountId":1,"kind":"bonus","amount":"0","valueDate":"2025-13-01"}`,
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"INVALID_VALUE","field":"kind","message":"field value is not allowed"},{"code":"INVALID_AMOUNT","field":"amount","message":"amount must be greater than zero"},{"code":"INVALID_FORMAT_DATE","field":"valueDate","message":"field must use YYYY-MM-DD format"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "inactive account",
			body: `{"bankAccountId":1,"kind":"withdrawal","amount":"10.00","valueDate":"2025-01-10"}`,
			mockData: mockData{
				wantRes:  `{"status":"error","code":"ACCOUNT_INACTIVE","message":"bank account 1: bank account is inactive"}`,
				wantCode: 422,
			},
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Post(gomock.Any(), gomock.Any()).
					Return(models.BankMovement{}, fmt.Errorf("bank account 1: %w", common.ErrAccountInactive))
			},
		},
		{
			name: "conflict after retries",
			body: `{"bankAccountId":1,"kind":"fee","amount":"1.00","valueDate":"2025-01-10"}`,
			mockData: mockData{
				wantRes:  `{"status":"error","code":"STORAGE_CONFLICT","message":"concurrent update detected, retry the operation"}`,
				wantCode: 409,
			},
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Post(gomock.Any(), gomock.Any()).Return(models.BankMovement{}, common.ErrStorageConflict)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := bankMovementTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			code, res := h.do(t, http.MethodPost, "/api/v1/bank-movements", tt.body)
			require.Equal(t, tt.mockData.wantCode, code)
			require.Equal(t, tt.mockData.wantRes, res)
		})
	}
}

func Test_Handler_getMovement(t *testing.T) {
	h := bankMovementTestHelper(t)

	h.mockJournalSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(sampleMovement(), nil)

	code, res := h.do(t, http.MethodGet, "/api/v1/bank-movements/1", "")
	require.Equal(t, 200, code)
	require.Equal(t, depositJSON, res)
}

func Test_Handler_updateMovement(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantRes  string
		wantCode int
		doMock   func(h testBankMovementHelper)
	}{
		{
			name:     "only sent fields change",
			body:     `{"amount":"250.00","description":"Fixed"}`,
			wantRes:  strings.NewReplacer(`"amount":"50.00"`, `"amount":"250.00"`, `"description":"Deposit"`, `"description":"Fixed"`).Replace(depositJSON),
			wantCode: 200,
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, patch models.MovementPatch) (models.BankMovement, error) {
						require.NotNil(t, patch.Amount)
						require.NotNil(t, patch.Description)
						assert.Nil(t, patch.Kind)
						assert.Nil(t, patch.Direction)
						assert.Nil(t, patch.ValueDate)

						updated := sampleMovement()
						updated.Amount = *patch.Amount
						updated.Description = *patch.Description
						return updated, nil
					})
			},
		},
		{
			name:     "reconciled movement",
			body:     `{"description":"Fixed"}`,
			wantRes:  `{"status":"error","code":"ALREADY_RECONCILED","message":"movement is reconciled and can not be changed"}`,
			wantCode: 422,
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(models.BankMovement{}, common.ErrAlreadyReconciled)
			},
		},
		{
			name:     "invalid direction value",
			body:     `{"direction":"sideways"}`,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"INVALID_VALUE","field":"direction","message":"field value is not allowed"}]}`,
			wantCode: 422,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := bankMovementTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			code, res := h.do(t, http.MethodPatch, "/api/v1/bank-movements/1", tt.body)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, res)
		})
	}
}

func Test_Handler_deleteMovement(t *testing.T) {
	tests := []struct {
		name     string
		wantRes  string
		wantCode int
		doMock   func(h testBankMovementHelper)
	}{
		{
			name:     "success",
			wantCode: 204,
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name:     "settlement movement",
			wantRes:  `{"status":"error","code":"LINKED_MOVEMENT","message":"movement is linked to a settlement or transfer and only description or value date can change"}`,
			wantCode: 422,
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Delete(gomock.Any(), int64(1)).Return(common.ErrLinkedMovement)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := bankMovementTestHelper(t)
			tt.doMock(h)

			code, res := h.do(t, http.MethodDelete, "/api/v1/bank-movements/1", "")
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, res)
		})
	}
}

func Test_Handler_reverseMovement(t *testing.T) {
	reversal := sampleMovement()
	reversal.ID = 2
	reversal.Kind = models.MovementKindReversal
	reversal.Direction = models.DirectionDebit
	reversal.ValueDate = date("2025-01-15")
	reversal.Description = "wrong account"
	reversal.PairedMovementID = sql.NullInt64{Int64: 1, Valid: true}

	tests := []struct {
		name     string
		body     string
		wantRes  string
		wantCode int
		doMock   func(h testBankMovementHelper)
	}{
		{
			name:     "success",
			body:     `{"valueDate":"2025-01-15","description":"wrong account"}`,
			wantRes:  `{"kind":"bankMovement","id":2,"bankAccountId":1,"movementKind":"reversal","direction":"debit","amount":"50.00","postedAt":"2025-01-10T09:00:00+00:00","valueDate":"2025-01-15","description":"wrong account","obligationId":null,"pairedMovementId":1,"reference":null,"reconciled":false,"reconciledAt":null}`,
			wantCode: 201,
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Reverse(gomock.Any(), models.ReverseMovementIn{
					MovementID:  1,
					ValueDate:   date("2025-01-15"),
					Description: "wrong account",
				}).Return(reversal, nil)
			},
		},
		{
			name:     "already reversed",
			body:     `{"valueDate":"2025-01-15"}`,
			wantRes:  `{"status":"error","code":"ALREADY_REVERSED","message":"movement already has a reversal"}`,
			wantCode: 409,
			doMock: func(h testBankMovementHelper) {
				h.mockJournalSvc.EXPECT().Reverse(gomock.Any(), gomock.Any()).Return(models.BankMovement{}, common.ErrAlreadyReversed)
			},
		},
		{
			name:     "missing value date",
			body:     `{}`,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"MISSING_FIELD","field":"valueDate","message":"field is missing"}]}`,
			wantCode: 422,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := bankMovementTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			code, res := h.do(t, http.MethodPost, "/api/v1/bank-movements/1/reverse", tt.body)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, res)
		})
	}
}
