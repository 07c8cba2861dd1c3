package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	flagmock "github.com/erpcore/go-fin-ledger/internal/common/flag/mock"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

const idempotencyFlag = "fin-ledger.idempotency-check"

type middlewareTestHelper struct {
	redisMock redismock.ClientMock
	router    *echo.Echo
	calls     *int
}

func newMiddlewareTestHelper(t *testing.T, handlerStatus int) middlewareTestHelper {
	t.Helper()

	db, redisMock := redismock.NewClientMock()
	conf := config.Config{SecretKey: "secret"}
	conf.FeatureFlagKeyLookup.IdempotencyCheck = idempotencyFlag
	m := NewMiddleware(conf, repositories.NewCacheRepository(db), flag.NewStatic(map[string]bool{idempotencyFlag: true}))

	calls := 0
	handler := func(c echo.Context) error {
		calls++
		return c.JSON(handlerStatus, map[string]int{"id": 1})
	}

	router := echo.New()
	router.Use(m.Context())
	group := router.Group("/api/v1", m.InternalAuth, m.CheckIdempotentRequest)
	group.POST("/transfers", handler)
	group.GET("/transfers", handler)

	return middlewareTestHelper{redisMock: redisMock, router: router, calls: &calls}
}

func (h middlewareTestHelper) do(method, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/transfers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func TestInternalAuth(t *testing.T) {
	h := newMiddlewareTestHelper(t, http.StatusOK)

	rec := h.do(http.MethodGet, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `{"status":"error","code":401,"message":"required secret key"}`, strings.TrimSuffix(rec.Body.String(), "\n"))

	rec = h.do(http.MethodGet, "", map[string]string{HeaderSecretKey: "wrong"})
	assert.Equal(t, `{"status":"error","code":401,"message":"invalid secret key"}`, strings.TrimSuffix(rec.Body.String(), "\n"))

	rec = h.do(http.MethodGet, "", map[string]string{HeaderSecretKey: "secret", xlog.HeaderCorrelationID: "corr-1"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "corr-1", rec.Header().Get(xlog.HeaderCorrelationID))
}

func TestCheckIdempotentRequest(t *testing.T) {
	const (
		body = `{"amount":"10.00"}`
		key  = "key-1"
	)
	pending := models.NewIdempotency(key, models.IdempotencyStatusProcessPending, http.MethodPost, "/api/v1/transfers", []byte(body))
	finished := *pending
	finished.SetResponse(http.StatusCreated, map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON}, `{"id":7}`)

	marshal := func(v interface{}) string {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return string(b)
	}

	headers := map[string]string{HeaderSecretKey: "secret", HeaderIdempotencyKey: key}

	tests := []struct {
		name      string
		status    int
		headers   map[string]string
		doMock    func(mock redismock.ClientMock)
		wantCode  int
		wantBody  string
		wantCalls int
	}{
		{
			name:     "missing key",
			status:   http.StatusCreated,
			headers:  map[string]string{HeaderSecretKey: "secret"},
			wantCode: http.StatusBadRequest,
			wantBody: `{"status":"error","code":"MISSING_IDEMPOTENCY_KEY","message":"missing idempotency key"}`,
		},
		{
			name:    "first request is processed and stored",
			status:  http.StatusCreated,
			headers: headers,
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet(pending.CacheKey).RedisNil()
				mock.ExpectSetNX(pending.CacheKey, marshal(pending), models.TTLIdempotency).SetVal(true)
				mock.Regexp().ExpectSet(pending.CacheKey, `"status":"finished"`, models.TTLIdempotency).SetVal("OK")
			},
			wantCode:  http.StatusCreated,
			wantBody:  `{"id":1}`,
			wantCalls: 1,
		},
		{
			name:    "finished request is replayed",
			status:  http.StatusCreated,
			headers: headers,
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet(pending.CacheKey).SetVal(marshal(finished))
			},
			wantCode: http.StatusCreated,
			wantBody: `{"id":7}`,
		},
		{
			name:    "request still processing",
			status:  http.StatusCreated,
			headers: headers,
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet(pending.CacheKey).SetVal(marshal(pending))
			},
			wantCode: http.StatusConflict,
			wantBody: `{"status":"error","code":"REQUEST_BEING_PROCESSED","message":"request with same idempotency key is being processed"}`,
		},
		{
			name:    "key reused with another payload",
			status:  http.StatusCreated,
			headers: headers,
			doMock: func(mock redismock.ClientMock) {
				other := *pending
				other.Fingerprint = "other"
				mock.ExpectGet(pending.CacheKey).SetVal(marshal(other))
			},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"status":"error","code":"INVALID_FINGERPRINT","message":"idempotency key cannot be reused for different requests payload"}`,
		},
		{
			name:    "failed request releases the key",
			status:  http.StatusUnprocessableEntity,
			headers: headers,
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet(pending.CacheKey).RedisNil()
				mock.ExpectSetNX(pending.CacheKey, marshal(pending), models.TTLIdempotency).SetVal(true)
				mock.ExpectDel(pending.CacheKey).SetVal(1)
			},
			wantCode:  http.StatusUnprocessableEntity,
			wantBody:  `{"id":1}`,
			wantCalls: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMiddlewareTestHelper(t, tt.status)
			if tt.doMock != nil {
				tt.doMock(h.redisMock)
			}

			rec := h.do(http.MethodPost, body, tt.headers)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSuffix(rec.Body.String(), "\n"))
			assert.Equal(t, tt.wantCalls, *h.calls)
			assert.NoError(t, h.redisMock.ExpectationsWereMet())
		})
	}
}

func TestCheckIdempotentRequest_flagDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFlag := flagmock.NewMockClient(ctrl)
	mockFlag.EXPECT().IsEnabled(idempotencyFlag).Return(false)

	conf := config.Config{}
	conf.FeatureFlagKeyLookup.IdempotencyCheck = idempotencyFlag
	m := NewMiddleware(conf, nil, mockFlag)

	router := echo.New()
	router.POST("/api/v1/transfers", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, m.CheckIdempotentRequest)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
