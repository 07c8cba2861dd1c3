package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRestLedgerErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      fmt.Errorf("bank account 9: %w", common.ErrDataNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"status":"error","code":"DATA_NOT_FOUND","message":"bank account 9: data not found"}`,
		},
		{
			name:     "business rule",
			err:      fmt.Errorf("settle obligation 7: %w", common.ErrOverSettlement),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"status":"error","code":"OVER_SETTLEMENT","message":"settle obligation 7: amount applied exceeds the remaining balance of the obligation"}`,
		},
		{
			name:     "conflict",
			err:      common.ErrStorageConflict,
			wantCode: http.StatusConflict,
			wantBody: `{"status":"error","code":"STORAGE_CONFLICT","message":"concurrent update detected, retry the operation"}`,
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"status":"error","code":500,"message":"boom"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, RestLedgerErrorResponse(c, tt.err))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSuffix(rec.Body.String(), "\n"))
		})
	}
}

func TestRestErrorResponse_errorDetail(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, RestErrorResponse(c, http.StatusBadRequest, models.GetErrMap(models.ErrKeyBadRequest)))
	assert.Equal(t, `{"status":"error","code":"BAD_REQUEST","message":"invalid request"}`, strings.TrimSuffix(rec.Body.String(), "\n"))
}

func TestRestErrorValidationResponse(t *testing.T) {
	c, rec := newContext()
	errs := multierror.Append(nil, errors.New("a"))
	require.NoError(t, RestErrorValidationResponse(c, errs))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `{"status":"error","message":"validation failed","errors":[{}]}`, strings.TrimSuffix(rec.Body.String(), "\n"))
}

func TestRestSuccessResponseOffsetPagination(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, RestSuccessResponseOffsetPagination(c, []string{"a"}, 10, 20, 21))
	assert.Equal(t, `{"kind":"collection","contents":["a"],"pagination":{"limit":10,"offset":20,"total_rows":21}}`, strings.TrimSuffix(rec.Body.String(), "\n"))
}
