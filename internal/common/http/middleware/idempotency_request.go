package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common"
	commonhttp "github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

const HeaderIdempotencyKey = "X-Idempotency-Key"

// CheckIdempotentRequest replays the stored response of a POST already served
// under the same X-Idempotency-Key. Failed requests release the key so the
// caller may retry them.
func (m *AppMiddleware) CheckIdempotentRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		// only transaction method POST
		if req.Method != http.MethodPost {
			return next(c)
		}

		if !m.flag.IsEnabled(m.conf.FeatureFlagKeyLookup.IdempotencyCheck) {
			return next(c)
		}

		idempotencyKey := req.Header.Get(HeaderIdempotencyKey)
		if idempotencyKey == "" {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, models.GetErrMap(models.ErrKeyMissingIdempotencyKey))
		}

		ctx := req.Context()
		reqBody := m.parseRequestBody(c)

		idm, err := m.getOrCreateIdempotency(ctx, idempotencyKey, req.Method, c.Path(), reqBody)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrInvalidFingerprint):
				return commonhttp.RestErrorResponse(c, http.StatusUnprocessableEntity, models.GetErrMap(models.ErrKeyInvalidFingerprint))
			case errors.Is(err, common.ErrRequestBeingProcessed):
				return commonhttp.RestErrorResponse(c, http.StatusConflict, models.GetErrMap(models.ErrKeyRequestBeingProcessed))
			default:
				return commonhttp.RestErrorResponse(c, http.StatusInternalServerError, err)
			}
		}

		if idm.IsFinished() {
			for k, v := range idm.ResponseHeaders {
				c.Response().Header().Set(k, v)
			}
			contentType := idm.ResponseHeaders[echo.HeaderContentType]
			if contentType == "" {
				contentType = echo.MIMEApplicationJSON
			}
			return c.Blob(idm.HTTPStatusCode, contentType, []byte(idm.ResponseBody))
		}

		resBody := m.getResponseBodyBuffer(c)

		err = next(c)
		if err != nil {
			c.Error(err)
		}

		// the request may be cancelled once the handler finished
		ctx = context.WithoutCancel(ctx)

		statusCode := c.Response().Status
		if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
			// release lock if request failed, so if the same request is made, it will be processed again
			// this is useful for retry mechanism (ex: 5xx error / timeout / insufficient funds / etc.)
			if err := m.releaseLock(ctx, idm); err != nil {
				xlog.Warn(ctx, "[IDEMPOTENCY]", xlog.String("key", idempotencyKey), xlog.Err(err))
			}
			return nil
		}

		headers := make(map[string]string)
		for k, v := range c.Response().Header() {
			if len(v) > 0 {
				headers[k] = v[len(v)-1] // use last value
			}
		}
		idm.SetResponse(statusCode, headers, resBody.String())

		// the response is already written, a failed save only costs a replay
		if err := m.cacheRepo.SetJSON(ctx, idm.CacheKey, idm, models.TTLIdempotency); err != nil {
			xlog.Warn(ctx, "[IDEMPOTENCY]", xlog.String("key", idempotencyKey), xlog.Err(err))
			_ = m.releaseLock(ctx, idm)
		}

		return nil
	}
}

// getOrCreateIdempotency will get idempotency data from cache, if not found, it will create new one.
// created idempotency will be using status pending since the request is still being processed
func (m *AppMiddleware) getOrCreateIdempotency(ctx context.Context, key, method, path string, requestBody []byte) (*models.Idempotency, error) {
	idm := models.NewIdempotency(key, models.IdempotencyStatusProcessPending, method, path, requestBody)

	var cachedIdm models.Idempotency
	err := m.cacheRepo.GetJSON(ctx, idm.CacheKey, &cachedIdm)
	if errors.Is(err, common.ErrDataNotFound) {
		if err = m.createLock(ctx, idm); err != nil {
			return nil, err
		}
		return idm, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency data: %w", err)
	}

	if cachedIdm.Fingerprint != idm.Fingerprint {
		return nil, common.ErrInvalidFingerprint
	}

	if !cachedIdm.IsFinished() {
		return nil, common.ErrRequestBeingProcessed
	}

	return &cachedIdm, nil
}

func (m *AppMiddleware) createLock(ctx context.Context, idm *models.Idempotency) error {
	set, err := m.cacheRepo.SetJSONIfNotExists(ctx, idm.CacheKey, idm, models.TTLIdempotency)
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	// there is possibility same request is being processed by another process simultaneously
	if !set {
		return common.ErrRequestBeingProcessed
	}

	return nil
}

func (m *AppMiddleware) releaseLock(ctx context.Context, idm *models.Idempotency) error {
	if err := m.cacheRepo.Del(ctx, idm.CacheKey); err != nil {
		return fmt.Errorf("failed to release idempotency data: %w", err)
	}

	return nil
}
