package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
)

// Context stores the correlation id on the request context and echoes it back.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := xlog.SetContextFromHTTP(req.Context(), req)
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(xlog.HeaderCorrelationID, xlog.GetCorrelationID(ctx))
			return next(c)
		}
	}
}
