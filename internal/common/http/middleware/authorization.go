package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/erpcore/go-fin-ledger/internal/common/http"
)

const HeaderSecretKey = "X-Secret-Key"

var (
	errRequiredSecretKey = errors.New("required secret key")
	errInvalidSecretKey  = errors.New("invalid secret key")
)

func (m *AppMiddleware) InternalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secretKey := c.Request().Header.Get(HeaderSecretKey)
		if secretKey == "" {
			return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errRequiredSecretKey)
		}

		if secretKey != m.conf.SecretKey {
			return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errInvalidSecretKey)
		}

		return next(c)
	}
}
