package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/graceful"
	commonhttp "github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/http/middleware"
	"github.com/erpcore/go-fin-ledger/internal/common/metrics"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/deliveries/http/health"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
	"github.com/erpcore/go-fin-ledger/internal/services"

	v1bankAccount "github.com/erpcore/go-fin-ledger/internal/deliveries/http/v1/bank_account"
	v1bankMovement "github.com/erpcore/go-fin-ledger/internal/deliveries/http/v1/bank_movement"
	v1costCenter "github.com/erpcore/go-fin-ledger/internal/deliveries/http/v1/cost_center"
	v1installment "github.com/erpcore/go-fin-ledger/internal/deliveries/http/v1/installment"
	v1obligation "github.com/erpcore/go-fin-ledger/internal/deliveries/http/v1/obligation"
	v1recurring "github.com/erpcore/go-fin-ledger/internal/deliveries/http/v1/recurring"
	v1report "github.com/erpcore/go-fin-ledger/internal/deliveries/http/v1/report"
	v1transfer "github.com/erpcore/go-fin-ledger/internal/deliveries/http/v1/transfer"

	// for swagger docs
	_ "github.com/erpcore/go-fin-ledger/docs"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler exposes the router, used by tests.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// @title GO FIN LEDGER API DOCUMENTATION
// @version 1.0
// @description Settlement ledger for bank accounts, payables and receivables.

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	conf config.Config,
	nr *newrelic.Application,
	cacheRepo repositories.CacheRepository,
	flagClient flag.Client,
	metrics metrics.Metrics,
	srv *services.Services,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo, flagClient)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", xlog.GetCorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	if !conf.Environment().IsProduction() {
		pprof.Register(app)
	}

	// prometheus metrics
	if metrics != nil {
		app.Use(metrics.EchoMiddleware(conf.App.Name))
		app.GET("/metrics", metrics.EchoHandler())
	}

	// swagger
	app.GET("/swagger/*", echoSwagger.WrapHandler)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth)
	// v1Group register api
	v1bankAccount.New(v1Group, srv.BankAccount, srv.Journal, srv.Report, srv.Statement, m)
	v1bankMovement.New(v1Group, srv.Journal, m)
	v1transfer.New(v1Group, srv.Transfer, m)
	v1obligation.New(v1Group, srv.Obligation, srv.Settlement, srv.Offset, m)
	v1installment.New(conf, v1Group, srv.Installment)
	v1recurring.New(v1Group, srv.Recurring)
	v1costCenter.New(v1Group, srv.CostCenter)
	v1report.New(v1Group, srv.Report)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
