package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slices"

	genericCache "github.com/erpcore/go-fin-ledger/internal/common/cache"
	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/graceful"
	"github.com/erpcore/go-fin-ledger/internal/common/idgenerator"
	cMetrics "github.com/erpcore/go-fin-ledger/internal/common/metrics"
	"github.com/erpcore/go-fin-ledger/internal/common/publisher"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
	"github.com/erpcore/go-fin-ledger/internal/services"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

const reportCachePrefix = "fin-ledger:report:"

type Setup struct {
	Config           config.Config
	NewRelic         *newrelic.Application
	WriteDB          *sql.DB
	ReadDB           *sql.DB
	Cache            *redis.Client
	RepoCache        repositories.CacheRepository
	RepoLock         repositories.LockRepository
	RepoCloudStorage repositories.CloudStorageRepository
	Flag             flag.Client
	Service          *services.Services
	Metrics          cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load(
		config.WithConfigFileName("config"),
		config.WithConfigFileSearchPaths("/config", ".", "./config"),
		config.WithDotEnv(".env"),
	)
	if err != nil {
		return
	}

	logLevel := "debug"
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}
	if slices.Contains(excludedDebugLevelOnEnvs, cfg.Environment()) {
		logLevel = "info"
	}
	if cfg.App.LogLevel != "" {
		logLevel = cfg.App.LogLevel
	}

	err = xlog.Init(cfg.App.Name,
		xlog.WithOutput(cfg.App.LogOption),
		xlog.WithEnv(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(1),
		xlog.WithLevel(logLevel))
	if err != nil {
		return
	}

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	projectID := cfg.GcloudProjectID
	if projectID == "" {
		projectID, _ = metadata.ProjectIDWithContext(ctx)
		cfg.GcloudProjectID = projectID
		xlog.Info(ctx, "can not determine google cloud project, for local use set the gcloud_project_id in config yaml")
	}

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	flagClient, err := flag.New(ctx, &cfg)
	if err != nil {
		err = fmt.Errorf("failed to create flag client: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return flagClient.Close() })

	// register DB write stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register DB read stat prometheus metrics
	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	// register redis prometheus metrics
	err = mtc.RegisterRedis(cache, cfg.App.Name, command)
	if err != nil {
		err = fmt.Errorf("failed register redis prometheus: %w", err)
		return
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(cache)
	lockRepo := repositories.NewLockRepository(cache)

	cloudStorageRepo, err := repositories.NewCloudStorageRepository(&cfg)
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cloudStorageRepo.Close() })

	reportCache := genericCache.NewRedisClient[models.CashFlowProjection](cache, reportCachePrefix)
	costCenterCache := genericCache.NewInMemoryClient[models.CostCenter](cfg.LedgerConfig.CostCenterTTL)

	var ledgerEvents publisher.LedgerEventPublisher
	if producerCfg := cfg.MessageBroker.KafkaProducer; len(producerCfg.Brokers) > 0 {
		producer, errProducer := publisher.NewKafkaSyncProducer(
			producerCfg.Brokers,
			publisher.WithClientID(cfg.App.Name),
			publisher.WithMetricRegistry(mtc.SaramaRegistry(cfg.App.Name+"-"+command, producerCfg.MetricsFlushInterval)),
		)
		if errProducer != nil {
			err = fmt.Errorf("unable to create client kafka sync producer: %w", errProducer)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

		ledgerEvents = publisher.NewLedgerEventPublisher(
			publisher.NewPublisher(producer, producerCfg.TopicLedgerEvent, mtc.GetPublisherPrometheus()),
		)
	} else {
		xlog.Warn(ctx, "kafka brokers are not configured, ledger events will not be published")
	}

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cloudStorageRepo,
		reportCache,
		costCenterCache,
		ledgerEvents,
		idgenerator.New(),
		flagClient,
		mtc,
	)

	return &Setup{
		Config:           cfg,
		NewRelic:         newRelic,
		WriteDB:          writeDB,
		ReadDB:           readDB,
		Cache:            cache,
		RepoCache:        cacheRepo,
		RepoLock:         lockRepo,
		RepoCloudStorage: cloudStorageRepo,
		Flag:             flagClient,
		Service:          srv,
		Metrics:          mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

// DSN builds the libpq connection string of pgConf.
func DSN(pgConf config.Database) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	db, err := sql.Open("nrpgx", DSN(pgConf))
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if cfg.NewRelicLicenseKey == "" {
		return nil
	}
	if !cfg.Environment().IsProduction() {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); nil != err {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
