package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		Redis              Redis    `json:"redis"`
		SecretKey          string   `json:"secret_key"`
		GcloudProjectID    string   `json:"gcloud_project_id"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		FeatureFlag          FeatureFlag              `json:"feature_flag"`
		FeatureFlagSDKConfig FeatureFlagSDKConfig     `json:"feature_flag_sdk"`
		FeatureFlagKeyLookup FeatureFlagKeyLookup     `json:"feature_flag_key_lookup"`
		TransactionConfig    TransactionConfig        `json:"transaction_config"`
		LedgerConfig         LedgerConfig             `json:"ledger_config"`
		MessageBroker        MessageBroker            `json:"message_broker"`
		CloudStorageConfig   CloudStorageConfig       `json:"cloud_storage"`
		ExponentialBackoff   ExponentialBackOffConfig `json:"exponential_backoff"`
		WorkerConfig         WorkerConfig             `json:"worker_config"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	// FeatureFlag holds static toggles, used when the flag service is not configured
	// or does not know the toggle.
	FeatureFlag struct {
		EnablePublishLedgerEvent bool `json:"enable_publish_ledger_event"`
		EnableIdempotencyCheck   bool `json:"enable_idempotency_check"`
	}

	FeatureFlagSDKConfig struct {
		URL             string        `json:"url"`
		Token           string        `json:"token"`
		Env             string        `json:"env"`
		RefreshInterval time.Duration `json:"refresh_interval"`
	}

	FeatureFlagKeyLookup struct {
		PublishLedgerEvent string `json:"publish_ledger_event"`
		IdempotencyCheck   string `json:"idempotency_check"`
	}

	TransactionConfig struct {
		// DBTimeout bounds every atomic unit of work
		DBTimeout time.Duration `json:"db_timeout"`
	}

	LedgerConfig struct {
		DefaultInstallmentIntervalDays int    `json:"default_installment_interval_days"`
		MaxInstallmentCount            int    `json:"max_installment_count"`
		DefaultListLimit               int    `json:"default_list_limit"`
		MaxListLimit                   int    `json:"max_list_limit"`
		TransferReferencePrefix        string `json:"transfer_reference_prefix"`

		// ReportCacheTTL bounds how stale the cash flow projection may be, negative disables the cache
		ReportCacheTTL time.Duration `json:"report_cache_ttl"`
		CostCenterTTL  time.Duration `json:"cost_center_cache_ttl"`
	}

	MessageBroker struct {
		KafkaProducer ProducerConfig `json:"kafka_producer"`
	}

	ProducerConfig struct {
		Brokers              []string      `json:"brokers"`
		TopicLedgerEvent     string        `json:"topic_ledger_event"`
		MetricsFlushInterval time.Duration `json:"metrics_flush_interval"`
	}

	CloudStorageConfig struct {
		BaseURL         string `json:"base_url"`
		BucketName      string `json:"bucket_name"`
		StatementFolder string `json:"statement_folder"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	WorkerConfig struct {
		LockTTL time.Duration `json:"lock_ttl"`
	}
)

const (
	defaultDBTimeout                      = 10 * time.Second
	defaultInstallmentIntervalDays        = 30
	defaultMaxInstallmentCount            = 360
	defaultListLimit                      = 50
	defaultMaxListLimit                   = 500
	defaultTransferReferencePrefix        = "TRF"
	defaultReportCacheTTL                 = 30 * time.Second
	defaultCostCenterCacheTTL             = 5 * time.Minute
	defaultWorkerLockTTL                  = 10 * time.Minute
	defaultProducerMetricsFlushInterval   = 10 * time.Second
	defaultCloudStorageStatementDirectory = "statements"
	defaultFlagKeyPublishLedgerEvent      = "fin-ledger.publish-ledger-event"
	defaultFlagKeyIdempotencyCheck        = "fin-ledger.idempotency-check"
)

// setDefaults fills values the service cannot run without.
func (c *Config) setDefaults() {
	if c.TransactionConfig.DBTimeout <= 0 {
		c.TransactionConfig.DBTimeout = defaultDBTimeout
	}
	if c.LedgerConfig.DefaultInstallmentIntervalDays <= 0 {
		c.LedgerConfig.DefaultInstallmentIntervalDays = defaultInstallmentIntervalDays
	}
	if c.LedgerConfig.MaxInstallmentCount <= 0 {
		c.LedgerConfig.MaxInstallmentCount = defaultMaxInstallmentCount
	}
	if c.LedgerConfig.DefaultListLimit <= 0 {
		c.LedgerConfig.DefaultListLimit = defaultListLimit
	}
	if c.LedgerConfig.MaxListLimit <= 0 {
		c.LedgerConfig.MaxListLimit = defaultMaxListLimit
	}
	if c.LedgerConfig.TransferReferencePrefix == "" {
		c.LedgerConfig.TransferReferencePrefix = defaultTransferReferencePrefix
	}
	if c.LedgerConfig.ReportCacheTTL == 0 {
		c.LedgerConfig.ReportCacheTTL = defaultReportCacheTTL
	}
	if c.LedgerConfig.CostCenterTTL <= 0 {
		c.LedgerConfig.CostCenterTTL = defaultCostCenterCacheTTL
	}
	if c.WorkerConfig.LockTTL <= 0 {
		c.WorkerConfig.LockTTL = defaultWorkerLockTTL
	}
	if c.MessageBroker.KafkaProducer.MetricsFlushInterval <= 0 {
		c.MessageBroker.KafkaProducer.MetricsFlushInterval = defaultProducerMetricsFlushInterval
	}
	if c.FeatureFlagKeyLookup.PublishLedgerEvent == "" {
		c.FeatureFlagKeyLookup.PublishLedgerEvent = defaultFlagKeyPublishLedgerEvent
	}
	if c.FeatureFlagKeyLookup.IdempotencyCheck == "" {
		c.FeatureFlagKeyLookup.IdempotencyCheck = defaultFlagKeyIdempotencyCheck
	}
	if c.CloudStorageConfig.StatementFolder == "" {
		c.CloudStorageConfig.StatementFolder = defaultCloudStorageStatementDirectory
	}
}
