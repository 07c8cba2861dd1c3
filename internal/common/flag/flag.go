package flag

import (
	"context"
	"net/http"
	"time"

	"github.com/Unleash/unleash-client-go/v3"

	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

const defaultRefreshInterval = 30 * time.Second

// Job carries the arguments of one worker run.
type Job struct {
	JobName string
	Version string
	Date    string
}

// Client answers feature toggles. Unknown toggles fall back to the static
// configuration, so the service keeps working without the flag server.
//go:generate mockgen -source=flag.go -destination=mock/flag.go -package=mock
type Client interface {
	IsEnabled(key string) bool
	Close() error
}

type unleashClient struct {
	client   *unleash.Client
	fallback map[string]bool
}

// New connects to the feature flag server when it is configured, otherwise it
// returns a client backed by the static configuration only.
func New(ctx context.Context, cfg *config.Config) (Client, error) {
	fallback := staticToggles(cfg)
	if cfg.FeatureFlagSDKConfig.URL == "" {
		xlog.Info(ctx, "[FEATURE-FLAG] server not configured, using static toggles")
		return NewStatic(fallback), nil
	}

	refresh := cfg.FeatureFlagSDKConfig.RefreshInterval
	if refresh <= 0 {
		refresh = defaultRefreshInterval
	}

	c, err := unleash.NewClient(
		unleash.WithAppName(cfg.App.Name),
		unleash.WithUrl(cfg.FeatureFlagSDKConfig.URL),
		unleash.WithEnvironment(cfg.FeatureFlagSDKConfig.Env),
		unleash.WithCustomHeaders(http.Header{"Authorization": {cfg.FeatureFlagSDKConfig.Token}}),
		unleash.WithRefreshInterval(refresh),
		unleash.WithHttpClient(&http.Client{Transport: monitoring.NewMiddlewareRoundTripper(nil)}),
		unleash.WithListener(&unleash.DebugListener{}),
	)
	if err != nil {
		return nil, err
	}
	c.WaitForReady()

	return &unleashClient{client: c, fallback: fallback}, nil
}

func (u *unleashClient) IsEnabled(key string) bool {
	return u.client.IsEnabled(key, unleash.WithFallback(u.fallback[key]))
}

func (u *unleashClient) Close() error {
	return u.client.Close()
}

type staticClient map[string]bool

// NewStatic returns a client answering from a fixed toggle set.
func NewStatic(toggles map[string]bool) Client {
	return staticClient(toggles)
}

func (s staticClient) IsEnabled(key string) bool {
	return s[key]
}

func (s staticClient) Close() error {
	return nil
}

func staticToggles(cfg *config.Config) map[string]bool {
	return map[string]bool{
		cfg.FeatureFlagKeyLookup.PublishLedgerEvent: cfg.FeatureFlag.EnablePublishLedgerEvent,
		cfg.FeatureFlagKeyLookup.IdempotencyCheck:   cfg.FeatureFlag.EnableIdempotencyCheck,
	}
}
