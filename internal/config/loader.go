package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const EnvPrefix = "GO_FIN_LEDGER"

type loaderOptions struct {
	fileName    string
	searchPaths []string
	dotEnvFiles []string
}

type LoaderOption func(*loaderOptions)

func WithConfigFileName(name string) LoaderOption {
	return func(o *loaderOptions) {
		o.fileName = name
	}
}

func WithConfigFileSearchPaths(paths ...string) LoaderOption {
	return func(o *loaderOptions) {
		o.searchPaths = append(o.searchPaths, paths...)
	}
}

func WithDotEnv(files ...string) LoaderOption {
	return func(o *loaderOptions) {
		o.dotEnvFiles = append(o.dotEnvFiles, files...)
	}
}

// Load reads config.{yaml,json} from the search paths and lets environment
// variables prefixed with GO_FIN_LEDGER override single keys, for example
// GO_FIN_LEDGER_APP__HTTP_PORT overrides app.http_port.
func Load(opts ...LoaderOption) (Config, error) {
	o := &loaderOptions{
		fileName: "config",
	}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.searchPaths) == 0 {
		o.searchPaths = []string{"/config", ".", "./config"}
	}

	// .env is optional and only used on local machines
	if len(o.dotEnvFiles) > 0 {
		if err := godotenv.Load(o.dotEnvFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load dotenv: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigName(o.fileName)
	for _, p := range o.searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.setDefaults()

	return cfg, nil
}
