// Package config loads the service configuration from defaults, an optional
// YAML file and CATALOG_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/murkotick/catalog-engine/internal/logging"
	"github.com/murkotick/catalog-engine/internal/pkg/exchange"
	"github.com/murkotick/catalog-engine/internal/validation"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// EnvPrefix marks the environment variables read as configuration.
const EnvPrefix = "CATALOG_"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	GRPC     GRPCConfig             `koanf:"grpc"`
	Ops      OpsConfig              `koanf:"ops"`
	Spanner  SpannerConfig          `koanf:"spanner"`
	Catalog  CatalogConfig          `koanf:"catalog"`
	Exchange exchange.BreakerConfig `koanf:"exchange"`
	Logging  logging.Config         `koanf:"logging"`
}

type GRPCConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=0"`
	Reflection      bool          `koanf:"reflection"`
}

// OpsConfig serves /healthz and /metrics over HTTP. An empty Addr disables it.
type OpsConfig struct {
	Addr string `koanf:"addr"`
}

type SpannerConfig struct {
	Database string `koanf:"database" validate:"required"`
}

type CatalogConfig struct {
	DefaultFeedLimit int    `koanf:"default_feed_limit" validate:"min=1,ltefield=MaxFeedLimit"`
	MaxFeedLimit     int    `koanf:"max_feed_limit" validate:"min=1"`
	RelatedLimit     int    `koanf:"related_limit" validate:"min=1,ltefield=MaxRelatedLimit"`
	MaxRelatedLimit  int    `koanf:"max_related_limit" validate:"min=1"`
	MaxCombinations  int    `koanf:"max_combinations" validate:"min=1"`
	MainCurrency     string `koanf:"main_currency" validate:"omitempty,len=3"`
}

func defaultConfig() *Config {
	return &Config{
		GRPC: GRPCConfig{
			Addr:            ":50051",
			ShutdownTimeout: 5 * time.Second,
		},
		Ops: OpsConfig{
			Addr: ":9090",
		},
		Spanner: SpannerConfig{
			Database: "projects/test-project/instances/emulator-instance/databases/test-db",
		},
		Catalog: CatalogConfig{
			DefaultFeedLimit: 24,
			MaxFeedLimit:     100,
			RelatedLimit:     8,
			MaxRelatedLimit:  50,
			MaxCombinations:  1000,
		},
		Exchange: exchange.DefaultBreakerConfig(),
		Logging: logging.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment, CATALOG_GRPC_ADDR -> grpc.addr
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc maps CATALOG_SECTION_SOME_KEY to section.some_key. Only the
// first underscore after the prefix separates the section.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	return section + "." + rest
}
