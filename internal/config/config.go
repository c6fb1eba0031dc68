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
)

// Config keeps runtime settings for the recommender.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Usage    UsageConfig    `koanf:"usage"`
	Daemon   DaemonConfig   `koanf:"daemon"`
	Limit    int            `koanf:"limit"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type UsageConfig struct {
	// Window is the journal lookback for usage scans.
	Window time.Duration `koanf:"window"`
	// Recent overrides the recently-used.xbel location.
	Recent string `koanf:"recent"`
}

type DaemonConfig struct {
	Interval time.Duration `koanf:"interval"`
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "APPREC_CONFIG"

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"apprec.yaml",
	"/etc/app-recommender/config.yaml",
}

func defaultConfig() *Config {
	cfg := &Config{
		Database: DatabaseConfig{Path: "/var/lib/app-recommender/database.db"},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
		Usage:    UsageConfig{Window: 24 * time.Hour},
		Daemon:   DaemonConfig{Interval: time.Hour},
		Limit:    10,
	}
	// APP_RECOMMENDER_DB predates the config file and still wins as a default.
	if legacy := os.Getenv("APP_RECOMMENDER_DB"); legacy != "" {
		cfg.Database.Path = legacy
	}
	return cfg
}

// Load builds configuration from three layers, lowest priority first:
// built-in defaults, an optional YAML file, APPREC_* environment variables
// (APPREC_DATABASE_PATH -> database.path).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("APPREC_", ".", func(key string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, "APPREC_")), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	if c.Daemon.Interval <= 0 {
		return fmt.Errorf("daemon interval must be positive")
	}
	if c.Usage.Window <= 0 {
		return fmt.Errorf("usage window must be positive")
	}
	return nil
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
