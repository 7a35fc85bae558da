package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// UpdateDeletePolicy controls who is allowed to update or delete a blog post.
// The original service required a login only for creating posts and left
// updates and deletes open to anyone. That stays the default, but the
// behavior is an explicit choice here rather than an accident.
const (
	AuthPolicyAnyone    = "anyone"
	AuthPolicyOwnerOnly = "owner-only"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics
	PrometheusMetricsHost string `toml:"prom_metrics_host"`
	PrometheusMetricsPort string `toml:"prom_metrics_port"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// blogs update/delete authorization: "anyone" or "owner-only"
	BlogsUpdateDeletePolicy string `toml:"blogs_update_delete_policy"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not present in %s", env, path)
	}

	if cfg.BlogsUpdateDeletePolicy == "" {
		cfg.BlogsUpdateDeletePolicy = AuthPolicyAnyone
	}
	if cfg.BlogsUpdateDeletePolicy != AuthPolicyAnyone && cfg.BlogsUpdateDeletePolicy != AuthPolicyOwnerOnly {
		return nil, fmt.Errorf("invalid blogs update/delete policy: %s", cfg.BlogsUpdateDeletePolicy)
	}

	return cfg, nil
}
