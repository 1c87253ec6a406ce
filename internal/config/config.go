package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	RunMigrations  bool   `toml:"run_migrations"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// http
	AllowedOrigins []string `toml:"allowed_origins"`
	RequestTimeout Duration `toml:"request_timeout"`

	// auth
	SessionTTL                  Duration `toml:"session_ttl"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`

	// caching
	MuscleGroupsCacheSizeMB int      `toml:"muscle_groups_cache_size_mb"`
	MuscleGroupsCacheTTL    Duration `toml:"muscle_groups_cache_ttl"`
}

// Duration lets TOML carry values like "15s" or "168h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env with defaults filled in.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for env %s: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.RequestTimeout.Duration == 0 {
		c.RequestTimeout.Duration = 15 * time.Second
	}
	if c.SessionTTL.Duration == 0 {
		c.SessionTTL.Duration = 7 * 24 * time.Hour
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.MuscleGroupsCacheSizeMB == 0 {
		c.MuscleGroupsCacheSizeMB = 1
	}
	if c.MuscleGroupsCacheTTL.Duration == 0 {
		c.MuscleGroupsCacheTTL.Duration = 10 * time.Minute
	}
}

func (c *Config) Validate() error {
	if c.PostgresHost == "" {
		return errors.New("postgres_host is required")
	}
	if c.PostgresDBName == "" {
		return errors.New("postgres_db_name is required")
	}
	if c.RedisHost == "" {
		return errors.New("redis_host is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}
