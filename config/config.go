package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/spacesedan/tickerpulse/internal/alerts"
)

// Config is the complete application configuration.
type Config struct {
	Analysis AnalysisConfig    `mapstructure:"analysis"`
	Alerts   alerts.Thresholds `mapstructure:"alerts"`
	Cache    CacheConfig       `mapstructure:"cache"`
	Server   ServerConfig      `mapstructure:"server"`
	Logging  LoggingConfig     `mapstructure:"logging"`
}

// AnalysisConfig tunes the analytical pipeline.
type AnalysisConfig struct {
	LookbackDays   int           `mapstructure:"lookback_days"`
	TrendThreshold float64       `mapstructure:"trend_threshold"`
	VADERWeight    float64       `mapstructure:"vader_weight"`
	PatternWeight  float64       `mapstructure:"pattern_weight"`
	MaxConcurrency int           `mapstructure:"max_concurrency"`
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`
}

// CacheConfig selects and tunes the result cache.
type CacheConfig struct {
	Backend string        `mapstructure:"backend"` // "memory" or "valkey"
	TTL     time.Duration `mapstructure:"ttl"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("analysis.lookback_days", 7)
	v.SetDefault("analysis.trend_threshold", 0.15)
	v.SetDefault("analysis.vader_weight", 0.7)
	v.SetDefault("analysis.pattern_weight", 0.3)
	v.SetDefault("analysis.max_concurrency", 5)
	v.SetDefault("analysis.fetch_timeout", 15*time.Second)

	defaults := alerts.DefaultThresholds()
	v.SetDefault("alerts.extreme_positive", defaults.ExtremePositive)
	v.SetDefault("alerts.extreme_negative", defaults.ExtremeNegative)
	v.SetDefault("alerts.high_positive", defaults.HighPositive)
	v.SetDefault("alerts.high_negative", defaults.HighNegative)
	v.SetDefault("alerts.high_volume", defaults.HighVolume)
	v.SetDefault("alerts.low_volume", defaults.LowVolume)
	v.SetDefault("alerts.low_confidence", defaults.LowConfidence)
	v.SetDefault("alerts.strong_correlation", defaults.StrongCorrelation)
	v.SetDefault("alerts.distribution", defaults.Distribution)
	v.SetDefault("alerts.gate_trend_on_sentiment", false)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:5000"})

	v.SetDefault("logging.level", "info")
}

// Load reads configuration from an optional config file (tickerpulse.yaml
// in the working directory or /etc/tickerpulse) plus TICKERPULSE_*
// environment variables, falling back to defaults for everything else.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("tickerpulse")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/tickerpulse")

	v.SetEnvPrefix("TICKERPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Analysis.LookbackDays < 1 {
		return fmt.Errorf("analysis.lookback_days must be >= 1, got %d", c.Analysis.LookbackDays)
	}
	if c.Analysis.TrendThreshold <= 0 {
		return fmt.Errorf("analysis.trend_threshold must be > 0, got %f", c.Analysis.TrendThreshold)
	}
	if c.Analysis.MaxConcurrency < 1 {
		return fmt.Errorf("analysis.max_concurrency must be >= 1, got %d", c.Analysis.MaxConcurrency)
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "valkey" {
		return fmt.Errorf("cache.backend must be memory or valkey, got %q", c.Cache.Backend)
	}
	return nil
}
