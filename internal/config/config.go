package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Storage  *StorageConfig  `mapstructure:"storage"`
	Seed     *SeedConfig     `mapstructure:"seed"`
	Metrics  *MetricsConfig  `mapstructure:"metrics"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type SeedConfig struct {
	Path string `mapstructure:"path"`
}

// MetricsConfig tunes the aggregator. Stock above HighStockThreshold percent is HIGH,
// above LowStockThreshold is MEDIUM, anything else LOW.
type MetricsConfig struct {
	HighStockThreshold     float64 `mapstructure:"high_stock_threshold"`
	LowStockThreshold      float64 `mapstructure:"low_stock_threshold"`
	MaxRangeDays           int     `mapstructure:"max_range_days"`
	TopSellersDefaultLimit int     `mapstructure:"top_sellers_default_limit"`
	DashboardRevenueDays   int     `mapstructure:"dashboard_revenue_days"`
	RecentRatingsLimit     int     `mapstructure:"recent_ratings_limit"`
}

// DefaultMetricsConfig returns the thresholds the dashboard has always used.
func DefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		HighStockThreshold:     50,
		LowStockThreshold:      20,
		MaxRangeDays:           366,
		TopSellersDefaultLimit: 5,
		DashboardRevenueDays:   7,
		RecentRatingsLimit:     5,
	}
}

func (c *MetricsConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.HighStockThreshold, validation.Required, validation.Max(100.0), validation.Min(c.LowStockThreshold)),
		validation.Field(&c.LowStockThreshold, validation.Min(0.0)),
		validation.Field(&c.MaxRangeDays, validation.Required, validation.Min(1)),
		validation.Field(&c.TopSellersDefaultLimit, validation.Required, validation.Min(1)),
		validation.Field(&c.DashboardRevenueDays, validation.Required, validation.Min(1), validation.Max(c.MaxRangeDays)),
		validation.Field(&c.RecentRatingsLimit, validation.Required, validation.Min(1)),
	)
}

func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.API, validation.Required),
		validation.Field(&c.Gin, validation.Required),
		validation.Field(&c.Storage, validation.Required),
		validation.Field(&c.Metrics, validation.Required),
	)
}

func (c *StorageConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Driver, validation.Required, validation.In(StorageMemory, StoragePostgres)),
	)
}

func (c *APIConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.JWTSigningKey, validation.Required),
	)
}

func (c *GinConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Mode, validation.In("debug", "release", "test")),
	)
}

// Load reads the YAML file at path. Every key can be overridden by an environment
// variable named after it, e.g. API_PORT or METRICS_MAX_RANGE_DAYS.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	// Changes are reported but not applied; restart to pick them up.
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	m := DefaultMetricsConfig()

	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "cafe_pulse")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("seed.path", "")
	v.SetDefault("metrics.high_stock_threshold", m.HighStockThreshold)
	v.SetDefault("metrics.low_stock_threshold", m.LowStockThreshold)
	v.SetDefault("metrics.max_range_days", m.MaxRangeDays)
	v.SetDefault("metrics.top_sellers_default_limit", m.TopSellersDefaultLimit)
	v.SetDefault("metrics.dashboard_revenue_days", m.DashboardRevenueDays)
	v.SetDefault("metrics.recent_ratings_limit", m.RecentRatingsLimit)
}
