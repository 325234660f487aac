// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like CLEANSEAM_CATALOG_SOURCE
	viper.SetEnvPrefix("cleanseam")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, e.g. config.production.yaml
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // ignore error if not found

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "cleanseam-engine"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30000
	}

	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "file"
	}
	if cfg.Catalog.BrandsPath == "" {
		cfg.Catalog.BrandsPath = "configs/catalog/brands.json"
	}
	if cfg.Catalog.CategoriesPath == "" {
		cfg.Catalog.CategoriesPath = "configs/catalog/categories.json"
	}
	if cfg.Catalog.Postgres.MaxConnections == 0 {
		cfg.Catalog.Postgres.MaxConnections = 25
	}
	if cfg.Catalog.Postgres.MaxIdle == 0 {
		cfg.Catalog.Postgres.MaxIdle = 5
	}
	if cfg.Catalog.Postgres.SSLMode == "" {
		cfg.Catalog.Postgres.SSLMode = "disable"
	}

	if cfg.Scoring.DurabilityWeight == 0 {
		cfg.Scoring.DurabilityWeight = 0.10
	}
	if cfg.Scoring.TransparencyWeight == 0 {
		cfg.Scoring.TransparencyWeight = 0.10
	}
	if cfg.Scoring.FallbackCenter == 0 {
		cfg.Scoring.FallbackCenter = 40
	}
	if cfg.Scoring.FallbackSlope == 0 {
		cfg.Scoring.FallbackSlope = 20
	}

	if cfg.Wear.MinMultiplier == 0 {
		cfg.Wear.MinMultiplier = 0.5
	}
	if cfg.Wear.MaxMultiplier == 0 {
		cfg.Wear.MaxMultiplier = 2.0
	}
	if len(cfg.Wear.Verdicts) == 0 {
		cfg.Wear.Verdicts = []VerdictBand{
			{MinScore: 75, Label: "excellent value potential"},
			{MinScore: 50, Label: "fair"},
			{MinScore: 0, Label: "reconsider"},
		}
	}

	if cfg.Comparison.MaxBrands == 0 {
		cfg.Comparison.MaxBrands = 25
	}

	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 10
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	switch cfg.Catalog.Source {
	case "file":
		if cfg.Catalog.BrandsPath == "" || cfg.Catalog.CategoriesPath == "" {
			return fmt.Errorf("catalog.brands_path and catalog.categories_path are required for the file source")
		}
	case "postgres":
		if cfg.Catalog.Postgres.Host == "" {
			return fmt.Errorf("catalog.postgres.host is required")
		}
		if cfg.Catalog.Postgres.Database == "" {
			return fmt.Errorf("catalog.postgres.database is required")
		}
		if cfg.Catalog.Postgres.User == "" {
			return fmt.Errorf("catalog.postgres.user is required")
		}
	default:
		return fmt.Errorf("catalog.source must be \"file\" or \"postgres\", got %q", cfg.Catalog.Source)
	}

	if cfg.Scoring.DurabilityWeight < 0 || cfg.Scoring.TransparencyWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}

	if cfg.Wear.MinMultiplier <= 0 {
		return fmt.Errorf("wear.min_multiplier must be positive")
	}
	if cfg.Wear.MaxMultiplier < cfg.Wear.MinMultiplier {
		return fmt.Errorf("wear.max_multiplier must be >= wear.min_multiplier")
	}

	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache.enabled is true")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// CacheTTL returns the configured result-cache TTL.
func (c CacheConfig) CacheTTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}
