// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
	Wear       WearConfig       `mapstructure:"wear"`
	Comparison ComparisonConfig `mapstructure:"comparison"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// CatalogConfig selects and configures the reference-data source.
// Source is "file" (JSON catalog documents) or "postgres" (curated
// brand database).
type CatalogConfig struct {
	Source         string         `mapstructure:"source"`
	BrandsPath     string         `mapstructure:"brands_path"`
	CategoriesPath string         `mapstructure:"categories_path"`
	Postgres       PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// ScoringConfig holds the tunable constants of the quality score. The
// weights and the fallback center/slope are deliberately configuration, not
// code: the heuristic is expected to be tuned without touching the engine.
type ScoringConfig struct {
	DurabilityWeight   float64 `mapstructure:"durability_weight"`
	TransparencyWeight float64 `mapstructure:"transparency_weight"`
	FallbackCenter     float64 `mapstructure:"fallback_center"`
	FallbackSlope      float64 `mapstructure:"fallback_slope"`
}

// WearConfig holds the wear-estimation multiplier range and the verdict
// bands. Bands are matched top-down on min_score.
type WearConfig struct {
	MinMultiplier float64       `mapstructure:"min_multiplier"`
	MaxMultiplier float64       `mapstructure:"max_multiplier"`
	Verdicts      []VerdictBand `mapstructure:"verdicts"`
}

type VerdictBand struct {
	MinScore int    `mapstructure:"min_score"`
	Label    string `mapstructure:"label"`
}

type ComparisonConfig struct {
	MaxBrands int `mapstructure:"max_brands"`
}

// CacheConfig configures the optional redis result cache.
type CacheConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Address    string `mapstructure:"address"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
