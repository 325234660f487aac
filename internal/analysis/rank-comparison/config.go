// internal/analysis/rank-comparison/config.go
package rankcomparison

type Config struct {
	MaxBrands int
}

func LoadConfig() *Config {
	return &Config{
		MaxBrands: 25,
	}
}
