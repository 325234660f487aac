// internal/analysis/score-quality/config.go
package scorequality

// Config carries the tunable scoring constants. None of them are verified
// business law; they are an MVP heuristic expected to be re-tuned, so they
// live in configuration rather than code.
type Config struct {
	DurabilityWeight   float64
	TransparencyWeight float64
	FallbackCenter     float64
	FallbackSlope      float64
}

func LoadConfig() *Config {
	return &Config{
		DurabilityWeight:   0.10,
		TransparencyWeight: 0.10,
		FallbackCenter:     40,
		FallbackSlope:      20,
	}
}
