// internal/analysis/estimate-wear/config.go
package estimatewear

import "sort"

// Band labels a score range for display. Bands are matched top-down on
// MinScore; they never feed back into ranking.
type Band struct {
	MinScore int
	Label    string
}

type Config struct {
	MinMultiplier float64
	MaxMultiplier float64
	Verdicts      []Band
}

func LoadConfig() *Config {
	return &Config{
		MinMultiplier: 0.5,
		MaxMultiplier: 2.0,
		Verdicts: []Band{
			{MinScore: 75, Label: "excellent value potential"},
			{MinScore: 50, Label: "fair"},
			{MinScore: 0, Label: "reconsider"},
		},
	}
}

// Verdict maps a quality score onto the configured band labels.
func (c *Config) Verdict(score int) string {
	bands := make([]Band, len(c.Verdicts))
	copy(bands, c.Verdicts)
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].MinScore > bands[j].MinScore
	})

	for _, b := range bands {
		if score >= b.MinScore {
			return b.Label
		}
	}
	if len(bands) > 0 {
		return bands[len(bands)-1].Label
	}
	return ""
}
