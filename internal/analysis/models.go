// internal/analysis/models.go
package analysis

// Request is a raw, untrusted analysis input as supplied by the caller.
type Request struct {
	Brand    string  `json:"brand"`
	ItemType string  `json:"item_type"`
	Price    float64 `json:"price"`
}

// Result is one finished analysis. Breakdown lists every additive scoring
// term by name so a caller can explain the score.
type Result struct {
	Brand          string             `json:"brand"`
	ItemType       string             `json:"item_type"`
	Price          float64            `json:"price"`
	QualityScore   int                `json:"quality_score"`
	EstimatedWears int                `json:"estimated_wears"`
	CostPerWear    float64            `json:"cost_per_wear"`
	Verdict        string             `json:"verdict"`
	FallbackUsed   bool               `json:"fallback_used"`
	Breakdown      map[string]float64 `json:"breakdown"`
}
