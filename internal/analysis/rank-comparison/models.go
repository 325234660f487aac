// internal/analysis/rank-comparison/models.go
package rankcomparison

import "cleanseam-engine/internal/analysis"

// Input is one comparison batch: a shared item type and price evaluated
// across several brands.
type Input struct {
	ItemType string   `json:"item_type"`
	Price    float64  `json:"price"`
	Brands   []string `json:"brands"`
}

type Output struct {
	ItemType string            `json:"item_type"`
	Price    float64           `json:"price"`
	Ranked   []analysis.Result `json:"ranked"`
	Failed   []FailedBrand     `json:"failed,omitempty"`
}

// FailedBrand records a degraded entry: the brand is excluded from ranking
// but still reported to the caller with its original input.
type FailedBrand struct {
	Brand     string `json:"brand"`
	ErrorKind string `json:"error_kind"`
}
