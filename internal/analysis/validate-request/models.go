// internal/analysis/validate-request/models.go
package validaterequest

import "cleanseam-engine/internal/catalog"

type Input struct {
	Brand    string  `json:"brand"`
	ItemType string  `json:"item_type"`
	Price    float64 `json:"price"`
}

// Output is the normalized analysis request. Category carries the resolved
// profile so downstream stages never repeat the lookup.
type Output struct {
	Brand    string
	ItemType string
	Price    float64
	Category catalog.CategoryProfile
}
