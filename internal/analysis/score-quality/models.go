// internal/analysis/score-quality/models.go
package scorequality

import "cleanseam-engine/internal/catalog"

type Input struct {
	Brand    string
	Category catalog.CategoryProfile
	Price    float64
}

type Output struct {
	// BrandName is the catalog's canonical casing when the brand resolved,
	// otherwise the caller's input as submitted.
	BrandName    string
	QualityScore int
	FallbackUsed bool
	Breakdown    map[string]float64
}
