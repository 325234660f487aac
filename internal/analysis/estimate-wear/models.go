// internal/analysis/estimate-wear/models.go
package estimatewear

import "cleanseam-engine/internal/catalog"

type Input struct {
	Category     catalog.CategoryProfile
	QualityScore int
	Price        float64
}

type Output struct {
	EstimatedWears int
	CostPerWear    float64
	Verdict        string
}
