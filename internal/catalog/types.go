// internal/catalog/types.go
package catalog

import "strings"

// PriceTier buckets a brand's typical pricing.
type PriceTier string

const (
	TierBudget  PriceTier = "budget"
	TierMid     PriceTier = "mid"
	TierPremium PriceTier = "premium"
	TierLuxury  PriceTier = "luxury"
)

// Valid reports whether the tier is one of the known buckets.
func (t PriceTier) Valid() bool {
	switch t {
	case TierBudget, TierMid, TierPremium, TierLuxury:
		return true
	}
	return false
}

// TypicalPriceRange returns the display price range for the tier.
func (t PriceTier) TypicalPriceRange() string {
	switch t {
	case TierBudget:
		return "$15-40"
	case TierMid:
		return "$40-100"
	case TierPremium:
		return "$80-250"
	case TierLuxury:
		return "$200+"
	}
	return "$30-80"
}

// BrandProfile is one brand's general quality signal. Immutable after load.
type BrandProfile struct {
	Name              string             `json:"name"`
	QualityBaseline   float64            `json:"quality_baseline"`
	DurabilityRating  float64            `json:"durability_rating"`
	TransparencyScore float64            `json:"transparency_score"`
	PriceTier         PriceTier          `json:"price_tier"`
	CategoryOverrides map[string]float64 `json:"category_overrides,omitempty"`
}

// OverrideFor returns the additive adjustment for a category, zero when the
// brand carries no override for it.
func (b BrandProfile) OverrideFor(itemType string) float64 {
	if b.CategoryOverrides == nil {
		return 0
	}
	return b.CategoryOverrides[NormalizeKey(itemType)]
}

// CategoryProfile is one item type's wear baseline. Immutable after load.
type CategoryProfile struct {
	ItemType       string  `json:"item_type"`
	BaseWearCount  int     `json:"base_wear_count"`
	ReferencePrice float64 `json:"reference_price"`
}

// NormalizeKey folds an identifier for case/whitespace-insensitive lookup.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
