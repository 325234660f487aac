// internal/analysis/score-quality/handler.go
package scorequality

import (
	"context"
	"math"

	"cleanseam-engine/internal/catalog"
	"cleanseam-engine/internal/common/logger"
)

const TaskType = "score-quality"

// BrandResolver is the slice of the catalog store the scorer needs.
type BrandResolver interface {
	LookupBrand(name string) (catalog.BrandProfile, bool)
}

// FallbackStrategy derives a heuristic baseline for a brand the catalog does
// not know. It is a named strategy so the heuristic can be swapped or
// A/B-tested independently of the rest of the engine.
type FallbackStrategy func(price, referencePrice float64) (score float64, breakdown map[string]float64)

type Handler struct {
	config   *Config
	catalog  BrandResolver
	fallback FallbackStrategy
	logger   logger.Logger
}

func NewHandler(config *Config, catalogStore BrandResolver, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		catalog:  catalogStore,
		fallback: PriceRatioFallback(config),
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// WithFallback replaces the unknown-brand strategy.
func (h *Handler) WithFallback(f FallbackStrategy) *Handler {
	h.fallback = f
	return h
}

// Execute computes the 0-100 quality score. It has no recoverable failures:
// the category is validated upstream and an absent brand is handled by the
// fallback strategy, not failed.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	profile, ok := h.catalog.LookupBrand(input.Brand)
	if !ok {
		score, breakdown := h.fallback(input.Price, input.Category.ReferencePrice)
		h.logger.Debug("brand not in catalog, fallback scoring", map[string]interface{}{
			"brand":    input.Brand,
			"itemType": input.Category.ItemType,
			"score":    score,
		})
		return &Output{
			BrandName:    input.Brand,
			QualityScore: int(math.Round(score)),
			FallbackUsed: true,
			Breakdown:    breakdown,
		}, nil
	}

	override := profile.OverrideFor(input.Category.ItemType)
	durability := h.config.DurabilityWeight * profile.DurabilityRating
	transparency := h.config.TransparencyWeight * profile.TransparencyScore

	raw := profile.QualityBaseline + override + durability + transparency
	clamped := clamp(raw, 0, 100)

	breakdown := map[string]float64{
		"quality_baseline": round2(profile.QualityBaseline),
		"durability":       round2(durability),
		"transparency":     round2(transparency),
	}
	if override != 0 {
		breakdown["category_override"] = round2(override)
	}
	if clamped != raw {
		breakdown["clamp"] = round2(clamped - raw)
	}

	return &Output{
		BrandName:    profile.Name,
		QualityScore: int(math.Round(clamped)),
		FallbackUsed: false,
		Breakdown:    breakdown,
	}, nil
}

// PriceRatioFallback scores an unknown brand from how its price compares to
// the category reference price. The center sits below the midpoint on
// purpose: absence of data reflects uncertainty, not optimism.
func PriceRatioFallback(config *Config) FallbackStrategy {
	return func(price, referencePrice float64) (float64, map[string]float64) {
		ratio := (price - referencePrice) / referencePrice
		contribution := ratio * config.FallbackSlope
		score := clamp(config.FallbackCenter+contribution, 0, 100)

		return score, map[string]float64{
			"fallback_center": round2(config.FallbackCenter),
			"price_ratio":     round2(contribution),
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
