// internal/analysis/estimate-wear/handler.go
package estimatewear

import (
	"context"
	"math"

	"cleanseam-engine/internal/common/logger"
)

const TaskType = "estimate-wear"

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Execute converts a quality score and category baseline into an estimated
// wear count and cost-per-wear. Hard contract: the multiplier is monotonic
// non-decreasing in the score, so at fixed price and category a higher
// quality score never produces a higher cost-per-wear.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	multiplier := h.qualityMultiplier(input.QualityScore)

	wears := int(math.Round(float64(input.Category.BaseWearCount) * multiplier))
	if wears < 1 {
		// Never zero: cost-per-wear divides by this.
		wears = 1
	}

	costPerWear := math.Round(input.Price/float64(wears)*100) / 100

	return &Output{
		EstimatedWears: wears,
		CostPerWear:    costPerWear,
		Verdict:        h.config.Verdict(input.QualityScore),
	}, nil
}

// qualityMultiplier maps score 0..100 linearly onto the configured
// multiplier range (defaults 0.5x..2.0x).
func (h *Handler) qualityMultiplier(score int) float64 {
	clamped := math.Min(math.Max(float64(score), 0), 100)
	span := h.config.MaxMultiplier - h.config.MinMultiplier
	return h.config.MinMultiplier + span*clamped/100.0
}
