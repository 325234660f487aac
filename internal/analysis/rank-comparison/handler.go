// internal/analysis/rank-comparison/handler.go
package rankcomparison

import (
	"context"
	"sort"

	"cleanseam-engine/internal/analysis"
	"cleanseam-engine/internal/catalog"
	"cleanseam-engine/internal/common/errors"
	"cleanseam-engine/internal/common/logger"
	"cleanseam-engine/internal/common/metrics"
)

const TaskType = "rank-comparison"

// Analyzer runs the single-item pipeline. Defined here so tests can stub it.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error)
}

type Handler struct {
	config   *Config
	analyzer Analyzer
	logger   logger.Logger
}

func NewHandler(config *Config, analyzer Analyzer, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		analyzer: analyzer,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Execute evaluates each brand independently; one brand's failure never
// aborts the batch. The ranked subset is ordered cost-per-wear ascending,
// then quality score descending, then folded brand name ascending, which is
// a deterministic total order under exact numeric ties.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	brands := dedupeBrands(input.Brands)
	if len(brands) > h.config.MaxBrands {
		h.logger.Warn("comparison truncated", map[string]interface{}{
			"requested": len(brands),
			"maxBrands": h.config.MaxBrands,
		})
		brands = brands[:h.config.MaxBrands]
	}

	output := &Output{
		ItemType: input.ItemType,
		Price:    input.Price,
	}

	for _, brand := range brands {
		result, err := h.analyzer.Analyze(ctx, analysis.Request{
			Brand:    brand,
			ItemType: input.ItemType,
			Price:    input.Price,
		})
		if err != nil {
			output.Failed = append(output.Failed, FailedBrand{
				Brand:     brand,
				ErrorKind: string(errors.CodeOf(err)),
			})
			continue
		}
		output.Ranked = append(output.Ranked, *result)
	}

	if len(output.Ranked) == 0 {
		metrics.ComparisonBatches.WithLabelValues("all_failed").Inc()
		return nil, errors.NewAllComparisonsFailedError(len(brands))
	}

	sort.Slice(output.Ranked, func(i, j int) bool {
		a, b := output.Ranked[i], output.Ranked[j]
		if a.CostPerWear != b.CostPerWear {
			return a.CostPerWear < b.CostPerWear
		}
		if a.QualityScore != b.QualityScore {
			return a.QualityScore > b.QualityScore
		}
		return catalog.NormalizeKey(a.Brand) < catalog.NormalizeKey(b.Brand)
	})

	if len(output.Failed) > 0 {
		metrics.ComparisonBatches.WithLabelValues("partial").Inc()
	} else {
		metrics.ComparisonBatches.WithLabelValues("ok").Inc()
	}

	h.logger.Info("comparison completed", map[string]interface{}{
		"itemType": input.ItemType,
		"ranked":   len(output.Ranked),
		"failed":   len(output.Failed),
	})

	return output, nil
}

// dedupeBrands drops repeated brands after normalization, first occurrence
// wins, so a duplicate submission cannot appear twice in the ranking.
func dedupeBrands(brands []string) []string {
	seen := make(map[string]bool, len(brands))
	out := make([]string, 0, len(brands))
	for _, b := range brands {
		key := catalog.NormalizeKey(b)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}
