// internal/analysis/analyzer.go
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	estimatewear "cleanseam-engine/internal/analysis/estimate-wear"
	scorequality "cleanseam-engine/internal/analysis/score-quality"
	validaterequest "cleanseam-engine/internal/analysis/validate-request"
	"cleanseam-engine/internal/catalog"
	"cleanseam-engine/internal/common/errors"
	"cleanseam-engine/internal/common/logger"
	"cleanseam-engine/internal/common/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Config carries the analyzer-level settings. Scoring and wear configs are
// owned by their handlers; CacheTTL only matters when a redis client is set.
type Config struct {
	Scoring  *scorequality.Config
	Wear     *estimatewear.Config
	CacheTTL time.Duration
}

// Analyzer runs the full pipeline for one request:
// Received -> Validated -> Scored -> Estimated -> Finalized, or
// Received -> Failed(kind). Strictly linear, no retries; every failure is a
// pure function of the input.
type Analyzer struct {
	config    *Config
	validator *validaterequest.Handler
	scorer    *scorequality.Handler
	estimator *estimatewear.Handler
	cache     *redis.Client
	logger    logger.Logger
}

// NewAnalyzer wires the pipeline over the catalog store. cache may be nil;
// the analyzer then computes every request from scratch.
func NewAnalyzer(config *Config, store *catalog.Store, cache *redis.Client, log logger.Logger) *Analyzer {
	return &Analyzer{
		config:    config,
		validator: validaterequest.NewHandler(store, log),
		scorer:    scorequality.NewHandler(config.Scoring, store, log),
		estimator: estimatewear.NewHandler(config.Wear, log),
		cache:     cache,
		logger:    log.WithFields(map[string]interface{}{"component": "analyzer"}),
	}
}

// Scorer exposes the scoring handler so callers can install an alternative
// fallback strategy.
func (a *Analyzer) Scorer() *scorequality.Handler {
	return a.scorer
}

func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Result, error) {
	requestID := uuid.NewString()
	start := time.Now()

	validated, err := a.validator.Execute(ctx, &validaterequest.Input{
		Brand:    req.Brand,
		ItemType: req.ItemType,
		Price:    req.Price,
	})
	if err != nil {
		metrics.AnalysesFailed.WithLabelValues(string(errors.CodeOf(err))).Inc()
		a.logger.Warn("request rejected", map[string]interface{}{
			"requestId": requestID,
			"brand":     req.Brand,
			"itemType":  req.ItemType,
			"error":     err,
		})
		return nil, err
	}

	cacheKey := fmt.Sprintf("analysis:%s:%s:%.2f", validated.Brand, validated.ItemType, validated.Price)
	if cached := a.cacheGet(ctx, cacheKey); cached != nil {
		// Cache hits are analyses too as far as the counters are concerned.
		a.recordMetrics(cached, start)
		a.logger.Debug("analysis served from cache", map[string]interface{}{
			"requestId": requestID,
			"key":       cacheKey,
		})
		return cached, nil
	}

	scored, err := a.scorer.Execute(ctx, &scorequality.Input{
		Brand:    validated.Brand,
		Category: validated.Category,
		Price:    validated.Price,
	})
	if err != nil {
		return nil, err
	}

	estimated, err := a.estimator.Execute(ctx, &estimatewear.Input{
		Category:     validated.Category,
		QualityScore: scored.QualityScore,
		Price:        validated.Price,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Brand:          scored.BrandName,
		ItemType:       validated.ItemType,
		Price:          validated.Price,
		QualityScore:   scored.QualityScore,
		EstimatedWears: estimated.EstimatedWears,
		CostPerWear:    estimated.CostPerWear,
		Verdict:        estimated.Verdict,
		FallbackUsed:   scored.FallbackUsed,
		Breakdown:      scored.Breakdown,
	}

	a.cacheSet(ctx, cacheKey, result)

	a.recordMetrics(result, start)

	a.logger.Info("analysis completed", map[string]interface{}{
		"requestId":    requestID,
		"brand":        result.Brand,
		"itemType":     result.ItemType,
		"qualityScore": result.QualityScore,
		"costPerWear":  result.CostPerWear,
		"fallbackUsed": result.FallbackUsed,
	})

	return result, nil
}

func (a *Analyzer) recordMetrics(result *Result, start time.Time) {
	metrics.AnalysesTotal.WithLabelValues(result.ItemType).Inc()
	if result.FallbackUsed {
		metrics.FallbackScores.Inc()
	}
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
}

// cacheGet returns a cached result or nil. Any cache trouble falls through
// to computation; the cache is an optimization, never a source of truth.
func (a *Analyzer) cacheGet(ctx context.Context, key string) *Result {
	if a.cache == nil {
		return nil
	}
	val, err := a.cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var result Result
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil
	}
	return &result
}

func (a *Analyzer) cacheSet(ctx context.Context, key string, result *Result) {
	if a.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, data, a.config.CacheTTL).Err(); err != nil {
		a.logger.Debug("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}
