// internal/server/server.go
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"cleanseam-engine/internal/analysis"
	rankcomparison "cleanseam-engine/internal/analysis/rank-comparison"
	"cleanseam-engine/internal/catalog"
	"cleanseam-engine/internal/common/config"
	"cleanseam-engine/internal/common/errors"
	"cleanseam-engine/internal/common/logger"
	"cleanseam-engine/internal/common/observability"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the analysis engine over HTTP. It owns no business logic;
// every endpoint delegates to the analyzer, the comparer, or the catalog.
type Server struct {
	cfg      *config.Config
	store    *catalog.Store
	analyzer *analysis.Analyzer
	comparer *rankcomparison.Handler
	obs      *observability.Observability
	logger   logger.Logger
}

func New(cfg *config.Config, store *catalog.Store, analyzer *analysis.Analyzer,
	comparer *rankcomparison.Handler, obs *observability.Observability, log logger.Logger) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		analyzer: analyzer,
		comparer: comparer,
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/compare", s.handleCompare)
	mux.HandleFunc("/brands/", s.handleBrand)
	mux.HandleFunc("/categories", s.handleCategories)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", s.metricsHandler())
	return mux
}

// metricsHandler serves the default registry plus this server's otel
// registry in one scrape.
func (s *Server) metricsHandler() http.Handler {
	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer}
	if g := s.obs.Gatherer(); g != nil {
		gatherers = append(gatherers, g)
	}
	return promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.NewInvalidPriceError("malformed request body"))
		return
	}

	start := time.Now()
	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		s.obs.RecordAnalysis(r.Context(), "rejected")
		s.writeError(w, err)
		return
	}
	s.obs.RecordAnalysis(r.Context(), "ok")
	s.obs.RecordAnalysisDuration(r.Context(), time.Since(start), "ok")

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input rankcomparison.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, errors.NewInvalidPriceError("malformed request body"))
		return
	}

	output, err := s.comparer.Execute(r.Context(), &input)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, output)
}

// brandResponse is the brand-profile lookup surface: catalog fields plus the
// display price range for the tier.
type brandResponse struct {
	Name              string             `json:"name"`
	QualityBaseline   float64            `json:"quality_baseline"`
	DurabilityRating  float64            `json:"durability_rating"`
	TransparencyScore float64            `json:"transparency_score"`
	PriceTier         catalog.PriceTier  `json:"price_tier"`
	TypicalPriceRange string             `json:"typical_price_range"`
	CategoryOverrides map[string]float64 `json:"category_overrides,omitempty"`
}

func (s *Server) handleBrand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/brands/")
	if name == "" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	profile, ok := s.store.LookupBrand(name)
	if !ok {
		s.writeError(w, errors.NewBrandNotFoundError(name))
		return
	}

	s.writeJSON(w, http.StatusOK, brandResponse{
		Name:              profile.Name,
		QualityBaseline:   profile.QualityBaseline,
		DurabilityRating:  profile.DurabilityRating,
		TransparencyScore: profile.TransparencyScore,
		PriceTier:         profile.PriceTier,
		TypicalPriceRange: profile.PriceTier.TypicalPriceRange(),
		CategoryOverrides: profile.CategoryOverrides,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": s.store.ListCategories(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": s.cfg.App.Version,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{
			"error": err,
		})
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.ErrCodeInvalidPrice, errors.ErrCodeUnknownCategory:
		status = http.StatusBadRequest
	case errors.ErrCodeBrandNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeAllComparisonsFailed:
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error_kind": string(errors.CodeOf(err)),
		"message":    err.Error(),
	})
}
