// internal/catalog/store.go
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"cleanseam-engine/internal/common/errors"
	"cleanseam-engine/internal/common/logger"
	"cleanseam-engine/internal/common/metrics"
)

// Source produces the full catalog contents. Implementations load from JSON
// catalog documents or from a curated database; the store is agnostic.
type Source interface {
	Load(ctx context.Context) ([]BrandProfile, []CategoryProfile, error)
}

// snapshot is one immutable, fully-validated catalog generation. Readers
// always see a complete generation, never a half-updated one.
type snapshot struct {
	brands     map[string]BrandProfile
	categories map[string]CategoryProfile
	ordered    []CategoryProfile
}

// Store is the process-wide reference data table. Reads take no locks; a
// reload builds a fresh snapshot and swaps it in atomically.
type Store struct {
	source  Source
	logger  logger.Logger
	current atomic.Pointer[snapshot]
}

// NewStore loads the catalog once and fails fast on malformed reference data.
func NewStore(ctx context.Context, source Source, log logger.Logger) (*Store, error) {
	s := &Store{
		source: source,
		logger: log.WithFields(map[string]interface{}{"component": "catalog"}),
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the whole table from the source and swaps it in. On any
// error the previous snapshot stays in place untouched.
func (s *Store) Reload(ctx context.Context) error {
	brands, categories, err := s.source.Load(ctx)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		return errors.NewCatalogLoadError(err.Error())
	}

	snap, err := buildSnapshot(brands, categories)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		return err
	}

	s.current.Store(snap)
	metrics.CatalogReloads.WithLabelValues("ok").Inc()
	s.logger.Info("catalog loaded", map[string]interface{}{
		"brands":     len(snap.brands),
		"categories": len(snap.categories),
	})
	return nil
}

// LookupBrand resolves a brand profile after trim/case-fold normalization.
func (s *Store) LookupBrand(name string) (BrandProfile, bool) {
	snap := s.current.Load()
	profile, ok := snap.brands[NormalizeKey(name)]
	return profile, ok
}

// LookupCategory resolves a category profile after normalization.
func (s *Store) LookupCategory(itemType string) (CategoryProfile, bool) {
	snap := s.current.Load()
	profile, ok := snap.categories[NormalizeKey(itemType)]
	return profile, ok
}

// ListCategories returns all category profiles ordered by item type.
func (s *Store) ListCategories() []CategoryProfile {
	snap := s.current.Load()
	out := make([]CategoryProfile, len(snap.ordered))
	copy(out, snap.ordered)
	return out
}

func buildSnapshot(brands []BrandProfile, categories []CategoryProfile) (*snapshot, error) {
	snap := &snapshot{
		brands:     make(map[string]BrandProfile, len(brands)),
		categories: make(map[string]CategoryProfile, len(categories)),
	}

	for _, c := range categories {
		if c.BaseWearCount <= 0 {
			return nil, errors.NewCatalogLoadError(
				fmt.Sprintf("category %q has non-positive base_wear_count %d", c.ItemType, c.BaseWearCount))
		}
		if c.ReferencePrice <= 0 {
			return nil, errors.NewCatalogLoadError(
				fmt.Sprintf("category %q has non-positive reference_price %v", c.ItemType, c.ReferencePrice))
		}
		key := NormalizeKey(c.ItemType)
		if key == "" {
			return nil, errors.NewCatalogLoadError("category with empty item_type")
		}
		if _, dup := snap.categories[key]; dup {
			return nil, errors.NewCatalogLoadError(fmt.Sprintf("duplicate category %q", key))
		}
		snap.categories[key] = c
		snap.ordered = append(snap.ordered, c)
	}

	sort.Slice(snap.ordered, func(i, j int) bool {
		return NormalizeKey(snap.ordered[i].ItemType) < NormalizeKey(snap.ordered[j].ItemType)
	})

	for _, b := range brands {
		if !b.PriceTier.Valid() {
			return nil, errors.NewCatalogLoadError(
				fmt.Sprintf("brand %q references unknown price_tier %q", b.Name, b.PriceTier))
		}
		key := NormalizeKey(b.Name)
		if key == "" {
			return nil, errors.NewCatalogLoadError("brand with empty name")
		}
		if _, dup := snap.brands[key]; dup {
			return nil, errors.NewCatalogLoadError(fmt.Sprintf("duplicate brand %q", key))
		}
		// Normalize override keys once at load so per-request lookups stay
		// a single map access.
		if len(b.CategoryOverrides) > 0 {
			normalized := make(map[string]float64, len(b.CategoryOverrides))
			for cat, adj := range b.CategoryOverrides {
				normalized[NormalizeKey(cat)] = adj
			}
			b.CategoryOverrides = normalized
		}
		snap.brands[key] = b
	}

	return snap, nil
}
