// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresSource loads the catalog from a curated brand database. It exists
// so a scraped or editorially maintained table can replace the static JSON
// documents without touching scoring or estimation logic.
type PostgresSource struct {
	DB *sql.DB
}

func (p PostgresSource) Load(ctx context.Context) ([]BrandProfile, []CategoryProfile, error) {
	brands, err := p.loadBrands(ctx)
	if err != nil {
		return nil, nil, err
	}

	categories, err := p.loadCategories(ctx)
	if err != nil {
		return nil, nil, err
	}

	return brands, categories, nil
}

func (p PostgresSource) loadBrands(ctx context.Context) ([]BrandProfile, error) {
	rows, err := p.DB.QueryContext(ctx, `
		SELECT name, quality_baseline, durability_rating, transparency_score, price_tier, category_overrides
		FROM brand_profiles`)
	if err != nil {
		return nil, fmt.Errorf("query brand_profiles: %w", err)
	}
	defer rows.Close()

	var brands []BrandProfile
	for rows.Next() {
		var b BrandProfile
		var overrides []byte
		if err := rows.Scan(&b.Name, &b.QualityBaseline, &b.DurabilityRating,
			&b.TransparencyScore, &b.PriceTier, &overrides); err != nil {
			return nil, fmt.Errorf("scan brand_profiles: %w", err)
		}
		if len(overrides) > 0 {
			if err := json.Unmarshal(overrides, &b.CategoryOverrides); err != nil {
				b.CategoryOverrides = nil
			}
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (p PostgresSource) loadCategories(ctx context.Context) ([]CategoryProfile, error) {
	rows, err := p.DB.QueryContext(ctx, `
		SELECT item_type, base_wear_count, reference_price
		FROM category_profiles`)
	if err != nil {
		return nil, fmt.Errorf("query category_profiles: %w", err)
	}
	defer rows.Close()

	var categories []CategoryProfile
	for rows.Next() {
		var c CategoryProfile
		if err := rows.Scan(&c.ItemType, &c.BaseWearCount, &c.ReferencePrice); err != nil {
			return nil, fmt.Errorf("scan category_profiles: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
