// internal/catalog/file.go
package catalog

import (
	"context"

	"cleanseam-engine/pkg/catalogfile"
)

// FileSource loads the catalog from the JSON documents in configs/catalog.
type FileSource struct {
	BrandsPath     string
	CategoriesPath string
}

func (f FileSource) Load(_ context.Context) ([]BrandProfile, []CategoryProfile, error) {
	brandDoc, err := catalogfile.LoadBrands(f.BrandsPath)
	if err != nil {
		return nil, nil, err
	}

	categoryDoc, err := catalogfile.LoadCategories(f.CategoriesPath)
	if err != nil {
		return nil, nil, err
	}

	brands := make([]BrandProfile, 0, len(brandDoc.Brands))
	for _, e := range brandDoc.Brands {
		brands = append(brands, BrandProfile{
			Name:              e.Name,
			QualityBaseline:   e.QualityBaseline,
			DurabilityRating:  e.DurabilityRating,
			TransparencyScore: e.TransparencyScore,
			PriceTier:         PriceTier(e.PriceTier),
			CategoryOverrides: e.CategoryOverrides,
		})
	}

	categories := make([]CategoryProfile, 0, len(categoryDoc.Categories))
	for _, e := range categoryDoc.Categories {
		categories = append(categories, CategoryProfile{
			ItemType:       e.ItemType,
			BaseWearCount:  e.BaseWearCount,
			ReferencePrice: e.ReferencePrice,
		})
	}

	return brands, categories, nil
}
