// internal/catalog/file_test.go
package catalog

import (
	"context"
	"testing"

	"cleanseam-engine/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Loads the shipped catalog documents end to end through the store.
func TestFileSource_ShippedCatalog(t *testing.T) {
	source := FileSource{
		BrandsPath:     "../../configs/catalog/brands.json",
		CategoriesPath: "../../configs/catalog/categories.json",
	}

	store, err := NewStore(context.Background(), source, logger.NewNoOpLogger())
	require.NoError(t, err)

	profile, ok := store.LookupBrand("patagonia")
	require.True(t, ok)
	assert.Equal(t, "Patagonia", profile.Name)
	assert.Equal(t, 80.0, profile.QualityBaseline)
	assert.True(t, profile.PriceTier.Valid())

	jeans, ok := store.LookupCategory("jeans")
	require.True(t, ok)
	assert.Equal(t, 100, jeans.BaseWearCount)
	assert.Equal(t, 50.0, jeans.ReferencePrice)

	assert.NotEmpty(t, store.ListCategories())
}

func TestFileSource_MissingFile(t *testing.T) {
	source := FileSource{
		BrandsPath:     "does/not/exist.json",
		CategoriesPath: "also/missing.json",
	}

	_, _, err := source.Load(context.Background())
	require.Error(t, err)
}
