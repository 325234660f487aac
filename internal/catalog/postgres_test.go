// internal/catalog/postgres_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newMockSource(t *testing.T) (PostgresSource, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return PostgresSource{DB: db}, mock
}

func brandRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"name", "quality_baseline", "durability_rating", "transparency_score", "price_tier", "category_overrides",
	})
}

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"item_type", "base_wear_count", "reference_price"})
}

// ==========================
// Core Functionality Tests
// ==========================

func TestPostgresSource_Load_Success(t *testing.T) {
	source, mock := newMockSource(t)

	mock.ExpectQuery("SELECT name, quality_baseline").WillReturnRows(
		brandRows().
			AddRow("Patagonia", 80.0, 90.0, 95.0, "premium", []byte(`{"jacket": 8}`)).
			AddRow("Shein", 15.0, 10.0, 5.0, "budget", nil),
	)
	mock.ExpectQuery("SELECT item_type, base_wear_count").WillReturnRows(
		categoryRows().
			AddRow("jeans", 100, 50.0).
			AddRow("t-shirt", 60, 20.0),
	)

	brands, categories, err := source.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "Patagonia", brands[0].Name)
	assert.Equal(t, TierPremium, brands[0].PriceTier)
	assert.Equal(t, 8.0, brands[0].CategoryOverrides["jacket"])
	assert.Nil(t, brands[1].CategoryOverrides)

	require.Len(t, categories, 2)
	assert.Equal(t, "jeans", categories[0].ItemType)
	assert.Equal(t, 100, categories[0].BaseWearCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Load_BrandQueryFails(t *testing.T) {
	source, mock := newMockSource(t)

	mock.ExpectQuery("SELECT name, quality_baseline").WillReturnError(assert.AnError)

	brands, categories, err := source.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, brands)
	assert.Nil(t, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Load_CategoryQueryFails(t *testing.T) {
	source, mock := newMockSource(t)

	mock.ExpectQuery("SELECT name, quality_baseline").WillReturnRows(brandRows())
	mock.ExpectQuery("SELECT item_type, base_wear_count").WillReturnError(assert.AnError)

	_, _, err := source.Load(context.Background())

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Load_MalformedOverridesTolerated(t *testing.T) {
	source, mock := newMockSource(t)

	mock.ExpectQuery("SELECT name, quality_baseline").WillReturnRows(
		brandRows().AddRow("Gap", 45.0, 45.0, 40.0, "mid", []byte(`not json`)),
	)
	mock.ExpectQuery("SELECT item_type, base_wear_count").WillReturnRows(
		categoryRows().AddRow("jeans", 100, 50.0),
	)

	brands, _, err := source.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Nil(t, brands[0].CategoryOverrides, "bad overrides degrade to none, not a load failure")
	assert.NoError(t, mock.ExpectationsWereMet())
}
