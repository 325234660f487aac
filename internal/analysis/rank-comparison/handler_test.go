// internal/analysis/rank-comparison/handler_test.go
package rankcomparison

import (
	"context"
	"testing"

	"cleanseam-engine/internal/analysis"
	"cleanseam-engine/internal/catalog"
	"cleanseam-engine/internal/common/errors"
	"cleanseam-engine/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{MaxBrands: 25}
}

// stubAnalyzer serves canned results keyed by normalized brand; brands
// without an entry fail with the given error.
type stubAnalyzer struct {
	results map[string]analysis.Result
	err     error
	calls   []string
}

func (s *stubAnalyzer) Analyze(_ context.Context, req analysis.Request) (*analysis.Result, error) {
	s.calls = append(s.calls, req.Brand)
	if r, ok := s.results[catalog.NormalizeKey(req.Brand)]; ok {
		out := r
		return &out, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	return nil, errors.NewUnknownCategoryError(req.ItemType)
}

func result(brand string, cpw float64, score int) analysis.Result {
	return analysis.Result{
		Brand:          brand,
		ItemType:       "jeans",
		Price:          79.99,
		QualityScore:   score,
		EstimatedWears: 100,
		CostPerWear:    cpw,
		Verdict:        "fair",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Ranking(t *testing.T) {
	tests := []struct {
		name          string
		results       map[string]analysis.Result
		brands        []string
		expectedOrder []string
	}{
		{
			name: "cost per wear ascending",
			results: map[string]analysis.Result{
				"patagonia": result("Patagonia", 0.40, 99),
				"shein":     result("Shein", 0.95, 17),
				"uniqlo":    result("Uniqlo", 0.52, 69),
			},
			brands:        []string{"Shein", "Patagonia", "Uniqlo"},
			expectedOrder: []string{"Patagonia", "Uniqlo", "Shein"},
		},
		{
			name: "equal cost per wear breaks on quality score descending",
			results: map[string]analysis.Result{
				"gap":    result("Gap", 0.50, 53),
				"uniqlo": result("Uniqlo", 0.50, 69),
			},
			brands:        []string{"Gap", "Uniqlo"},
			expectedOrder: []string{"Uniqlo", "Gap"},
		},
		{
			name: "full tie breaks on folded brand name",
			results: map[string]analysis.Result{
				"zara": result("Zara", 0.50, 40),
				"h&m":  result("H&M", 0.50, 40),
				"gap":  result("Gap", 0.50, 40),
			},
			brands:        []string{"Zara", "H&M", "Gap"},
			expectedOrder: []string{"Gap", "H&M", "Zara"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAnalyzer{results: tt.results}
			handler := NewHandler(createTestConfig(), stub, logger.NewNoOpLogger())

			output, err := handler.Execute(context.Background(), &Input{
				ItemType: "jeans",
				Price:    79.99,
				Brands:   tt.brands,
			})

			require.NoError(t, err)
			require.Len(t, output.Ranked, len(tt.expectedOrder))
			for i, brand := range tt.expectedOrder {
				assert.Equal(t, brand, output.Ranked[i].Brand, "position %d", i)
			}
			assert.Empty(t, output.Failed)
		})
	}
}

func TestHandler_Execute_Deterministic(t *testing.T) {
	results := map[string]analysis.Result{
		"zara":   result("Zara", 0.50, 40),
		"h&m":    result("H&M", 0.50, 40),
		"uniqlo": result("Uniqlo", 0.30, 69),
	}

	var first []string
	for run := 0; run < 5; run++ {
		stub := &stubAnalyzer{results: results}
		handler := NewHandler(createTestConfig(), stub, logger.NewNoOpLogger())

		output, err := handler.Execute(context.Background(), &Input{
			ItemType: "jeans",
			Price:    79.99,
			Brands:   []string{"H&M", "Zara", "Uniqlo"},
		})
		require.NoError(t, err)

		order := make([]string, len(output.Ranked))
		for i, r := range output.Ranked {
			order[i] = r.Brand
		}
		if first == nil {
			first = order
		} else {
			assert.Equal(t, first, order, "run %d produced a different order", run)
		}
	}
}

func TestHandler_Execute_PartialFailure(t *testing.T) {
	stub := &stubAnalyzer{
		results: map[string]analysis.Result{
			"patagonia": result("Patagonia", 0.40, 99),
		},
		err: errors.NewInvalidPriceError("stub"),
	}
	handler := NewHandler(createTestConfig(), stub, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{
		ItemType: "jeans",
		Price:    79.99,
		Brands:   []string{"Patagonia", "Broken"},
	})

	require.NoError(t, err)
	require.Len(t, output.Ranked, 1)
	assert.Equal(t, "Patagonia", output.Ranked[0].Brand)
	require.Len(t, output.Failed, 1)
	assert.Equal(t, "Broken", output.Failed[0].Brand)
	assert.Equal(t, string(errors.ErrCodeInvalidPrice), output.Failed[0].ErrorKind)
}

func TestHandler_Execute_AllFailed(t *testing.T) {
	stub := &stubAnalyzer{err: errors.NewUnknownCategoryError("spacesuit")}
	handler := NewHandler(createTestConfig(), stub, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{
		ItemType: "spacesuit",
		Price:    79.99,
		Brands:   []string{"Zara", "H&M"},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, errors.ErrCodeAllComparisonsFailed, errors.CodeOf(err))
}

func TestHandler_Execute_DedupesBrands(t *testing.T) {
	stub := &stubAnalyzer{
		results: map[string]analysis.Result{
			"patagonia": result("Patagonia", 0.40, 99),
			"uniqlo":    result("Uniqlo", 0.52, 69),
		},
	}
	handler := NewHandler(createTestConfig(), stub, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{
		ItemType: "jeans",
		Price:    79.99,
		Brands:   []string{"Patagonia", "  patagonia ", "PATAGONIA", "Uniqlo", ""},
	})

	require.NoError(t, err)
	assert.Len(t, output.Ranked, 2)
	assert.Len(t, stub.calls, 2, "each brand analyzed at most once")
}

func TestHandler_Execute_TruncatesToMaxBrands(t *testing.T) {
	stub := &stubAnalyzer{
		results: map[string]analysis.Result{
			"a": result("A", 0.10, 50),
			"b": result("B", 0.20, 50),
			"c": result("C", 0.30, 50),
		},
	}
	handler := NewHandler(&Config{MaxBrands: 2}, stub, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{
		ItemType: "jeans",
		Price:    79.99,
		Brands:   []string{"A", "B", "C"},
	})

	require.NoError(t, err)
	assert.Len(t, output.Ranked, 2)
	assert.Len(t, stub.calls, 2)
}
