// internal/analysis/estimate-wear/handler_test.go
package estimatewear

import (
	"context"
	"testing"

	"cleanseam-engine/internal/catalog"
	"cleanseam-engine/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		MinMultiplier: 0.5,
		MaxMultiplier: 2.0,
		Verdicts: []Band{
			{MinScore: 75, Label: "excellent value potential"},
			{MinScore: 50, Label: "fair"},
			{MinScore: 0, Label: "reconsider"},
		},
	}
}

func jeansCategory() catalog.CategoryProfile {
	return catalog.CategoryProfile{ItemType: "jeans", BaseWearCount: 100, ReferencePrice: 50}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:  "top score doubles the baseline",
			input: &Input{Category: jeansCategory(), QualityScore: 100, Price: 50},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 200, output.EstimatedWears) // 100 * 2.0
				assert.Equal(t, 0.25, output.CostPerWear)
				assert.Equal(t, "excellent value potential", output.Verdict)
			},
		},
		{
			name:  "score zero bottoms out at half the baseline",
			input: &Input{Category: jeansCategory(), QualityScore: 0, Price: 50},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 50, output.EstimatedWears) // 100 * 0.5
				assert.Equal(t, 1.0, output.CostPerWear)
				assert.Equal(t, "reconsider", output.Verdict)
			},
		},
		{
			name:  "midrange score interpolates linearly",
			input: &Input{Category: jeansCategory(), QualityScore: 60, Price: 49.99},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 140, output.EstimatedWears) // 100 * (0.5 + 1.5*0.6)
				assert.Equal(t, 0.36, output.CostPerWear)   // 49.99/140 = 0.3570...
				assert.Equal(t, "fair", output.Verdict)
			},
		},
		{
			name: "tiny baseline floors at one wear",
			input: &Input{
				Category:     catalog.CategoryProfile{ItemType: "dress", BaseWearCount: 1, ReferencePrice: 45},
				QualityScore: 0,
				Price:        19.99,
			},
			validateOutput: func(t *testing.T, output *Output) {
				// 1 * 0.5 rounds to 1 anyway, but the floor guarantees it
				assert.Equal(t, 1, output.EstimatedWears)
				assert.Equal(t, 19.99, output.CostPerWear)
			},
		},
		{
			name:  "cost per wear rounds to two decimals",
			input: &Input{Category: jeansCategory(), QualityScore: 80, Price: 100},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 170, output.EstimatedWears) // 100 * 1.7
				assert.Equal(t, 0.59, output.CostPerWear)   // 100/170 = 0.5882...
			},
		},
		{
			name:  "out-of-range score is clamped before mapping",
			input: &Input{Category: jeansCategory(), QualityScore: 150, Price: 50},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 200, output.EstimatedWears)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(createTestConfig(), logger.NewNoOpLogger())

			output, err := handler.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			tt.validateOutput(t, output)
		})
	}
}

// Higher quality score must never produce higher cost-per-wear at fixed
// price and category.
func TestHandler_Execute_MonotonicCostPerWear(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewNoOpLogger())
	ctx := context.Background()

	prevCPW := -1.0
	prevWears := 0
	for score := 0; score <= 100; score++ {
		output, err := handler.Execute(ctx, &Input{
			Category:     jeansCategory(),
			QualityScore: score,
			Price:        79.99,
		})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, output.EstimatedWears, 1)
		assert.GreaterOrEqual(t, output.EstimatedWears, prevWears,
			"wears must not decrease as score rises (score %d)", score)
		if prevCPW >= 0 {
			assert.LessOrEqual(t, output.CostPerWear, prevCPW,
				"cost-per-wear must not increase as score rises (score %d)", score)
		}
		prevCPW = output.CostPerWear
		prevWears = output.EstimatedWears
	}
}

func TestConfig_Verdict(t *testing.T) {
	cfg := createTestConfig()

	tests := []struct {
		score    int
		expected string
	}{
		{100, "excellent value potential"},
		{75, "excellent value potential"},
		{74, "fair"},
		{50, "fair"},
		{49, "reconsider"},
		{0, "reconsider"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cfg.Verdict(tt.score), "score %d", tt.score)
	}
}

func TestConfig_Verdict_UnorderedBands(t *testing.T) {
	cfg := &Config{
		MinMultiplier: 0.5,
		MaxMultiplier: 2.0,
		Verdicts: []Band{
			{MinScore: 0, Label: "reconsider"},
			{MinScore: 75, Label: "excellent value potential"},
			{MinScore: 50, Label: "fair"},
		},
	}

	assert.Equal(t, "excellent value potential", cfg.Verdict(90))
	assert.Equal(t, "fair", cfg.Verdict(50))
	assert.Equal(t, "reconsider", cfg.Verdict(10))
}
