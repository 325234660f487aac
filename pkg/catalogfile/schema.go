package catalogfile

// BrandDocument is the on-disk format for curated brand reference data. The
// catalog contents are deliberately external configuration so they can be
// replaced or extended without touching scoring code.
type BrandDocument struct {
	Version     string       `json:"version"`
	LastUpdated string       `json:"last_updated"`
	Brands      []BrandEntry `json:"brands"`
}

type BrandEntry struct {
	Name              string             `json:"name"`
	QualityBaseline   float64            `json:"quality_baseline"`
	DurabilityRating  float64            `json:"durability_rating"`
	TransparencyScore float64            `json:"transparency_score"`
	PriceTier         string             `json:"price_tier"`
	CategoryOverrides map[string]float64 `json:"category_overrides,omitempty"`
}

// CategoryDocument is the on-disk format for category reference data.
type CategoryDocument struct {
	Version     string          `json:"version"`
	LastUpdated string          `json:"last_updated"`
	Categories  []CategoryEntry `json:"categories"`
}

type CategoryEntry struct {
	ItemType       string  `json:"item_type"`
	BaseWearCount  int     `json:"base_wear_count"`
	ReferencePrice float64 `json:"reference_price"`
}

// JSON schemas the documents are validated against before unmarshalling.
// Loaded with gojsonschema Go-map loaders.
var brandSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"version", "brands"},
	"properties": map[string]interface{}{
		"version":      map[string]interface{}{"type": "string"},
		"last_updated": map[string]interface{}{"type": "string"},
		"brands": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"name", "quality_baseline", "durability_rating", "transparency_score", "price_tier"},
				"properties": map[string]interface{}{
					"name":               map[string]interface{}{"type": "string", "minLength": 1},
					"quality_baseline":   map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
					"durability_rating":  map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
					"transparency_score": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
					"price_tier": map[string]interface{}{
						"type": "string",
						"enum": []interface{}{"budget", "mid", "premium", "luxury"},
					},
					"category_overrides": map[string]interface{}{
						"type": "object",
						"additionalProperties": map[string]interface{}{"type": "number"},
					},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

var categorySchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"version", "categories"},
	"properties": map[string]interface{}{
		"version":      map[string]interface{}{"type": "string"},
		"last_updated": map[string]interface{}{"type": "string"},
		"categories": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"item_type", "base_wear_count", "reference_price"},
				"properties": map[string]interface{}{
					"item_type":       map[string]interface{}{"type": "string", "minLength": 1},
					"base_wear_count": map[string]interface{}{"type": "integer", "minimum": 1},
					"reference_price": map[string]interface{}{"type": "number", "minimum": 0, "exclusiveMinimum": true},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}
