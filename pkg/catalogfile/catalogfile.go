// Package catalogfile loads and validates the JSON catalog documents that
// seed the reference-data store.
package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// LoadBrands reads and validates a brand catalog document.
func LoadBrands(path string) (*BrandDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read brand catalog: %w", err)
	}

	if err := validateDocument(data, brandSchema); err != nil {
		return nil, fmt.Errorf("brand catalog %s: %w", path, err)
	}

	var doc BrandDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse brand catalog: %w", err)
	}
	return &doc, nil
}

// LoadCategories reads and validates a category catalog document.
func LoadCategories(path string) (*CategoryDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category catalog: %w", err)
	}

	if err := validateDocument(data, categorySchema); err != nil {
		return nil, fmt.Errorf("category catalog %s: %w", path, err)
	}

	var doc CategoryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse category catalog: %w", err)
	}
	return &doc, nil
}

func validateDocument(data []byte, schema map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("invalid catalog document: %s", strings.Join(msgs, "; "))
	}

	return nil
}
