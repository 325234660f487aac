// Package errors provides the standardized error taxonomy for the analysis engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Request validation errors, surfaced to the caller.
	ErrCodeInvalidPrice    ErrorCode = "INVALID_PRICE"
	ErrCodeUnknownCategory ErrorCode = "UNKNOWN_CATEGORY"

	// Lookup errors. An unknown brand inside the scoring pipeline is NOT
	// an error (the fallback heuristic handles it); this code exists only
	// for the explicit brand-profile lookup surface.
	ErrCodeBrandNotFound ErrorCode = "BRAND_NOT_FOUND"

	// Batch errors.
	ErrCodeAllComparisonsFailed ErrorCode = "ALL_COMPARISONS_FAILED"

	// Startup errors. Fatal: the engine refuses to start on malformed
	// reference data, and the catalog is immutable afterwards.
	ErrCodeCatalogLoadFailed ErrorCode = "CATALOG_LOAD_FAILED"
)

// StandardError represents a structured application error. Every failure in
// the engine is a pure function of its input, so there is no retryable flag.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewInvalidPriceError creates a validation error for a missing or
// non-positive price.
func NewInvalidPriceError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPrice,
		Message:   "Price must be a positive number",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownCategoryError creates a validation error for an item type that
// is not in the category catalog.
func NewUnknownCategoryError(itemType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownCategory,
		Message:   "Item type not found in category catalog",
		Details:   fmt.Sprintf("itemType: %s", itemType),
		Timestamp: time.Now().UTC(),
	}
}

// NewBrandNotFoundError creates a lookup error for the brand-profile surface.
func NewBrandNotFoundError(brand string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrandNotFound,
		Message:   "Brand not found in catalog",
		Details:   fmt.Sprintf("brand: %s", brand),
		Timestamp: time.Now().UTC(),
	}
}

// NewAllComparisonsFailedError creates a batch-level error raised when every
// entry of a comparison failed validation.
func NewAllComparisonsFailedError(total int) *StandardError {
	return &StandardError{
		Code:      ErrCodeAllComparisonsFailed,
		Message:   "Every entry in the comparison batch failed",
		Details:   fmt.Sprintf("entries: %d", total),
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadError creates a fatal startup error for malformed reference data.
func NewCatalogLoadError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Catalog reference data is malformed",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf extracts the error code from any error, or empty when the error is
// not a StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsValidation reports whether the error rejects the request itself rather
// than signalling a lookup or batch failure.
func IsValidation(err error) bool {
	switch CodeOf(err) {
	case ErrCodeInvalidPrice, ErrCodeUnknownCategory:
		return true
	}
	return false
}
