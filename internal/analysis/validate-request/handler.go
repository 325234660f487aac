// internal/analysis/validate-request/handler.go
package validaterequest

import (
	"context"
	"math"

	"cleanseam-engine/internal/catalog"
	"cleanseam-engine/internal/common/errors"
	"cleanseam-engine/internal/common/logger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const TaskType = "validate-request"

// CategoryResolver is the slice of the catalog store the validator needs.
type CategoryResolver interface {
	LookupCategory(itemType string) (catalog.CategoryProfile, bool)
}

type Handler struct {
	catalog CategoryResolver
	logger  logger.Logger
}

func NewHandler(catalogStore CategoryResolver, log logger.Logger) *Handler {
	return &Handler{
		catalog: catalogStore,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Execute normalizes and validates a raw analysis request. Categories are a
// closed, curated set so an unknown item type is a hard failure; brands are
// an open set, so an unmatched brand passes through for the scoring fallback
// to resolve.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return nil, errors.NewInvalidPriceError("price is not a finite number")
	}
	if err := validation.Validate(input.Price, validation.Required, validation.Min(0.0).Exclusive()); err != nil {
		return nil, errors.NewInvalidPriceError(err.Error())
	}

	itemType := catalog.NormalizeKey(input.ItemType)
	profile, ok := h.catalog.LookupCategory(itemType)
	if !ok {
		h.logger.Debug("unknown category rejected", map[string]interface{}{
			"itemType": input.ItemType,
		})
		return nil, errors.NewUnknownCategoryError(input.ItemType)
	}

	return &Output{
		Brand:    catalog.NormalizeKey(input.Brand),
		ItemType: itemType,
		Price:    input.Price,
		Category: profile,
	}, nil
}
