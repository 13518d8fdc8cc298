package service

import (
	"fmt"
	"strings"
	"time"

	"laptek/internal/domain/entity"
	"laptek/pkg/errors"
)

// ValidateProductDraft returns the first problem with the admin form, or nil.
// Nothing is written when it fails.
func ValidateProductDraft(draft entity.ProductDraft, category *entity.Category) error {
	if strings.TrimSpace(draft.Title) == "" {
		return errors.Validation("Product Title is required")
	}
	if draft.Price <= 0 {
		return errors.Validation("Price is required")
	}
	if strings.TrimSpace(draft.ImageURL) == "" {
		return errors.Validation("Main Image is required")
	}
	if category == nil {
		return errors.Validation("Category is required")
	}

	for _, field := range category.RequiredFields {
		if field == "brand" {
			if strings.TrimSpace(draft.Brand) == "" {
				return errors.Validation("Brand is required for this category")
			}
			continue
		}
		if strings.TrimSpace(draft.Specs[field]) == "" {
			if field == "model_number" {
				return errors.Validation("Model Number is required")
			}
			return errors.Validation(fmt.Sprintf("%s is required for %s", readableField(field), category.Name))
		}
	}

	if draft.Status != "" && draft.Status != entity.ProductStatusActive && draft.Status != entity.ProductStatusDraft {
		return errors.Validation("Status must be one of: active draft")
	}
	return nil
}

// BuildProduct maps a validated draft onto the catalog document.
func BuildProduct(draft entity.ProductDraft, category *entity.Category, now time.Time) *entity.Product {
	specifications := make(map[string]string, len(draft.Specs)+1)
	for k, v := range draft.Specs {
		specifications[k] = v
	}
	if draft.Condition != "" {
		specifications["condition"] = draft.Condition
	}

	status := draft.Status
	if status == "" {
		status = entity.ProductStatusActive
	}

	return &entity.Product{
		Name:           strings.TrimSpace(draft.Title),
		Category:       category.ID,
		CategoryCode:   category.Code,
		Price:          draft.Price,
		Image:          draft.ImageURL,
		Brand:          draft.Brand,
		Description:    draft.ShortDescription,
		Specifications: specifications,
		SKU:            draft.SKU,
		Stock:          max(0, draft.Quantity),
		Condition:      draft.Condition,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// readableField turns "screen_size" into "Screen Size".
func readableField(field string) string {
	words := strings.Fields(strings.ReplaceAll(field, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
