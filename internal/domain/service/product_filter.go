package service

import (
	"math"

	"laptek/internal/domain/entity"
)

// FilterProducts ANDs the price, category and brand predicates over products,
// keeping input order. An empty category or brand selection lets everything through,
// so selecting the first value can only narrow the result.
func FilterProducts(filter entity.FilterState, products []*entity.Product) []*entity.Product {
	categories := toSet(filter.Categories)
	brands := toSet(filter.Brands)

	result := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product.Price < filter.PriceRange[0] || product.Price > filter.PriceRange[1] {
			continue
		}
		if len(categories) > 0 && !categories[product.Category] {
			continue
		}
		if len(brands) > 0 && !brands[product.Brand] {
			continue
		}
		result = append(result, product)
	}
	return result
}

// DeriveFilterOptions scans the unfiltered catalog once. The price floor is always 0
// and the ceiling is the highest price rounded up to the next hundred.
func DeriveFilterOptions(products []*entity.Product) entity.FilterOptions {
	options := entity.FilterOptions{
		Categories: []string{},
		Brands:     []string{},
	}

	seenCategories := make(map[string]bool)
	seenBrands := make(map[string]bool)
	maxPrice := 0.0

	for _, product := range products {
		if !seenCategories[product.Category] {
			seenCategories[product.Category] = true
			options.Categories = append(options.Categories, product.Category)
		}
		if !seenBrands[product.Brand] {
			seenBrands[product.Brand] = true
			options.Brands = append(options.Brands, product.Brand)
		}
		if product.Price > maxPrice {
			maxPrice = product.Price
		}
	}

	options.MinPrice = 0
	options.MaxPrice = math.Ceil(maxPrice/100) * 100
	return options
}

// DefaultFilterState is the listing's initial state: full price span, no facet selected.
func DefaultFilterState(options entity.FilterOptions) entity.FilterState {
	return entity.FilterState{
		PriceRange: [2]float64{options.MinPrice, options.MaxPrice},
		Categories: []string{},
		Brands:     []string{},
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
