package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"laptek/internal/domain/entity"
)

func TestFilterProducts_PriceRangeIsInclusive(t *testing.T) {
	filter := entity.FilterState{PriceRange: [2]float64{0, 1000}}

	got := FilterProducts(filter, catalogFixture())

	assert.Equal(t, []string{"2", "4", "7"}, productIDs(got))
}

func TestFilterProducts_FacetsCombineWithAnd(t *testing.T) {
	filter := entity.FilterState{
		PriceRange: [2]float64{0, 5000},
		Categories: []string{"laptops", "phones"},
		Brands:     []string{"Apple"},
	}

	got := FilterProducts(filter, catalogFixture())

	assert.Equal(t, []string{"1", "3"}, productIDs(got))
}

func TestFilterProducts_EmptySelectionMeansAll(t *testing.T) {
	products := catalogFixture()
	options := DeriveFilterOptions(products)

	got := FilterProducts(DefaultFilterState(options), products)

	assert.Equal(t, productIDs(products), productIDs(got))
}

func TestFilterProducts_FirstCategoryCanOnlyNarrow(t *testing.T) {
	products := catalogFixture()
	base := DefaultFilterState(DeriveFilterOptions(products))

	none := FilterProducts(base, products)
	base.Categories = []string{"audio"}
	one := FilterProducts(base, products)
	base.Categories = []string{"audio", "tablets"}
	two := FilterProducts(base, products)

	assert.Len(t, none, 7)
	assert.Len(t, one, 1)
	assert.Len(t, two, 2)
}

func TestFilterProducts_WideningPriceRangeOnlyGrows(t *testing.T) {
	products := catalogFixture()
	ranges := [][2]float64{{1000, 1000}, {999, 1199}, {348, 1299}, {0, 3499}, {0, 4500}}
	wantSizes := []int{1, 3, 5, 6, 7}

	var previous []string
	for i, priceRange := range ranges {
		got := productIDs(FilterProducts(entity.FilterState{PriceRange: priceRange}, products))

		assert.Len(t, got, wantSizes[i], "range %v", priceRange)
		assert.Subset(t, got, previous, "range %v dropped a product", priceRange)
		previous = got
	}
}

func TestFilterProducts_AddingBrandOnlyGrows(t *testing.T) {
	products := catalogFixture()
	filter := entity.FilterState{
		PriceRange: [2]float64{0, 5000},
		Categories: []string{"laptops", "phones"},
		Brands:     []string{"Apple"},
	}

	apple := productIDs(FilterProducts(filter, products))
	filter.Brands = []string{"Apple", "Samsung"}
	appleSamsung := productIDs(FilterProducts(filter, products))
	filter.Brands = []string{"Apple", "Samsung", "Dell"}
	withDell := productIDs(FilterProducts(filter, products))

	assert.Equal(t, []string{"1", "3"}, apple)
	assert.Equal(t, []string{"1", "3", "6"}, appleSamsung)
	assert.Equal(t, []string{"1", "2", "3", "6"}, withDell)
	assert.Subset(t, appleSamsung, apple)
	assert.Subset(t, withDell, appleSamsung)
}

func TestFilterProducts_UnknownBrandYieldsEmpty(t *testing.T) {
	filter := entity.FilterState{PriceRange: [2]float64{0, 5000}, Brands: []string{"Nokia"}}

	got := FilterProducts(filter, catalogFixture())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeriveFilterOptions(t *testing.T) {
	got := DeriveFilterOptions(catalogFixture())

	want := entity.FilterOptions{
		Categories: []string{"laptops", "phones", "audio", "desktops", "tablets"},
		Brands:     []string{"Apple", "Dell", "Sony", "Custom", "Samsung"},
		MinPrice:   0,
		MaxPrice:   4500,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveFilterOptions_RoundsCeilingUp(t *testing.T) {
	products := []*entity.Product{{Price: 348}, {Price: 3499.01}}

	assert.Equal(t, 3500.0, DeriveFilterOptions(products).MaxPrice)
	assert.Equal(t, 0.0, DeriveFilterOptions(nil).MaxPrice)
}
