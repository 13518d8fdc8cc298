package entity

// FilterState is the set of narrowing criteria applied to a product listing.
// PriceRange bounds are inclusive. Empty Categories or Brands mean no restriction.
type FilterState struct {
	PriceRange [2]float64 `json:"price_range"`
	Categories []string   `json:"categories"`
	Brands     []string   `json:"brands"`
}

// FilterOptions are the choices offered to the shopper, derived from the full catalog.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
}
