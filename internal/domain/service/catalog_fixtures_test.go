package service

import (
	"laptek/internal/domain/entity"
)

// catalogFixture has seven products, three of them at or under 1000.
func catalogFixture() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: `MacBook Pro 16" M3 Max`, Category: "laptops", Brand: "Apple", Price: 3499},
		{ID: "2", Name: "Dell XPS 13 Plus", Category: "laptops", Brand: "Dell", Price: 999},
		{ID: "3", Name: "iPhone 15 Pro Max", Category: "phones", Brand: "Apple", Price: 1199},
		{ID: "4", Name: "Sony WH-1000XM5", Category: "audio", Brand: "Sony", Price: 348},
		{ID: "5", Name: "Gaming Desktop RTX 4090", Category: "desktops", Brand: "Custom", Price: 4500},
		{ID: "6", Name: "Samsung Galaxy S24 Ultra", Category: "phones", Brand: "Samsung", Price: 1299},
		{ID: "7", Name: `iPad Pro 12.9"`, Category: "tablets", Brand: "Apple", Price: 1000},
	}
}

func productIDs(products []*entity.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
