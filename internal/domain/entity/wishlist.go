package entity

type WishlistItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// WishlistState is the persisted wishlist blob.
type WishlistState struct {
	Items []WishlistItem `json:"items"`
}
