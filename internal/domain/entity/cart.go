package entity

const (
	CartNamespace     = "laptek-cart"
	WishlistNamespace = "laptek-wishlist"
)

type CartItem struct {
	ID       string  `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	Image    string  `json:"image" firestore:"image"`
	Quantity int     `json:"quantity" firestore:"quantity"`
}

// CartState is the persisted cart blob.
type CartState struct {
	Items []CartItem `json:"items"`
}

// StorageKey scopes a store namespace to one shopper. An empty owner
// yields the bare namespace.
func StorageKey(namespace, owner string) string {
	if owner == "" {
		return namespace
	}
	return namespace + ":" + owner
}
