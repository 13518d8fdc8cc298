package entity

import (
	"time"
)

const (
	ProductStatusActive = "active"
	ProductStatusDraft  = "draft"
)

type Product struct {
	ID             string            `json:"id" firestore:"id"`
	Name           string            `json:"name" firestore:"name"`
	Category       string            `json:"category" firestore:"category"`
	CategoryCode   string            `json:"category_code,omitempty" firestore:"category_code,omitempty"`
	Price          float64           `json:"price" firestore:"price"`
	Image          string            `json:"image" firestore:"image"`
	Brand          string            `json:"brand" firestore:"brand"`
	Rating         float64           `json:"rating" firestore:"rating"`
	Description    string            `json:"description,omitempty" firestore:"description,omitempty"`
	Specs          string            `json:"specs,omitempty" firestore:"specs,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" firestore:"specifications,omitempty"`

	SKU       string `json:"sku,omitempty" firestore:"sku,omitempty"`
	Stock     int    `json:"stock" firestore:"stock"`
	Condition string `json:"condition,omitempty" firestore:"condition,omitempty"`
	Status    string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Ref is the slice of a product that carts and wishlists keep.
func (p *Product) Ref() ProductRef {
	return ProductRef{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}

// ProductRef is the payload of an "add to cart" or "add to wishlist" action.
type ProductRef struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// ProductDraft is what the admin "new product" form submits.
type ProductDraft struct {
	Title            string            `json:"title"`
	ShortDescription string            `json:"short_description"`
	CategoryID       string            `json:"category_id"`
	Brand            string            `json:"brand"`
	ImageURL         string            `json:"image_url"`
	Price            float64           `json:"price"`
	Quantity         int               `json:"quantity"`
	SKU              string            `json:"sku"`
	Condition        string            `json:"condition"`
	Status           string            `json:"status"`
	Specs            map[string]string `json:"specs"`
}

type ProductEventType string

const (
	ProductAdded    ProductEventType = "added"
	ProductModified ProductEventType = "modified"
	ProductRemoved  ProductEventType = "removed"
)

// ProductEvent is one change observed on the live catalog.
type ProductEvent struct {
	Type    ProductEventType `json:"type"`
	Product *Product         `json:"product"`
}
