package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID             string     `json:"id" firestore:"id"`
	UserID         string     `json:"user_id" firestore:"userId"`
	CustomerName   string     `json:"customer_name" firestore:"customerName"`
	CustomerEmail  string     `json:"customer_email" firestore:"customerEmail"`
	Items          []CartItem `json:"items" firestore:"items"`
	Subtotal       float64    `json:"subtotal" firestore:"subtotal"`
	Shipping       float64    `json:"shipping" firestore:"shipping"`
	Tax            float64    `json:"tax" firestore:"tax"`
	Total          float64    `json:"total" firestore:"total"`
	Currency       string     `json:"currency" firestore:"currency"`
	ShippingRegion string     `json:"shipping_region" firestore:"shippingRegion"`
	Status         string     `json:"status" firestore:"status"`
	CreatedAt      time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time  `json:"updated_at" firestore:"updatedAt"`
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
