package entity

import (
	"time"
)

const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
	InvoiceStatusOverdue = "overdue"

	InvoiceTypeSale     = "sale"
	InvoiceTypePurchase = "purchase"
)

type Invoice struct {
	ID       string    `json:"id" firestore:"id"`
	OrderID  string    `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	Customer string    `json:"customer" firestore:"customer"`
	Amount   float64   `json:"amount" firestore:"amount"`
	Currency string    `json:"currency" firestore:"currency"`
	Status   string    `json:"status" firestore:"status"`
	Type     string    `json:"type" firestore:"type"`
	IssuedAt time.Time `json:"issued_at" firestore:"issuedAt"`
	DueAt    time.Time `json:"due_at" firestore:"dueAt"`
}

// EffectiveStatus reports overdue for pending invoices past their due date.
func (i *Invoice) EffectiveStatus(now time.Time) string {
	if i.Status == InvoiceStatusPending && !i.DueAt.IsZero() && now.After(i.DueAt) {
		return InvoiceStatusOverdue
	}
	return i.Status
}
