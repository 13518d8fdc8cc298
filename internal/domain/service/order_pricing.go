package service

import (
	"github.com/shopspring/decimal"

	"laptek/internal/domain/entity"
)

type OrderTotals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// PriceOrder computes checkout totals in decimal and rounds each figure to cents.
// A nil rate means no shipping charge.
func PriceOrder(items []entity.CartItem, rate *entity.ShippingRate, taxRate float64) OrderTotals {
	subtotal := cartTotal(items)

	shipping := decimal.Zero
	if rate != nil && subtotal.LessThan(decimal.NewFromFloat(rate.FreeShippingThreshold)) {
		shipping = decimal.NewFromFloat(rate.Rate)
	}

	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return OrderTotals{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Shipping: shipping.Round(2).InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.Round(2).InexactFloat64(),
	}
}
