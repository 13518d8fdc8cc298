package entity

type Category struct {
	ID             string   `json:"id" firestore:"id" yaml:"id"`
	Name           string   `json:"name" firestore:"name" yaml:"name"`
	Code           string   `json:"code" firestore:"code" yaml:"code"`
	Description    string   `json:"description" firestore:"description" yaml:"description"`
	RequiredFields []string `json:"required_fields" firestore:"requiredFields" yaml:"required_fields"`
	Active         bool     `json:"active" firestore:"active" yaml:"active"`
}

// ShippingRate is a flat per-region charge waived at or above FreeShippingThreshold.
type ShippingRate struct {
	Region                string  `json:"region" yaml:"region"`
	Rate                  float64 `json:"rate" yaml:"rate"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold" yaml:"free_shipping_threshold"`
}
