package models

import "github.com/shopspring/decimal"

type CartEntry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartLine is a cart entry joined with its resolved product. Product is nil
// when the catalogue lookup failed or has not finished.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   *Product        `json:"product,omitempty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Items      []CartLine      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Unresolved []string        `json:"unresolved,omitempty"`
}
