package models

import "github.com/shopspring/decimal"

// Product is the canonical product shape. The commerce API is inconsistent
// about field naming across endpoints; normalization happens in the API
// client, and nothing outside it sees the raw wire shapes.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}
