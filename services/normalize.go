package services

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"storefront/models"
)

// The commerce API drifted: some endpoints return `_id`, others `id`; some
// `product_name`, others `name`; ids are sometimes numbers. The wire types
// below accept every observed shape and normalize into the canonical models
// before anything else sees the data.

// flexID decodes a JSON string or number into a string id.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type wireProduct struct {
	ID          flexID          `json:"id"`
	LegacyID    flexID          `json:"_id"`
	Name        string          `json:"name"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

func (w wireProduct) normalize() models.Product {
	id := string(w.ID)
	if id == "" {
		id = string(w.LegacyID)
	}
	name := w.Name
	if name == "" {
		name = w.ProductName
	}
	return models.Product{
		ID:          id,
		Name:        name,
		Description: w.Description,
		Price:       w.Price,
		Image:       w.Image,
	}
}

type wireOrderItem struct {
	ProductID   flexID          `json:"product_id"`
	Name        string          `json:"name"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type wireOrder struct {
	ID          flexID          `json:"id"`
	LegacyID    flexID          `json:"_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []wireOrderItem `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (w wireOrder) normalize() models.Order {
	id := string(w.ID)
	if id == "" {
		id = string(w.LegacyID)
	}
	order := models.Order{
		ID:          id,
		Status:      w.Status,
		TotalAmount: w.TotalAmount,
		CreatedAt:   w.CreatedAt,
	}
	for _, item := range w.Items {
		name := item.Name
		if name == "" {
			name = item.ProductName
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   string(item.ProductID),
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return order
}

type wireUser struct {
	ID       flexID `json:"id"`
	LegacyID flexID `json:"_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func (w wireUser) normalize() models.User {
	id := string(w.ID)
	if id == "" {
		id = string(w.LegacyID)
	}
	return models.User{ID: id, Email: w.Email, FullName: w.FullName}
}

type wireAddress struct {
	ID         flexID `json:"id"`
	LegacyID   flexID `json:"_id"`
	Label      string `json:"label"`
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	IsPrimary  bool   `json:"is_primary"`
}

func (w wireAddress) normalize() models.Address {
	id := string(w.ID)
	if id == "" {
		id = string(w.LegacyID)
	}
	return models.Address{
		ID:         id,
		Label:      w.Label,
		Recipient:  w.Recipient,
		Phone:      w.Phone,
		Street:     w.Street,
		City:       w.City,
		PostalCode: w.PostalCode,
		IsPrimary:  w.IsPrimary,
	}
}
