package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           string          `json:"id"`
	Reference    string          `json:"reference,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	Items        []OrderItem     `json:"items,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	DeliveryType string          `json:"delivery_type,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at,omitempty"`
}

type OrderItem struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Customizations Customizations  `json:"customizations,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

type CreateOrderRequest struct {
	Reference    string          `json:"reference"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	DeliveryType string          `json:"delivery_type"`
	Notes        string          `json:"notes,omitempty"`
}

type RestaurantStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
