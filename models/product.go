package models

import "github.com/shopspring/decimal"

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Status      string          `json:"status,omitempty"`
}
