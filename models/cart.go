package models

import "github.com/shopspring/decimal"

// Customizations maps an option name to the chosen value, e.g.
// {"size": "L", "extras": ["cheese", "bacon"]}. Values must be
// JSON-serializable.
type Customizations map[string]any

// CartItem is a denormalized snapshot of a product taken at add-time.
// Customizations are fixed for the lifetime of the line; changing them
// creates a distinct line instead.
type CartItem struct {
	ProductID      string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Image          string          `json:"image,omitempty"`
	Quantity       int             `json:"quantity"`
	Customizations Customizations  `json:"customizations"`
	Notes          string          `json:"notes"`
}

// Cart is the persisted snapshot. Total and ItemCount are derived from
// Items and never set independently.
type Cart struct {
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func EmptyCart() Cart {
	return Cart{
		Items:     []CartItem{},
		Total:     decimal.Zero,
		ItemCount: 0,
	}
}
