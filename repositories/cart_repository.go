package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"restaurant-client/models"
	"restaurant-client/storage"
)

// CartStorageKey is the single namespace key the whole cart snapshot
// lives under.
const CartStorageKey = "restaurant_cart"

type CartRepository struct {
	store storage.KV
}

func NewCartRepository(store storage.KV) *CartRepository {
	return &CartRepository{store: store}
}

// Load reads the persisted snapshot. An absent, empty or corrupt payload
// is reported as storage.ErrNotFound, and a corrupt entry is removed so
// the next start does not trip over it again.
func (r *CartRepository) Load() (models.Cart, error) {
	payload, err := r.store.Get(CartStorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Cart{}, storage.ErrNotFound
		}
		return models.Cart{}, fmt.Errorf("load cart: %w", err)
	}

	if payload == "" {
		r.store.Remove(CartStorageKey)
		return models.Cart{}, storage.ErrNotFound
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(payload), &cart); err != nil {
		r.store.Remove(CartStorageKey)
		return models.Cart{}, storage.ErrNotFound
	}

	if !validCart(cart) {
		r.store.Remove(CartStorageKey)
		return models.Cart{}, storage.ErrNotFound
	}

	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (r *CartRepository) Save(cart models.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.store.Set(CartStorageKey, string(payload)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *CartRepository) Clear() error {
	if err := r.store.Remove(CartStorageKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func validCart(cart models.Cart) bool {
	for _, item := range cart.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return false
		}
	}
	return true
}
