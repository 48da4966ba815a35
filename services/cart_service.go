package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"restaurant-client/models"
	"restaurant-client/repositories"
	"restaurant-client/storage"
	"restaurant-client/utils"
)

var (
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
	ErrInvalidCustomizations = errors.New("customizations are not serializable")
)

// CartService owns the authoritative in-memory cart snapshot. Mutations
// build a new snapshot, recompute the derived totals from the new item
// list and commit it wholesale before persisting, so readers never see
// aggregates that disagree with the items.
//
// A failed save is logged and the in-memory snapshot stays authoritative
// for the rest of the session.
type CartService struct {
	mu   sync.RWMutex
	cart models.Cart
	repo *repositories.CartRepository
}

// NewCartService hydrates the cart from the repository, falling back to
// an empty cart when nothing usable is stored.
func NewCartService(repo *repositories.CartRepository) *CartService {
	s := &CartService{
		cart: models.EmptyCart(),
		repo: repo,
	}

	loaded, err := repo.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Cart hydration failed, starting empty: %v", err)
		}
		return s
	}

	// Stored aggregates are untrusted; derive them from the item list.
	total, count := calculateTotals(loaded.Items)
	if !loaded.Total.Equal(total) || loaded.ItemCount != count {
		log.Printf("Cart aggregates out of sync in stored snapshot (total %s vs %s, count %d vs %d), recomputed",
			loaded.Total, total, loaded.ItemCount, count)
	}
	loaded.Total = total
	loaded.ItemCount = count

	s.cart = loaded
	return s
}

// AddItem merges the quantity into an existing line with the same product
// and customizations, or appends a new line snapshotting the product's
// name, price and image at add-time.
func (s *CartService) AddItem(product models.Product, quantity int, customizations models.Customizations) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	key, err := utils.ItemKey(product.ID, customizations)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCustomizations, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)

	merged := false
	for i, item := range items {
		existingKey, err := utils.ItemKey(item.ProductID, item.Customizations)
		if err != nil {
			continue
		}
		if existingKey == key {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		items = append(items, models.CartItem{
			ProductID:      product.ID,
			Name:           product.Name,
			Price:          product.Price,
			Image:          product.Image,
			Quantity:       quantity,
			Customizations: customizations,
			Notes:          "",
		})
	}

	s.commit(items)
	return nil
}

// RemoveItem deletes the matching line. A miss is a no-op.
func (s *CartService) RemoveItem(productID string, customizations models.Customizations) error {
	key, err := utils.ItemKey(productID, customizations)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCustomizations, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(key)
	return nil
}

// SetQuantity replaces the matching line's quantity. Zero or negative
// removes the line; a miss is a no-op.
func (s *CartService) SetQuantity(productID string, quantity int, customizations models.Customizations) error {
	key, err := utils.ItemKey(productID, customizations)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCustomizations, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(key)
		return nil
	}

	items := make([]models.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)

	changed := false
	for i, item := range items {
		if s.keyOf(item) == key {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	s.commit(items)
	return nil
}

// SetNotes replaces the free-text notes on the matching line. Notes do
// not affect line identity or totals, but the snapshot is still persisted
// so they survive a restart.
func (s *CartService) SetNotes(productID, notes string, customizations models.Customizations) error {
	key, err := utils.ItemKey(productID, customizations)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCustomizations, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)

	changed := false
	for i, item := range items {
		if s.keyOf(item) == key {
			items[i].Notes = notes
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	s.commit(items)
	return nil
}

// Clear resets to an empty cart and purges the persisted entry.
func (s *CartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = models.EmptyCart()
	if err := s.repo.Clear(); err != nil {
		log.Printf("Failed to clear persisted cart: %v", err)
	}
	return nil
}

// QuantityOf returns the matching line's quantity, or 0.
func (s *CartService) QuantityOf(productID string, customizations models.Customizations) int {
	key, err := utils.ItemKey(productID, customizations)
	if err != nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.cart.Items {
		if s.keyOf(item) == key {
			return item.Quantity
		}
	}
	return 0
}

func (s *CartService) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cart.Items) == 0
}

// Items returns the current lines. Every mutator keeps line identity
// unique, so no deduplication happens here.
func (s *CartService) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

func (s *CartService) Snapshot() models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.cart
	snapshot.Items = make([]models.CartItem, len(s.cart.Items))
	copy(snapshot.Items, s.cart.Items)
	return snapshot
}

func (s *CartService) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Total
}

func (s *CartService) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.ItemCount
}

func (s *CartService) removeLocked(key string) {
	items := make([]models.CartItem, 0, len(s.cart.Items))
	for _, item := range s.cart.Items {
		if s.keyOf(item) != key {
			items = append(items, item)
		}
	}
	if len(items) == len(s.cart.Items) {
		return
	}
	s.commit(items)
}

// commit recomputes the aggregates from the new item list, replaces the
// snapshot and persists it. Callers hold the write lock.
func (s *CartService) commit(items []models.CartItem) {
	total, count := calculateTotals(items)
	s.cart = models.Cart{
		Items:     items,
		Total:     total,
		ItemCount: count,
	}

	if err := s.repo.Save(s.cart); err != nil {
		log.Printf("Failed to persist cart: %v", err)
	}
}

// keyOf is used for matching against lines already in the cart; those
// were serializable when they were added, so an error here only happens
// for a snapshot hand-edited on disk, and such a line simply never
// matches.
func (s *CartService) keyOf(item models.CartItem) string {
	key, err := utils.ItemKey(item.ProductID, item.Customizations)
	if err != nil {
		return "\x00unmatchable"
	}
	return key
}

func calculateTotals(items []models.CartItem) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	return total, count
}
