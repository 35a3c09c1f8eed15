// Package cart manages the session shopping cart persisted in the storefront
// state store.
package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/services/catalog"
	"github.com/kk-clothing/storefront-api/storage"
)

var ErrProductNotFound = errors.New("product not found")

type Service struct {
	store storage.Store
	mu    sync.Mutex
}

func New(store storage.Store) *Service {
	return &Service{store: store}
}

// Add puts one unit of the product in the cart. Adding a product that is
// already a line item increments its quantity instead of duplicating it.
func (s *Service) Add(productID, size string) (models.CartItem, error) {
	p, ok := catalog.ProductByID(productID)
	if !ok {
		return models.CartItem{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items()
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity++
			s.save(items)
			return items[i], nil
		}
	}

	item := models.CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.EffectivePrice(),
		Quantity: 1,
		Image:    p.Image,
		Size:     size,
	}
	items = append(items, item)
	s.save(items)
	return item, nil
}

// SetQuantity pins a line item's quantity. Zero or less removes the item.
func (s *Service) SetQuantity(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items()
	for i := range items {
		if items[i].ID != productID {
			continue
		}
		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		s.save(items)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}

// Remove drops a line item regardless of quantity.
func (s *Service) Remove(productID string) error {
	return s.SetQuantity(productID, 0)
}

// Clear empties the cart.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(nil)
}

// Items returns the cart line items.
func (s *Service) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items()
}

// Total returns the cart total: sum of price times quantity.
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items() {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Caller holds s.mu.
func (s *Service) items() []models.CartItem {
	var items []models.CartItem
	storage.GetJSON(s.store, storage.KeyCart, &items)
	return items
}

// Caller holds s.mu.
func (s *Service) save(items []models.CartItem) {
	if items == nil {
		items = []models.CartItem{}
	}
	storage.SetJSON(s.store, storage.KeyCart, items)
}
