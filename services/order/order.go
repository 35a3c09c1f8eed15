// Package order turns a cart into a persisted order through the simulated
// payment flow.
package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/services/cart"
	"github.com/kk-clothing/storefront-api/services/currency"
	"github.com/kk-clothing/storefront-api/services/mailbox"
	"github.com/kk-clothing/storefront-api/storage"
)

var ErrEmptyCart = errors.New("cart is empty")

const defaultPaymentDelay = 1500 * time.Millisecond

type Service struct {
	store storage.Store
	cart  *cart.Service
	box   *mailbox.Service

	mu           sync.Mutex
	paymentDelay time.Duration
}

func New(store storage.Store, cartSvc *cart.Service, box *mailbox.Service) *Service {
	return &Service{
		store:        store,
		cart:         cartSvc,
		box:          box,
		paymentDelay: defaultPaymentDelay,
	}
}

// SetPaymentDelay overrides the artificial processing delay.
func (s *Service) SetPaymentDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentDelay = d
}

// Checkout snapshots the cart into an order, runs the simulated payment and
// persists the result. The payment always succeeds after the fixed delay;
// canceling ctx abandons the checkout before anything is written.
func (s *Service) Checkout(ctx context.Context, paymentMethod, currencyCode string) (models.Order, error) {
	if currencyCode == "" {
		currencyCode = "PKR"
	}
	if !currency.Supported(currencyCode) {
		return models.Order{}, fmt.Errorf("%w: %s", currency.ErrUnsupportedCurrency, currencyCode)
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	order := models.Order{
		Ref:           generateOrderRef(),
		Items:         items,
		TotalAmount:   total,
		Currency:      currencyCode,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now(),
	}

	if err := s.processPayment(ctx); err != nil {
		return models.Order{}, err
	}
	order.PaymentStatus = models.PaymentStatusPaid
	order.Status = models.OrderStatusConfirmed

	s.mu.Lock()
	orders := s.orders()
	orders = append(orders, order)
	storage.SetJSON(s.store, storage.KeyOrders, orders)
	s.mu.Unlock()

	s.cart.Clear()
	s.box.AddUserNotification(fmt.Sprintf("Payment successful! Order %s confirmed.", order.Ref), false)

	return order, nil
}

// processPayment stands in for a gateway call: a fixed delay, then success.
func (s *Service) processPayment(ctx context.Context) error {
	s.mu.Lock()
	delay := s.paymentDelay
	s.mu.Unlock()

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Orders returns all persisted orders in placement order.
func (s *Service) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders()
}

// Caller holds s.mu.
func (s *Service) orders() []models.Order {
	var orders []models.Order
	storage.GetJSON(s.store, storage.KeyOrders, &orders)
	return orders
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
