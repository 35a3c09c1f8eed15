package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting payment
	OrderStatusConfirmed OrderStatus = "confirmed" // Payment went through
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	PaymentStatusPending PaymentStatus = "pending" // Payment not completed yet
	PaymentStatusPaid    PaymentStatus = "paid"    // Payment completed successfully
	PaymentStatusFailed  PaymentStatus = "failed"  // Payment attempt failed
)

type Order struct {
	Ref           string        `json:"ref"`
	Items         []CartItem    `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Currency      string        `json:"currency"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod string        `json:"payment_method"` // e.g. "card", "bank"
	CreatedAt     time.Time     `json:"created_at"`
}
