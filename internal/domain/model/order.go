package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusOpen     OrderStatus = "open"
	OrderStatusFinished OrderStatus = "finished"
)

// ValidOrderStatus reports whether s is an allowed status value.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusOpen, OrderStatusFinished:
		return true
	}
	return false
}

// Item is the good being sold. Owned exclusively by one order.
type Item struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	LastChange  time.Time
}

// Order links an item, a shipping address and the owning advertiser.
type Order struct {
	ID              int64
	AdvertiserID    int64
	Item            Item
	ShippingAddress Address
	Status          OrderStatus
	CreatedAt       time.Time
	LastChange      time.Time
}
