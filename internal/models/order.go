package models

import "time"

// OrderStatus is the fulfillment state of an order. Statuses are stable
// keys, localized by the presentation layer.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// statusTransitions is the full set of legal moves:
//
//	pending --> processing --> shipped --> delivered
//	pending --> cancelled
//
// delivered and cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped},
	OrderShipped:    {OrderDelivered},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are accepted from s.
func (s OrderStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0 && s.Valid()
}

// ShippingDetails is the optional delivery address captured at checkout.
type ShippingDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// Order is an immutable snapshot of a cart at checkout time. Items and
// Total are frozen at creation; only Status transitions afterwards.
type Order struct {
	ID              string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID      string           `json:"customer_id" gorm:"index;type:varchar(36)"`
	Items           []CartItem       `json:"items" gorm:"serializer:json"`
	Total           float64          `json:"total"`
	Status          OrderStatus      `json:"status" gorm:"type:varchar(16)"`
	ShippingDetails *ShippingDetails `json:"shipping_details,omitempty" gorm:"serializer:json"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
