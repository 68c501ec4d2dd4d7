package models

import "gorm.io/gorm"

// Order statuses. Checkout is mocked: orders are created pending and never
// reach a payment provider.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order is a placed (mock) order.
type Order struct {
	gorm.Model
	UserID      uint        `gorm:"index"              json:"user_id"`
	TotalAmount float64     `gorm:"not null;default:0" json:"total_amount"`
	Status      string      `gorm:"size:50;default:pending" json:"status"`
	Items       []OrderItem `json:"items,omitempty"`
}

// OrderItem records one cart line at checkout time, at its snapshot price.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
