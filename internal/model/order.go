package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the status of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is one snapshot line copied from the cart at placement time.
// The snapshot is immutable; later menu or price changes never affect it.
type OrderItem struct {
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderItems is the JSON-serialized snapshot column.
type OrderItems []OrderItem

// Order is a placed order. TotalAmount always equals the sum of
// price*quantity over Items.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Reference   uuid.UUID       `json:"reference" gorm:"type:char(36);uniqueIndex;not null"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Items       OrderItems      `json:"items" gorm:"serializer:json;type:json;not null"`
	Status      OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets the order reference before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Reference == uuid.Nil {
		o.Reference = uuid.New()
	}
	return nil
}
