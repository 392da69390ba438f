package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a user's cart. Price is copied from the server-side
// menu at add time; client-supplied prices are never stored.
type CartItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;index:idx_cart_user_item,priority:1"`
	ItemName  string          `json:"item_name" gorm:"size:100;not null;index:idx_cart_user_item,priority:2"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName keeps the legacy table name.
func (CartItem) TableName() string { return "cart" }
