package model

import "time"

// Review is a user rating for a menu item. Username is denormalized for
// display so listing reviews does not join users.
type Review struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Username    string    `json:"username" gorm:"size:50;not null"`
	ProductName string    `json:"product_name" gorm:"size:100;not null;index"`
	Rating      int       `json:"rating" gorm:"not null"`
	Comment     string    `json:"comment" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}
