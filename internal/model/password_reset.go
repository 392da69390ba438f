package model

import "time"

// PasswordReset is a short-lived 6-digit reset code. At most one active code
// exists per email; a code is deleted once used.
type PasswordReset struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Code      string    `json:"-" gorm:"size:6;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the legacy table name.
func (PasswordReset) TableName() string { return "password_resets" }

// Expired reports whether the code is past its expiry.
func (p *PasswordReset) Expired() bool {
	return time.Now().After(p.ExpiresAt)
}
