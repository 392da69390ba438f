package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"spudhouse/internal/model"
)

// PasswordResetRepository defines reset-code persistence operations.
// WithTransaction hands the callback transactional reset and user
// repositories so a reset can update the password and consume the code
// atomically.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *model.PasswordReset) error
	FindActive(ctx context.Context, email, code string) (*model.PasswordReset, error)
	Delete(ctx context.Context, id uint) error
	DeleteByEmail(ctx context.Context, email string) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, resets PasswordResetRepository, users UserRepository) error) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository builds a GORM-backed repository.
func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *model.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

// FindActive matches email and code against codes that have not expired.
func (r *passwordResetRepository) FindActive(ctx context.Context, email, code string) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	if err := r.db.WithContext(ctx).
		Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *passwordResetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PasswordReset{}, id).Error
}

// DeleteByEmail invalidates all prior codes for an email before a new one is
// issued.
func (r *passwordResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.PasswordReset{}).Error
}

// WithTransaction executes fn within a database transaction.
func (r *passwordResetRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, resets PasswordResetRepository, users UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &passwordResetRepository{db: tx}, &userRepository{db: tx})
	})
}
