package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"spudhouse/internal/model"
)

// OrderRepository defines order persistence operations. WithTransaction
// hands the callback transactional order and cart repositories so placement
// can read, snapshot, and clear the cart atomically.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	LastByUser(ctx context.Context, userID uint) (*model.Order, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, orders OrderRepository, carts CartRepository) error) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// LastByUser returns the most recent order, or nil when the user has none.
func (r *orderRepository) LastByUser(ctx context.Context, userID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// WithTransaction executes fn within a database transaction.
func (r *orderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, orders OrderRepository, carts CartRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &orderRepository{db: tx}, &cartRepository{db: tx})
	})
}
