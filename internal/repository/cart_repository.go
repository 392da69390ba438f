package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spudhouse/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	FindByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	FindByUserForUpdate(ctx context.Context, userID uint) ([]model.CartItem, error)
	FindByUserAndItem(ctx context.Context, userID uint, itemName string) (*model.CartItem, error)
	FindByUserAndItemID(ctx context.Context, userID, id uint) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	Delete(ctx context.Context, id, userID uint) error
	ClearUser(ctx context.Context, userID uint) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CartRepository) error) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository builds a GORM-backed repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) FindByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByUserForUpdate locks the user's cart rows with SELECT ... FOR UPDATE;
// callers must hold a transaction (order placement reads, snapshots, then
// clears them).
func (r *cartRepository) FindByUserForUpdate(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) FindByUserAndItem(ctx context.Context, userID uint, itemName string) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_name = ?", userID, itemName).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) FindByUserAndItemID(ctx context.Context, userID, id uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// Delete removes a row only when it belongs to the user.
func (r *cartRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepository) ClearUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}

// WithTransaction executes fn within a database transaction.
func (r *cartRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CartRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &cartRepository{db: tx})
	})
}
