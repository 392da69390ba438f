package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/menu"
	"spudhouse/internal/model"
	"spudhouse/internal/repository"
)

const (
	minQuantity = 1
	maxQuantity = 100
)

// CartService handles a user's cart. Prices come from the menu table only.
type CartService interface {
	Add(ctx context.Context, userID uint, itemName string, quantity int) error
	Get(ctx context.Context, userID uint) ([]model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, cartItemID uint, quantity int) error
	Remove(ctx context.Context, userID, cartItemID uint) error
}

type cartService struct {
	carts repository.CartRepository
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository) CartService {
	return &cartService{carts: carts}
}

// Add puts an item in the cart. Adding an item already present accumulates
// the quantities rather than replacing them.
func (s *cartService) Add(ctx context.Context, userID uint, itemName string, quantity int) error {
	price, ok := menu.Price(itemName)
	if !ok {
		return apperrors.ErrUnknownMenuItem
	}
	if quantity < minQuantity || quantity > maxQuantity {
		return apperrors.ErrInvalidQuantity
	}

	return s.carts.WithTransaction(ctx, func(ctx context.Context, carts repository.CartRepository) error {
		existing, err := carts.FindByUserAndItem(ctx, userID, itemName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return carts.Create(ctx, &model.CartItem{
				UserID:   userID,
				ItemName: itemName,
				Price:    price,
				Quantity: quantity,
			})
		}
		if err != nil {
			return err
		}
		return carts.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity)
	})
}

func (s *cartService) Get(ctx context.Context, userID uint) ([]model.CartItem, error) {
	return s.carts.FindByUser(ctx, userID)
}

// UpdateQuantity replaces a row's quantity. The row must belong to the user.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, cartItemID uint, quantity int) error {
	if quantity < minQuantity || quantity > maxQuantity {
		return apperrors.ErrInvalidQuantity
	}

	item, err := s.carts.FindByUserAndItemID(ctx, userID, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCartItemNotFound
		}
		return err
	}
	return s.carts.UpdateQuantity(ctx, item.ID, quantity)
}

func (s *cartService) Remove(ctx context.Context, userID, cartItemID uint) error {
	if err := s.carts.Delete(ctx, cartItemID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCartItemNotFound
		}
		return err
	}
	return nil
}
