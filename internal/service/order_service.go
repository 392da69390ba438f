package service

import (
	"context"

	"github.com/shopspring/decimal"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/model"
	"spudhouse/internal/repository"
)

// OrderService handles order placement and history.
type OrderService interface {
	Place(ctx context.Context, userID uint) (*model.Order, error)
	List(ctx context.Context, userID uint) ([]model.Order, error)
	Last(ctx context.Context, userID uint) (*model.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// Place reads the cart, snapshots it into an order, and clears it in one
// transaction, so a concurrent double submission cannot produce two orders
// from the same cart and a failed clear rolls the order back.
func (s *orderService) Place(ctx context.Context, userID uint) (*model.Order, error) {
	var placed *model.Order

	err := s.orders.WithTransaction(ctx, func(ctx context.Context, orders repository.OrderRepository, carts repository.CartRepository) error {
		items, err := carts.FindByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperrors.ErrCartEmpty
		}

		total := decimal.Zero
		snapshot := make(model.OrderItems, 0, len(items))
		for _, item := range items {
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			snapshot = append(snapshot, model.OrderItem{
				ItemName: item.ItemName,
				Price:    item.Price,
				Quantity: item.Quantity,
			})
		}

		order := &model.Order{
			UserID:      userID,
			TotalAmount: total,
			Items:       snapshot,
			Status:      model.OrderStatusPending,
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		if err := carts.ClearUser(ctx, userID); err != nil {
			return err
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return placed, nil
}

func (s *orderService) List(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Last returns nil when the user has no orders.
func (s *orderService) Last(ctx context.Context, userID uint) (*model.Order, error) {
	return s.orders.LastByUser(ctx, userID)
}
