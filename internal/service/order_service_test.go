package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/model"
	"spudhouse/internal/repository"
)

// MockOrderRepository is a mock implementation of OrderRepository. Its
// WithTransaction hands the callback the mock itself plus the attached cart
// mock, mirroring the transactional pair the real repository provides.
type MockOrderRepository struct {
	mock.Mock
	carts *MockCartRepository
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) LastByUser(ctx context.Context, userID uint) (*model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, orders repository.OrderRepository, carts repository.CartRepository) error) error {
	return fn(ctx, m, m.carts)
}

func TestOrderService_Place(t *testing.T) {
	cartItems := []model.CartItem{
		{ID: 1, UserID: 1, ItemName: "Loaded Fries", Price: decimal.RequireFromString("32.00"), Quantity: 2},
		{ID: 2, UserID: 1, ItemName: "Soft Drink", Price: decimal.RequireFromString("9.00"), Quantity: 3},
	}
	// 32.00*2 + 9.00*3
	wantTotal := decimal.RequireFromString("91.00")

	tests := []struct {
		name          string
		setupMock     func(*MockOrderRepository, *MockCartRepository)
		expectedError error
		check         func(*testing.T, *model.Order)
	}{
		{
			name: "successful placement snapshots cart and clears it",
			setupMock: func(orders *MockOrderRepository, carts *MockCartRepository) {
				carts.On("FindByUserForUpdate", mock.Anything, uint(1)).Return(cartItems, nil)
				orders.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
					return o.UserID == 1 &&
						o.TotalAmount.Equal(wantTotal) &&
						len(o.Items) == 2 &&
						o.Items[0].ItemName == "Loaded Fries" &&
						o.Items[0].Quantity == 2 &&
						o.Items[1].ItemName == "Soft Drink" &&
						o.Items[1].Quantity == 3 &&
						o.Status == model.OrderStatusPending
				})).Return(nil)
				carts.On("ClearUser", mock.Anything, uint(1)).Return(nil)
			},
			check: func(t *testing.T, order *model.Order) {
				assert.True(t, order.TotalAmount.Equal(wantTotal))
				assert.Len(t, order.Items, 2)
			},
		},
		{
			name: "empty cart",
			setupMock: func(orders *MockOrderRepository, carts *MockCartRepository) {
				carts.On("FindByUserForUpdate", mock.Anything, uint(1)).Return([]model.CartItem{}, nil)
			},
			expectedError: apperrors.ErrCartEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCarts := new(MockCartRepository)
			mockOrders := &MockOrderRepository{carts: mockCarts}
			tt.setupMock(mockOrders, mockCarts)

			svc := NewOrderService(mockOrders)
			order, err := svc.Place(context.Background(), 1)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, order)
				// No order row, no cart clear on failure.
				mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				mockCarts.AssertNotCalled(t, "ClearUser", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				tt.check(t, order)
			}

			mockOrders.AssertExpectations(t)
			mockCarts.AssertExpectations(t)
		})
	}
}

func TestOrderService_Last_NoOrders(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := &MockOrderRepository{carts: mockCarts}
	mockOrders.On("LastByUser", mock.Anything, uint(1)).Return(nil, nil)

	svc := NewOrderService(mockOrders)
	order, err := svc.Last(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, order)
	mockOrders.AssertExpectations(t)
}
