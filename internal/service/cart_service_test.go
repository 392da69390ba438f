package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/model"
	"spudhouse/internal/repository"
)

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindByUserForUpdate(ctx context.Context, userID uint) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindByUserAndItem(ctx context.Context, userID uint, itemName string) (*model.CartItem, error) {
	args := m.Called(ctx, userID, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindByUserAndItemID(ctx context.Context, userID, id uint) (*model.CartItem, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockCartRepository) ClearUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// WithTransaction runs the callback against the mock itself.
func (m *MockCartRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.CartRepository) error) error {
	return fn(ctx, m)
}

func TestCartService_Add(t *testing.T) {
	tests := []struct {
		name          string
		itemName      string
		quantity      int
		setupMock     func(*MockCartRepository)
		expectedError error
	}{
		{
			name:     "new item",
			itemName: "Loaded Fries",
			quantity: 2,
			setupMock: func(m *MockCartRepository) {
				m.On("FindByUserAndItem", mock.Anything, uint(1), "Loaded Fries").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
					return item.ItemName == "Loaded Fries" &&
						item.Quantity == 2 &&
						item.Price.Equal(decimal.RequireFromString("32.00"))
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "existing item accumulates quantity",
			itemName: "Loaded Fries",
			quantity: 3,
			setupMock: func(m *MockCartRepository) {
				m.On("FindByUserAndItem", mock.Anything, uint(1), "Loaded Fries").Return(&model.CartItem{
					ID:       7,
					UserID:   1,
					ItemName: "Loaded Fries",
					Quantity: 2,
				}, nil)
				// 2 already in cart + 3 added = 5, not 3
				m.On("UpdateQuantity", mock.Anything, uint(7), 5).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "unknown menu item",
			itemName:      "Deep Fried Mars Bar",
			quantity:      1,
			setupMock:     func(m *MockCartRepository) {},
			expectedError: apperrors.ErrUnknownMenuItem,
		},
		{
			name:          "zero quantity",
			itemName:      "Loaded Fries",
			quantity:      0,
			setupMock:     func(m *MockCartRepository) {},
			expectedError: apperrors.ErrInvalidQuantity,
		},
		{
			name:          "quantity above cap",
			itemName:      "Loaded Fries",
			quantity:      101,
			setupMock:     func(m *MockCartRepository) {},
			expectedError: apperrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCartRepository)
			tt.setupMock(mockRepo)

			svc := NewCartService(mockRepo)
			err := svc.Add(context.Background(), 1, tt.itemName, tt.quantity)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		cartItemID    uint
		quantity      int
		setupMock     func(*MockCartRepository)
		expectedError error
	}{
		{
			name:       "successful update",
			cartItemID: 7,
			quantity:   4,
			setupMock: func(m *MockCartRepository) {
				m.On("FindByUserAndItemID", mock.Anything, uint(1), uint(7)).Return(&model.CartItem{ID: 7, UserID: 1}, nil)
				m.On("UpdateQuantity", mock.Anything, uint(7), 4).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:       "row belongs to another user",
			cartItemID: 9,
			quantity:   4,
			setupMock: func(m *MockCartRepository) {
				m.On("FindByUserAndItemID", mock.Anything, uint(1), uint(9)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCartItemNotFound,
		},
		{
			name:          "quantity below minimum",
			cartItemID:    7,
			quantity:      0,
			setupMock:     func(m *MockCartRepository) {},
			expectedError: apperrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCartRepository)
			tt.setupMock(mockRepo)

			svc := NewCartService(mockRepo)
			err := svc.UpdateQuantity(context.Background(), 1, tt.cartItemID, tt.quantity)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCartService_Remove(t *testing.T) {
	mockRepo := new(MockCartRepository)
	mockRepo.On("Delete", mock.Anything, uint(7), uint(1)).Return(gorm.ErrRecordNotFound)

	svc := NewCartService(mockRepo)
	err := svc.Remove(context.Background(), 1, 7)

	assert.Equal(t, apperrors.ErrCartItemNotFound, err)
	mockRepo.AssertExpectations(t)
}
