package service

import (
	"context"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/menu"
	"spudhouse/internal/model"
	"spudhouse/internal/repository"
)

// ReviewService handles product reviews.
type ReviewService interface {
	Create(ctx context.Context, userID uint, username, productName string, rating int, comment string) (*model.Review, error)
	ListByProduct(ctx context.Context, productName string) ([]model.Review, error)
	AverageByProduct(ctx context.Context, productName string) (avg float64, count int64, err error)
}

type reviewService struct {
	reviews repository.ReviewRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository) ReviewService {
	return &reviewService{reviews: reviews}
}

func (s *reviewService) Create(ctx context.Context, userID uint, username, productName string, rating int, comment string) (*model.Review, error) {
	if !menu.Exists(productName) {
		return nil, apperrors.ErrUnknownMenuItem
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	review := &model.Review{
		UserID:      userID,
		Username:    username,
		ProductName: productName,
		Rating:      rating,
		Comment:     comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListByProduct(ctx context.Context, productName string) ([]model.Review, error) {
	return s.reviews.ListByProduct(ctx, productName)
}

func (s *reviewService) AverageByProduct(ctx context.Context, productName string) (float64, int64, error) {
	return s.reviews.AverageByProduct(ctx, productName)
}
