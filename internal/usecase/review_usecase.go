package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput is a user's rating of a product.
type SubmitReviewInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// ReviewUsecase defines the review registry operations.
type ReviewUsecase interface {
	// Submit stores the review and folds its rating into the product seller's rating.
	Submit(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error)
	ListForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
