package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateReview is returned when the user already reviewed the product.
var ErrDuplicateReview = errors.New("review already exists")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a review. A (user, product) collision returns ErrDuplicateReview.
	Create(ctx context.Context, review *entity.Review) error

	ExistsByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
