package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertCategoryInput creates a category when ID is nil, otherwise updates an owned one.
// Nil Color and Order keep the stored values on update.
type UpsertCategoryInput struct {
	ID       *uuid.UUID
	SellerID uuid.UUID
	Name     string
	Color    *string
	Order    *int
}

// CategoryUsecase defines the category registry operations.
type CategoryUsecase interface {
	Upsert(ctx context.Context, input *UpsertCategoryInput) (*entity.Category, error)
	ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Category, error)
	Get(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error)
	Delete(ctx context.Context, sellerID, categoryID uuid.UUID) error

	// BackfillMissingSlugs derives a slug for every category without one and returns
	// the number of categories updated. Re-running it modifies nothing.
	BackfillMissingSlugs(ctx context.Context) (int64, error)
}
