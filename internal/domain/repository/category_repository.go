package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateSlug is returned when a slug collides with an existing category.
	ErrDuplicateSlug = errors.New("category slug already exists")
)

// CategoryRepository defines the interface for category persistence.
// ProductCount is populated only by the WithProductCount methods.
type CategoryRepository interface {
	// Create persists a new category. A slug collision returns ErrDuplicateSlug.
	Create(ctx context.Context, category *entity.Category) error

	// Update saves name, slug, color and order. A slug collision returns ErrDuplicateSlug.
	Update(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category without its product count.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIDWithProductCount retrieves a category with the live count of its products.
	FindByIDWithProductCount(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindBySellerWithProductCount lists a seller's categories in display order with live product counts.
	FindBySellerWithProductCount(ctx context.Context, sellerID uuid.UUID) ([]*entity.Category, error)

	// FindMissingSlug lists categories whose slug is NULL or empty.
	FindMissingSlug(ctx context.Context) ([]*entity.Category, error)

	// SetSlugIfMissing writes slug only while the stored slug is still NULL or empty.
	// It reports whether a row was modified.
	SetSlugIfMissing(ctx context.Context, id uuid.UUID, slug string) (bool, error)

	// Delete removes a category. Products referencing it are uncategorised.
	Delete(ctx context.Context, id uuid.UUID) error
}
