package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryWithCountColumns selects a category row plus the live count of its products.
const categoryWithCountColumns = "categories.*, COUNT(products.id) AS product_count"

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return mapCategoryWriteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":          category.Name,
			"slug":          slugColumn(category.Slug),
			"color":         category.Color,
			"display_order": category.Order,
		})
	if result.Error != nil {
		return mapCategoryWriteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).First(&categoryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM, 0), nil
}

func (repo *categoryRepository) FindByIDWithProductCount(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var rows []*model.CategoryWithCount
	err := repo.withProductCount(ctx).
		Where("categories.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category with product count")
	}
	if len(rows) == 0 {
		return nil, repository.ErrCategoryNotFound
	}

	return toCategoryDomain(&rows[0].CategoryModel, rows[0].ProductCount), nil
}

func (repo *categoryRepository) FindBySellerWithProductCount(ctx context.Context, sellerID uuid.UUID) ([]*entity.Category, error) {
	var rows []*model.CategoryWithCount
	err := repo.withProductCount(ctx).
		Where("categories.seller_id = ?", sellerID).
		Order("categories.display_order ASC").
		Order("categories.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories with product count")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toCategoryDomain(&row.CategoryModel, row.ProductCount))
	}

	return categories, nil
}

func (repo *categoryRepository) withProductCount(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select(categoryWithCountColumns).
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Group("categories.id")
}

func (repo *categoryRepository) FindMissingSlug(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("slug IS NULL OR slug = ''").
		Order("created_at ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories without slug")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM, 0))
	}

	return categories, nil
}

func (repo *categoryRepository) SetSlugIfMissing(ctx context.Context, id uuid.UUID, slug string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ? AND (slug IS NULL OR slug = '')", id).
		Update("slug", slug)
	if result.Error != nil {
		return false, mapCategoryWriteError(result.Error, "failed to set category slug")
	}

	return result.RowsAffected > 0, nil
}

// Delete removes a category. The products foreign key uncategorises its products.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func mapCategoryWriteError(err error, details string) error {
	if constraint, ok := uniqueViolation(err); ok && (constraint == "" || constraint == idxCategoriesSlug) {
		return repository.ErrDuplicateSlug
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// slugColumn stores an empty slug as NULL so the unique index ignores it.
func slugColumn(slug string) *string {
	if slug == "" {
		return nil
	}

	return &slug
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel, productCount int64) *entity.Category {
	category := &entity.Category{
		ID:           data.ID,
		Name:         data.Name,
		Color:        data.Color,
		Order:        data.Order,
		SellerID:     data.SellerID,
		ProductCount: productCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Slug != nil {
		category.Slug = *data.Slug
	}

	return category
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      slugColumn(data.Slug),
		Color:     data.Color,
		Order:     data.Order,
		SellerID:  data.SellerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
