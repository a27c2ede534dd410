package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create adds a product to the seller's catalogue. A category, when given, must belong to the seller.
func (s *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}
	if input.Price.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product price cannot be negative")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, errors.Wrap(mapCategoryRepoError(err), "failed to find product category")
		}
		if category.SellerID != input.SellerID {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "category belongs to another seller")
		}
	}

	product := &entity.Product{
		SellerID:   input.SellerID,
		CategoryID: input.CategoryID,
		Name:       name,
		Price:      input.Price.Round(2),
		Unit:       strings.TrimSpace(input.Unit),
		IsActive:   true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(mapCategoryRepoError(err), "failed to create product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Product created",
		slog.Any("product_id", product.ID),
		slog.Any("seller_id", product.SellerID),
	)

	return product, nil
}

func (s *productService) ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}
