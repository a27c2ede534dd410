package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewProductService(productRepo, categoryRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()
	sellerID := uuid.New()
	categoryID := uuid.New()

	categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID, SellerID: sellerID}, nil)
	productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := service.Create(ctx, &usecase.CreateProductInput{
		SellerID:   sellerID,
		CategoryID: &categoryID,
		Name:       " Basmati Rice ",
		Price:      decimal.RequireFromString("82.456"),
		Unit:       "kg",
	})

	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice", product.Name)
	assert.Equal(t, "82.46", product.Price.StringFixed(2))
	assert.True(t, product.IsActive)
}

func TestProductService_Create_Errors(t *testing.T) {
	sellerID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.CreateProductInput
		setup   func(categoryRepo *mockRepo.MockCategoryRepository)
		wantErr error
	}{
		{
			name:    "blank name",
			input:   &usecase.CreateProductInput{SellerID: sellerID, Name: " "},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative price",
			input:   &usecase.CreateProductInput{SellerID: sellerID, Name: "Rice", Price: decimal.NewFromInt(-1)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown category",
			input: &usecase.CreateProductInput{SellerID: sellerID, Name: "Rice", CategoryID: &categoryID},
			setup: func(categoryRepo *mockRepo.MockCategoryRepository) {
				categoryRepo.EXPECT().FindByID(mock.Anything, categoryID).Return(nil, repository.ErrCategoryNotFound)
			},
			wantErr: domainerrors.ErrCategoryNotFound,
		},
		{
			name:  "category of another seller",
			input: &usecase.CreateProductInput{SellerID: sellerID, Name: "Rice", CategoryID: &categoryID},
			setup: func(categoryRepo *mockRepo.MockCategoryRepository) {
				categoryRepo.EXPECT().FindByID(mock.Anything, categoryID).
					Return(&entity.Category{ID: categoryID, SellerID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryRepo := mockRepo.NewMockCategoryRepository(t)
			service := NewProductService(mockRepo.NewMockProductRepository(t), categoryRepo,
				slog.New(slog.NewTextHandler(io.Discard, nil)))
			if tt.setup != nil {
				tt.setup(categoryRepo)
			}

			_, err := service.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
