package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines a new catalogue entry.
type CreateProductInput struct {
	SellerID   uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	Price      decimal.Decimal
	Unit       string
}

// ProductUsecase defines the seller catalogue operations.
type ProductUsecase interface {
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
}
