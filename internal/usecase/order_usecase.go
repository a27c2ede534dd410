package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput is placed by an authenticated buyer with one seller.
type CreateOrderInput struct {
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	Items           []entity.OrderItem
	ShippingAddress entity.ShippingAddress
	PaymentMethod   string
}

// OrderUsecase defines the order ledger operations.
type OrderUsecase interface {
	Create(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// Get returns the order when the requester is its buyer or its seller.
	Get(ctx context.Context, requesterID, orderID uuid.UUID) (*entity.Order, error)
	ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)
	ListForBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus moves an order owned by sellerID along the status lifecycle.
	UpdateStatus(ctx context.Context, sellerID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}

// MigrationReport summarises a one-shot order migration.
type MigrationReport struct {
	Scanned  int
	Modified int64
	Skipped  int
}

// OrderMigrationUsecase defines the idempotent repairs for legacy order rows.
type OrderMigrationUsecase interface {
	// BackfillSellerField assigns defaultSellerID to every order without a seller.
	BackfillSellerField(ctx context.Context, defaultSellerID uuid.UUID) (*MigrationReport, error)

	// MigrateLegacyAssociations infers missing seller and hotel references.
	MigrateLegacyAssociations(ctx context.Context) (*MigrationReport, error)

	// BackfillBuyerNames replaces blank buyer names with random picks from candidates.
	BackfillBuyerNames(ctx context.Context, candidates []string) (*MigrationReport, error)
}
