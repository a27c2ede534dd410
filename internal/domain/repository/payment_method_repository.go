package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentMethodNotFound is returned when a payment method is not found or not owned by the seller.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethodRepository defines the interface for seller payout method persistence.
type PaymentMethodRepository interface {
	// Create persists a method. IsDefault is stored as false; use SetDefault to promote it.
	Create(ctx context.Context, method *entity.PaymentMethod) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.PaymentMethod, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error

	// SetDefault atomically makes methodID the seller's only default method. It locks the
	// seller's method rows, verifies ownership, demotes every other method and promotes the
	// target. ErrPaymentMethodNotFound is returned when the seller does not own methodID.
	SetDefault(ctx context.Context, sellerID, methodID uuid.UUID) error
}
