package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusChanged is returned when the stored status no longer matches the expected one.
	ErrOrderStatusChanged = errors.New("order status changed concurrently")
)

// OrderRepository defines the interface for order persistence and its maintenance jobs.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus moves an order from one status to another. It returns ErrOrderStatusChanged
	// when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// BackfillSeller sets sellerID on every order lacking a seller and returns the modified count.
	BackfillSeller(ctx context.Context, sellerID uuid.UUID) (int64, error)

	// FindMissingAssociations lists orders lacking a seller or a hotel reference.
	FindMissingAssociations(ctx context.Context) ([]*entity.Order, error)

	// SetSellerIfMissing writes sellerID only while the stored seller is NULL.
	SetSellerIfMissing(ctx context.Context, id, sellerID uuid.UUID) (bool, error)

	// SetHotelIfMissing writes hotelID only while the stored hotel is NULL.
	SetHotelIfMissing(ctx context.Context, id, hotelID uuid.UUID) (bool, error)

	// FindBlankBuyerNames lists orders whose buyer snapshot has an empty name.
	FindBlankBuyerNames(ctx context.Context) ([]*entity.Order, error)

	// SetBuyerNameIfBlank writes name only while the stored buyer name is still empty.
	SetBuyerNameIfBlank(ctx context.Context, id uuid.UUID, name string) (bool, error)
}
