package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentSummaryNotFound is returned when a seller has no payment summary.
var ErrPaymentSummaryNotFound = errors.New("payment summary not found")

// PaymentSummaryRepository defines the interface for seller financial rollups.
// A seller has at most one summary; seller_id is unique.
type PaymentSummaryRepository interface {
	Create(ctx context.Context, summary *entity.PaymentSummary) error

	// CreateIfMissing inserts the summary unless the seller already has one.
	// It reports whether a row was inserted.
	CreateIfMissing(ctx context.Context, summary *entity.PaymentSummary) (bool, error)

	FindBySeller(ctx context.Context, sellerID uuid.UUID) (*entity.PaymentSummary, error)

	// FindBySellerForUpdate reads the summary with a row lock held until the transaction ends.
	FindBySellerForUpdate(ctx context.Context, sellerID uuid.UUID) (*entity.PaymentSummary, error)

	Update(ctx context.Context, summary *entity.PaymentSummary) error

	// MarkEventApplied records that the order event's (order, status) pair was booked.
	// It reports false when the pair was already recorded.
	MarkEventApplied(ctx context.Context, event *entity.OrderEvent) (bool, error)
}
