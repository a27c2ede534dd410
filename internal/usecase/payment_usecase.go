package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentMethodInput defines a payout destination. Only the detail group
// matching Type is read.
type CreatePaymentMethodInput struct {
	SellerID  uuid.UUID
	Type      entity.PaymentMethodType
	Bank      *entity.BankDetails
	UPI       *entity.UPIDetails
	Wallet    *entity.WalletDetails
	IsDefault bool
}

// PaymentMethodUsecase defines the payout method registry operations.
type PaymentMethodUsecase interface {
	Create(ctx context.Context, input *CreatePaymentMethodInput) (*entity.PaymentMethod, error)
	ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.PaymentMethod, error)

	// SetDefault makes methodID the seller's only default method.
	SetDefault(ctx context.Context, sellerID, methodID uuid.UUID) error

	// UpdateStatus is an admin operation recording the verification result.
	UpdateStatus(ctx context.Context, methodID uuid.UUID, status entity.VerificationStatus) error

	// PaymentQR renders the upi://pay link of a UPI method as a PNG QR code.
	PaymentQR(ctx context.Context, sellerID, methodID uuid.UUID) ([]byte, error)
}

// UpdatePayoutScheduleInput changes how often and from what amount a seller is paid.
type UpdatePayoutScheduleInput struct {
	SellerID      uuid.UUID
	Frequency     entity.PayoutFrequency
	MinimumAmount decimal.Decimal
}

// PaymentSummaryUsecase defines the seller accounting operations.
type PaymentSummaryUsecase interface {
	Get(ctx context.Context, sellerID uuid.UUID) (*entity.PaymentSummary, error)
	UpdatePayoutSchedule(ctx context.Context, input *UpdatePayoutScheduleInput) (*entity.PaymentSummary, error)

	// ApplyOrderEvent books an order lifecycle event. It reports whether the summary changed.
	ApplyOrderEvent(ctx context.Context, event *entity.OrderEvent) (bool, error)

	// RecordPayout is an admin operation debiting the available balance.
	RecordPayout(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (*entity.PaymentSummary, error)
}
