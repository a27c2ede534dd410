package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentSummaryModel mirrors the 'payment_summaries' table, one row per seller.
type PaymentSummaryModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_payment_summaries_seller"`
	TotalEarnings    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	PendingPayments  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AvailableBalance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	LastPayoutDate   *time.Time
	LastPayoutAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	MonthlyPeriod  string          `gorm:"type:char(7)"`
	MonthlySales   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	MonthlyRefunds decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	MonthlyFees    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	MonthlyNet     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	YTDYear    int             `gorm:"column:ytd_year"`
	YTDSales   decimal.Decimal `gorm:"column:ytd_sales;type:numeric(14,2);not null;default:0"`
	YTDRefunds decimal.Decimal `gorm:"column:ytd_refunds;type:numeric(14,2);not null;default:0"`
	YTDFees    decimal.Decimal `gorm:"column:ytd_fees;type:numeric(14,2);not null;default:0"`
	YTDNet     decimal.Decimal `gorm:"column:ytd_net;type:numeric(14,2);not null;default:0"`

	PayoutFrequency string          `gorm:"type:varchar(16);not null;default:'weekly'"`
	NextPayoutDate  time.Time
	MinimumPayout   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentSummaryModel) TableName() string {
	return "payment_summaries"
}

// BeforeCreate assigns the primary key.
func (m *PaymentSummaryModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// AppliedOrderEventModel mirrors the 'applied_order_events' table. Its key is the
// (order, status) pair already booked into a payment summary.
type AppliedOrderEventModel struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    string    `gorm:"type:varchar(16);primaryKey"`
	SellerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AppliedOrderEventModel) TableName() string {
	return "applied_order_events"
}
