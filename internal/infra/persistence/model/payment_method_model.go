package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMethodModel mirrors the 'payment_methods' table. The partial unique index
// on seller_id WHERE is_default keeps a single default per seller.
type PaymentMethodModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	SellerID      uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_payment_methods_single_default,where:is_default"`
	MethodType    string            `gorm:"column:type;type:varchar(16);not null"`
	BankDetails   *BankDetailsDoc   `gorm:"type:jsonb;serializer:json"`
	UPIDetails    *UPIDetailsDoc    `gorm:"column:upi_details;type:jsonb;serializer:json"`
	WalletDetails *WalletDetailsDoc `gorm:"type:jsonb;serializer:json"`
	IsDefault     bool              `gorm:"not null;default:false"`
	Status        string            `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// BeforeCreate assigns the primary key.
func (m *PaymentMethodModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// BankDetailsDoc is the jsonb document for bank accounts.
type BankDetailsDoc struct {
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	IFSC              string `json:"ifscCode"`
	BankName          string `json:"bankName"`
}

// UPIDetailsDoc is the jsonb document for UPI addresses.
type UPIDetailsDoc struct {
	UPIID string `json:"upiId"`
}

// WalletDetailsDoc is the jsonb document for wallets.
type WalletDetailsDoc struct {
	Provider string `json:"provider"`
	WalletID string `json:"walletId"`
}
