package entity

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// PaymentMethodType selects which detail group a payment method carries.
type PaymentMethodType string

const (
	PaymentMethodBank   PaymentMethodType = "bank"
	PaymentMethodUPI    PaymentMethodType = "upi"
	PaymentMethodWallet PaymentMethodType = "wallet"
)

// IsValid checks if the PaymentMethodType is a valid value.
func (t PaymentMethodType) IsValid() bool {
	switch t {
	case PaymentMethodBank, PaymentMethodUPI, PaymentMethodWallet:
		return true
	default:
		return false
	}
}

// Payment method validation errors.
var (
	ErrInvalidPaymentMethodType = errors.New("payment method type must be bank, upi or wallet")
	ErrPaymentDetailsShape      = errors.New("exactly the detail group matching the payment method type must be present")
	ErrMissingPaymentField      = errors.New("missing required payment method field")
	ErrNotUPIMethod             = errors.New("payment method is not a upi method")
)

// BankDetails identifies a bank account.
type BankDetails struct {
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	IFSC              string `json:"ifscCode"`
	BankName          string `json:"bankName"`
}

// UPIDetails identifies a UPI virtual payment address.
type UPIDetails struct {
	UPIID string `json:"upiId"`
}

// WalletDetails identifies a wallet account.
type WalletDetails struct {
	Provider string `json:"provider"`
	WalletID string `json:"walletId"`
}

// PaymentMethod is a payout destination owned by a seller.
// Exactly the detail pointer matching Type is non-nil.
type PaymentMethod struct {
	ID        uuid.UUID          `json:"id"`
	SellerID  uuid.UUID          `json:"sellerId"`
	Type      PaymentMethodType  `json:"type"`
	Bank      *BankDetails       `json:"bankDetails,omitempty"`
	UPI       *UPIDetails        `json:"upiDetails,omitempty"`
	Wallet    *WalletDetails     `json:"walletDetails,omitempty"`
	IsDefault bool               `json:"isDefault"`
	Status    VerificationStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Validate enforces the type-conditional required fields.
func (m *PaymentMethod) Validate() error {
	if !m.Type.IsValid() {
		return ErrInvalidPaymentMethodType
	}

	switch m.Type {
	case PaymentMethodBank:
		if m.Bank == nil || m.UPI != nil || m.Wallet != nil {
			return ErrPaymentDetailsShape
		}
		if blank(m.Bank.AccountNumber) {
			return errors.Wrap(ErrMissingPaymentField, "accountNumber")
		}
		if blank(m.Bank.IFSC) {
			return errors.Wrap(ErrMissingPaymentField, "ifscCode")
		}
	case PaymentMethodUPI:
		if m.UPI == nil || m.Bank != nil || m.Wallet != nil {
			return ErrPaymentDetailsShape
		}
		if blank(m.UPI.UPIID) {
			return errors.Wrap(ErrMissingPaymentField, "upiId")
		}
	case PaymentMethodWallet:
		if m.Wallet == nil || m.Bank != nil || m.UPI != nil {
			return ErrPaymentDetailsShape
		}
		if blank(m.Wallet.WalletID) {
			return errors.Wrap(ErrMissingPaymentField, "walletId")
		}
	}

	return nil
}

// UPIPayLink builds the upi://pay deep link for a UPI method, payable to payeeName.
func (m *PaymentMethod) UPIPayLink(payeeName string) (string, error) {
	if m.Type != PaymentMethodUPI || m.UPI == nil {
		return "", ErrNotUPIMethod
	}

	query := url.Values{}
	query.Set("pa", m.UPI.UPIID)
	query.Set("pn", payeeName)
	query.Set("cu", "INR")

	return fmt.Sprintf("upi://pay?%s", query.Encode()), nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
