package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  PaymentMethod
		wantErr error
	}{
		{
			name:   "bank ok",
			method: PaymentMethod{Type: PaymentMethodBank, Bank: &BankDetails{AccountNumber: "0012345", IFSC: "HDFC0000001"}},
		},
		{
			name:    "bank missing ifsc",
			method:  PaymentMethod{Type: PaymentMethodBank, Bank: &BankDetails{AccountNumber: "0012345"}},
			wantErr: ErrMissingPaymentField,
		},
		{
			name:    "bank missing account number",
			method:  PaymentMethod{Type: PaymentMethodBank, Bank: &BankDetails{IFSC: "HDFC0000001"}},
			wantErr: ErrMissingPaymentField,
		},
		{
			name:   "upi ok",
			method: PaymentMethod{Type: PaymentMethodUPI, UPI: &UPIDetails{UPIID: "farm@okbank"}},
		},
		{
			name:    "upi blank id",
			method:  PaymentMethod{Type: PaymentMethodUPI, UPI: &UPIDetails{UPIID: " "}},
			wantErr: ErrMissingPaymentField,
		},
		{
			name:    "wallet missing id",
			method:  PaymentMethod{Type: PaymentMethodWallet, Wallet: &WalletDetails{Provider: "paytm"}},
			wantErr: ErrMissingPaymentField,
		},
		{
			name:    "details do not match type",
			method:  PaymentMethod{Type: PaymentMethodUPI, Bank: &BankDetails{AccountNumber: "1", IFSC: "X"}},
			wantErr: ErrPaymentDetailsShape,
		},
		{
			name:    "unknown type",
			method:  PaymentMethod{Type: "cash"},
			wantErr: ErrInvalidPaymentMethodType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.method.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentMethod_UPIPayLink(t *testing.T) {
	upi := &PaymentMethod{Type: PaymentMethodUPI, UPI: &UPIDetails{UPIID: "farm@okbank"}}

	link, err := upi.UPIPayLink("Green Farms")
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?cu=INR&pa=farm%40okbank&pn=Green+Farms", link)

	bank := &PaymentMethod{Type: PaymentMethodBank, Bank: &BankDetails{}}
	_, err = bank.UPIPayLink("Green Farms")
	assert.ErrorIs(t, err, ErrNotUPIMethod)
}
