package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentMethodUC  usecase.PaymentMethodUsecase
	PaymentSummaryUC usecase.PaymentSummaryUsecase
	Logger           *slog.Logger
}

// PaymentHandler serves the seller payout method and summary endpoints.
type PaymentHandler struct {
	paymentMethodUC  usecase.PaymentMethodUsecase
	paymentSummaryUC usecase.PaymentSummaryUsecase
	logger           *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentMethodUC:  params.PaymentMethodUC,
		paymentSummaryUC: params.PaymentSummaryUC,
		logger:           params.Logger,
	}
}

// CreatePaymentMethodRequest represents the request body for adding a payout method.
// Only the detail group matching type is kept.
type CreatePaymentMethodRequest struct {
	Type          string                `json:"type" validate:"required,oneof=bank upi wallet"`
	BankDetails   *entity.BankDetails   `json:"bankDetails"`
	UPIDetails    *entity.UPIDetails    `json:"upiDetails"`
	WalletDetails *entity.WalletDetails `json:"walletDetails"`
	IsDefault     bool                  `json:"isDefault"`
}

// UpdatePayoutScheduleRequest represents the request body for changing the payout schedule
type UpdatePayoutScheduleRequest struct {
	Frequency     string          `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
	MinimumAmount decimal.Decimal `json:"minimumPayoutAmount" validate:"decimal_gte0"`
}

// CreatePaymentMethod handles adding a payout method for the authenticated seller
func (h *PaymentHandler) CreatePaymentMethod(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreatePaymentMethodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	method, err := h.paymentMethodUC.Create(c.Request().Context(), &usecase.CreatePaymentMethodInput{
		SellerID:  sellerID,
		Type:      entity.PaymentMethodType(req.Type),
		Bank:      req.BankDetails,
		UPI:       req.UPIDetails,
		Wallet:    req.WalletDetails,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, method)
}

// ListPaymentMethods handles listing the authenticated seller's payout methods
func (h *PaymentHandler) ListPaymentMethods(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	methods, err := h.paymentMethodUC.ListForSeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, methods)
}

// SetDefaultPaymentMethod handles making a payout method the seller's default
func (h *PaymentHandler) SetDefaultPaymentMethod(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	methodID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.paymentMethodUC.SetDefault(c.Request().Context(), sellerID, methodID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Default payment method updated"})
}

// GetPaymentQR handles rendering a UPI payout method as a PNG QR code
func (h *PaymentHandler) GetPaymentQR(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	methodID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.paymentMethodUC.PaymentQR(c.Request().Context(), sellerID, methodID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetPaymentSummary handles retrieving the authenticated seller's accounting summary
func (h *PaymentHandler) GetPaymentSummary(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.paymentSummaryUC.Get(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// UpdatePayoutSchedule handles changing the authenticated seller's payout schedule
func (h *PaymentHandler) UpdatePayoutSchedule(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePayoutScheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.paymentSummaryUC.UpdatePayoutSchedule(c.Request().Context(), &usecase.UpdatePayoutScheduleInput{
		SellerID:      sellerID,
		Frequency:     entity.PayoutFrequency(req.Frequency),
		MinimumAmount: req.MinimumAmount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
