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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	BusinessUC       usecase.BusinessUsecase
	PaymentMethodUC  usecase.PaymentMethodUsecase
	PaymentSummaryUC usecase.PaymentSummaryUsecase
	Logger           *slog.Logger
}

// AdminHandler serves the operator endpoints guarded by the admin key.
type AdminHandler struct {
	businessUC       usecase.BusinessUsecase
	paymentMethodUC  usecase.PaymentMethodUsecase
	paymentSummaryUC usecase.PaymentSummaryUsecase
	logger           *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		businessUC:       params.BusinessUC,
		paymentMethodUC:  params.PaymentMethodUC,
		paymentSummaryUC: params.PaymentSummaryUC,
		logger:           params.Logger,
	}
}

// VerificationRequest represents the request body for recording a verification result
type VerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified rejected"`
}

// PayoutRequest represents the request body for recording a payout
type PayoutRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"decimal_gte0"`
}

// UpdateBusinessVerification handles verifying or rejecting a business
func (h *AdminHandler) UpdateBusinessVerification(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req VerificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	status := entity.VerificationStatus(req.Status)
	if err := h.businessUC.UpdateVerificationStatus(c.Request().Context(), businessID, status); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Business verification updated",
		slog.Any("business_id", businessID),
		slog.String("status", req.Status),
	)

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status})
}

// DeactivateBusiness handles soft-deleting a business
func (h *AdminHandler) DeactivateBusiness(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.businessUC.Deactivate(c.Request().Context(), businessID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdatePaymentMethodStatus handles verifying or rejecting a payout method
func (h *AdminHandler) UpdatePaymentMethodStatus(c echo.Context) error {
	methodID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req VerificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.paymentMethodUC.UpdateStatus(c.Request().Context(), methodID, entity.VerificationStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status})
}

// RecordPayout handles debiting a payout from a seller's available balance
func (h *AdminHandler) RecordPayout(c echo.Context) error {
	sellerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PayoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.paymentSummaryUC.RecordPayout(c.Request().Context(), sellerID, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
