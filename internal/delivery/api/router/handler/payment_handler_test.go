package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentHandlerFixtures struct {
	handler          *PaymentHandler
	paymentMethodUC  *mockUsecase.MockPaymentMethodUsecase
	paymentSummaryUC *mockUsecase.MockPaymentSummaryUsecase
}

func createTestPaymentHandler(t *testing.T) paymentHandlerFixtures {
	paymentMethodUC := mockUsecase.NewMockPaymentMethodUsecase(t)
	paymentSummaryUC := mockUsecase.NewMockPaymentSummaryUsecase(t)

	return paymentHandlerFixtures{
		handler: NewPaymentHandler(PaymentHandlerParams{
			PaymentMethodUC:  paymentMethodUC,
			PaymentSummaryUC: paymentSummaryUC,
			Logger:           discardLogger,
		}),
		paymentMethodUC:  paymentMethodUC,
		paymentSummaryUC: paymentSummaryUC,
	}
}

func TestPaymentHandler_CreatePaymentMethod(t *testing.T) {
	sellerID := uuid.New()

	t.Run("upi method", func(t *testing.T) {
		fx := createTestPaymentHandler(t)
		fx.paymentMethodUC.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(input *usecase.CreatePaymentMethodInput) bool {
				return input.SellerID == sellerID && input.Type == entity.PaymentMethodUPI &&
					input.UPI != nil && input.UPI.UPIID == "farms@upi" && input.IsDefault
			})).
			Return(&entity.PaymentMethod{ID: uuid.New(), Type: entity.PaymentMethodUPI}, nil)
		c, rec := newTestContext(http.MethodPost, "/api/v1/payment-methods",
			`{"type":"upi","upiDetails":{"upiId":"farms@upi"},"isDefault":true}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, fx.handler.CreatePaymentMethod(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		fx := createTestPaymentHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/payment-methods", `{"type":"cheque"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, fx.handler.CreatePaymentMethod(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_GetPaymentQR(t *testing.T) {
	sellerID := uuid.New()
	methodID := uuid.New()

	t.Run("renders png", func(t *testing.T) {
		fx := createTestPaymentHandler(t)
		png := []byte{0x89, 'P', 'N', 'G'}
		fx.paymentMethodUC.EXPECT().PaymentQR(mock.Anything, sellerID, methodID).Return(png, nil)
		c, rec := newTestContext(http.MethodGet, "/", "", sellerID, entity.BusinessTypeSeller)

		require.NoError(t, fx.handler.GetPaymentQR(withParam(c, "id", methodID.String())))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("foreign method", func(t *testing.T) {
		fx := createTestPaymentHandler(t)
		fx.paymentMethodUC.EXPECT().PaymentQR(mock.Anything, sellerID, methodID).Return(nil, domainerrors.ErrForbidden)
		c, rec := newTestContext(http.MethodGet, "/", "", sellerID, entity.BusinessTypeSeller)

		require.NoError(t, fx.handler.GetPaymentQR(withParam(c, "id", methodID.String())))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPaymentHandler_UpdatePayoutSchedule(t *testing.T) {
	sellerID := uuid.New()

	t.Run("monthly schedule", func(t *testing.T) {
		fx := createTestPaymentHandler(t)
		fx.paymentSummaryUC.EXPECT().
			UpdatePayoutSchedule(mock.Anything, mock.MatchedBy(func(input *usecase.UpdatePayoutScheduleInput) bool {
				return input.SellerID == sellerID && input.Frequency == entity.PayoutMonthly &&
					input.MinimumAmount.Equal(decimal.RequireFromString("500"))
			})).
			Return(&entity.PaymentSummary{SellerID: sellerID}, nil)
		c, rec := newTestContext(http.MethodPut, "/api/v1/payment-summary/schedule",
			`{"frequency":"monthly","minimumPayoutAmount":"500"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, fx.handler.UpdatePayoutSchedule(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("negative minimum", func(t *testing.T) {
		fx := createTestPaymentHandler(t)
		c, rec := newTestContext(http.MethodPut, "/api/v1/payment-summary/schedule",
			`{"frequency":"weekly","minimumPayoutAmount":"-1"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, fx.handler.UpdatePayoutSchedule(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_GetPaymentSummary(t *testing.T) {
	sellerID := uuid.New()
	fx := createTestPaymentHandler(t)
	fx.paymentSummaryUC.EXPECT().Get(mock.Anything, sellerID).Return(nil, domainerrors.ErrPaymentSummaryNotFound)
	c, rec := newTestContext(http.MethodGet, "/api/v1/payment-summary", "", sellerID, entity.BusinessTypeSeller)

	require.NoError(t, fx.handler.GetPaymentSummary(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PAYMENT_SUMMARY_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}
