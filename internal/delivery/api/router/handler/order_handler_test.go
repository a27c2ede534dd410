package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: discardLogger}), orderUC
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	buyerID := uuid.New()
	sellerID := uuid.New()
	productID := uuid.New()

	t.Run("places order", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(input *usecase.CreateOrderInput) bool {
				return input.BuyerID == buyerID && input.SellerID == sellerID &&
					len(input.Items) == 1 && *input.Items[0].ProductID == productID &&
					input.Items[0].Price.String() == "45.5" && input.ShippingAddress.City == "Pune"
			})).
			Return(&entity.Order{ID: uuid.New(), Status: entity.OrderPending}, nil)
		body := `{"sellerId":"` + sellerID.String() + `","items":[{"productId":"` + productID.String() +
			`","name":"Tomatoes","quantity":2,"price":"45.50","unit":"kg"}],"shippingAddress":{"city":"Pune"},"paymentMethod":"cod"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/orders", body, buyerID, entity.BusinessTypeHotel)

		require.NoError(t, h.CreateOrder(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "no items", body: `{"sellerId":"` + sellerID.String() + `","items":[]}`},
		{name: "zero quantity", body: `{"sellerId":"` + sellerID.String() + `","items":[{"productId":"` + productID.String() + `","name":"x","quantity":0,"price":"1"}]}`},
		{name: "negative price", body: `{"sellerId":"` + sellerID.String() + `","items":[{"productId":"` + productID.String() + `","name":"x","quantity":1,"price":"-1"}]}`},
		{name: "missing seller", body: `{"items":[{"productId":"` + productID.String() + `","name":"x","quantity":1,"price":"1"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestOrderHandler(t)
			c, rec := newTestContext(http.MethodPost, "/api/v1/orders", tt.body, buyerID, entity.BusinessTypeHotel)

			require.NoError(t, h.CreateOrder(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	requesterID := uuid.New()
	orderID := uuid.New()

	t.Run("forbidden for outsiders", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().Get(mock.Anything, requesterID, orderID).Return(nil, domainerrors.ErrForbidden)
		c, rec := newTestContext(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", requesterID, entity.BusinessTypeHotel)

		require.NoError(t, h.GetOrder(withParam(c, "id", orderID.String())))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newTestOrderHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/orders/abc", "", requesterID, entity.BusinessTypeHotel)

		require.NoError(t, h.GetOrder(withParam(c, "id", "abc")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	sellerID := uuid.New()
	orderID := uuid.New()

	t.Run("moves order", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().UpdateStatus(mock.Anything, sellerID, orderID, entity.OrderShipped).
			Return(&entity.Order{ID: orderID, Status: entity.OrderShipped}, nil)
		c, rec := newTestContext(http.MethodPatch, "/", `{"status":"shipped"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.UpdateOrderStatus(withParam(c, "id", orderID.String())))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"shipped"`)
	})

	t.Run("invalid transition", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().UpdateStatus(mock.Anything, sellerID, orderID, entity.OrderPending).
			Return(nil, domainerrors.ErrInvalidStatusTransition)
		c, rec := newTestContext(http.MethodPatch, "/", `{"status":"pending"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.UpdateOrderStatus(withParam(c, "id", orderID.String())))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, _ := newTestOrderHandler(t)
		c, rec := newTestContext(http.MethodPatch, "/", `{"status":"lost"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.UpdateOrderStatus(withParam(c, "id", orderID.String())))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_Lists(t *testing.T) {
	businessID := uuid.New()

	h, orderUC := newTestOrderHandler(t)
	orderUC.EXPECT().ListForBuyer(mock.Anything, businessID).Return([]*entity.Order{{ID: uuid.New()}}, nil)
	orderUC.EXPECT().ListForSeller(mock.Anything, businessID).Return([]*entity.Order{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/orders", "", businessID, entity.BusinessTypeSeller)
	require.NoError(t, h.ListPlacedOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/api/v1/orders/received", "", businessID, entity.BusinessTypeSeller)
	require.NoError(t, h.ListReceivedOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}
