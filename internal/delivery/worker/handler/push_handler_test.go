package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockPaymentSummaryUsecase) {
	summaryUC := mockUsecase.NewMockPaymentSummaryUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:           cfg,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		PaymentSummaryUC: summaryUC,
	}), summaryUC
}

func pushRequest(t *testing.T, event *service.DomainEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return rawPushRequest(string(body))
}

func rawPushRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func orderDomainEvent(t *testing.T, eventType string, payload entity.OrderEvent) *service.DomainEvent {
	t.Helper()

	event, err := service.NewDomainEvent(eventType, "req-42", payload, payload.OccurredAt)
	require.NoError(t, err)

	return event
}

func TestPushHandler_HandlePush(t *testing.T) {
	sellerID := uuid.New()
	payload := entity.OrderEvent{
		OrderID:    uuid.New(),
		SellerID:   sellerID,
		Status:     entity.OrderDelivered,
		Amount:     decimal.RequireFromString("399.99"),
		OccurredAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}

	t.Run("books order event", func(t *testing.T) {
		h, summaryUC := newTestPushHandler(t, nil)
		summaryUC.EXPECT().
			ApplyOrderEvent(mock.Anything, mock.MatchedBy(func(event *entity.OrderEvent) bool {
				return event.SellerID == sellerID && event.Status == entity.OrderDelivered &&
					event.Amount.Equal(payload.Amount) && event.OccurredAt.Equal(payload.OccurredAt)
			})).
			Return(true, nil)
		c, rec := pushRequest(t, orderDomainEvent(t, constants.EventOrderStatusChanged, payload), nil)

		require.NoError(t, h.HandlePush(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failure is retried", func(t *testing.T) {
		h, summaryUC := newTestPushHandler(t, nil)
		summaryUC.EXPECT().ApplyOrderEvent(mock.Anything, mock.Anything).Return(false, errors.New("connection reset"))
		c, rec := pushRequest(t, orderDomainEvent(t, constants.EventOrderCreated, payload), nil)

		require.NoError(t, h.HandlePush(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("invalid event is dropped", func(t *testing.T) {
		h, summaryUC := newTestPushHandler(t, nil)
		summaryUC.EXPECT().ApplyOrderEvent(mock.Anything, mock.Anything).
			Return(false, errors.Wrap(domainerrors.ErrValidationFailed, "amount cannot be negative"))
		c, rec := pushRequest(t, orderDomainEvent(t, constants.EventOrderCreated, payload), nil)

		require.NoError(t, h.HandlePush(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other event types are acknowledged", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)
		event, err := service.NewDomainEvent(constants.EventBusinessRegistered, "", map[string]string{"name": "x"}, time.Now())
		require.NoError(t, err)
		c, rec := pushRequest(t, event, nil)

		require.NoError(t, h.HandlePush(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)
		c, rec := rawPushRequest(`{"message":{"data":"%%%"}}`)

		require.NoError(t, h.HandlePush(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects unverified push in production", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = "production"
		h, _ := newTestPushHandler(t, cfg)
		h.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }
		c, rec := pushRequest(t, orderDomainEvent(t, constants.EventOrderCreated, payload), nil)

		require.NoError(t, h.HandlePush(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)
	event := &service.DomainEvent{RequestID: "from-event"}

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(t.Context(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(t.Context(), &msg, event))

	generated := h.extractRequestID(t.Context(), &msg, &service.DomainEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
