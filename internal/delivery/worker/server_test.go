package worker

import (
	"context"
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
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorkerServer(t *testing.T) (*workerServer, *mockUsecase.MockPaymentSummaryUsecase) {
	cfg := &config.Config{Accounting: &config.AccountingConfig{FeePercent: 2.5}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	summaryUC := mockUsecase.NewMockPaymentSummaryUsecase(t)

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:           cfg,
		Logger:           logger,
		PaymentSummaryUC: summaryUC,
	})

	return newWorkerServer(cfg, logger, pushHandler), summaryUC
}

func TestWorkerServer_Health(t *testing.T) {
	srv, _ := newTestWorkerServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var status healthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, healthStatus{Status: "ok", Consumer: consumerName, FeePercent: 2.5}, status)
}

func TestWorkerServer_PushCountsInFlight(t *testing.T) {
	srv, summaryUC := newTestWorkerServer(t)

	payload := entity.OrderEvent{
		OrderID:    uuid.New(),
		SellerID:   uuid.New(),
		Status:     entity.OrderPending,
		Amount:     decimal.NewFromInt(40),
		OccurredAt: time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC),
	}
	event, err := service.NewDomainEvent(constants.EventOrderCreated, "req-7", payload, payload.OccurredAt)
	require.NoError(t, err)
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg handler.PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	summaryUC.EXPECT().ApplyOrderEvent(mock.Anything, mock.AnythingOfType("*entity.OrderEvent")).
		RunAndReturn(func(context.Context, *entity.OrderEvent) (bool, error) {
			assert.Equal(t, int64(1), srv.inFlight.Load())
			return true, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), srv.inFlight.Load())
}
