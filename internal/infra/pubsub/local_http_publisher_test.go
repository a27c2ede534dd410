package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event, err := service.NewDomainEvent(constants.EventOrderCreated, "req-1", map[string]string{"orderId": "o-1"}, time.Now())
	require.NoError(t, err)

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.ID, received.Message.MessageID)
	assert.Equal(t, constants.EventOrderCreated, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, constants.EventOrderCreated, decoded.Type)
	assert.JSONEq(t, `{"orderId":"o-1"}`, string(decoded.Data))
}

func TestLocalHTTPPublisher_PublishNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	event, err := service.NewDomainEvent(constants.EventBusinessRegistered, "", struct{}{}, time.Now())
	require.NoError(t, err)

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err = publisher.Publish(context.Background(), event)
	assert.ErrorContains(t, err, "non-success status: 503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}
	event, err := service.NewDomainEvent(constants.EventOrderStatusChanged, "", struct{}{}, time.Now())
	require.NoError(t, err)

	assert.NoError(t, publisher.Publish(context.Background(), event))
	assert.NoError(t, publisher.Close())
}
