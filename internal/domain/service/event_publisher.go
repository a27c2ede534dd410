package service

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// DomainEvent is the envelope carried on the event topic. Data holds the
// JSON encoding of the payload matching Type.
type DomainEvent struct {
	ID         string          `json:"id"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// BusinessRegistered is the payload of a business.registered event.
type BusinessRegistered struct {
	BusinessID uuid.UUID           `json:"business_id"`
	Type       entity.BusinessType `json:"business_type"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
}

// NewDomainEvent wraps payload into an envelope of the given type.
func NewDomainEvent(eventType, requestID string, payload any, at time.Time) (*DomainEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &DomainEvent{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		Type:       eventType,
		OccurredAt: at,
		Data:       data,
	}, nil
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a domain event for async processing
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
