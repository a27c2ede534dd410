package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/service"
)

// publishEvent sends a domain event without failing the calling operation. The
// write it describes is already committed, so a publish failure is only logged.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, payload any, at time.Time) {
	if publisher == nil {
		return
	}

	event, err := service.NewDomainEvent(eventType, deliverycontext.GetRequestIDFromContext(ctx), payload, at)
	if err != nil {
		logger.Error("Failed to encode domain event", slog.String("event_type", eventType), slog.Any("error", err))

		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_type", eventType),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Published domain event", slog.String("event_type", eventType), slog.String("event_id", event.ID))
}
