package events

import (
	"context"
	"log/slog"

	"courierdispatch/internal/core/ports"
)

// LogPublisher writes events to the log. It stands in for MQTTPublisher when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher writing through logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "event_publisher")}
}

// Publish logs the event at info level. It never fails.
func (p *LogPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	p.logger.InfoContext(ctx, "order event",
		"type", string(event.Type),
		"order_id", event.OrderID.String(),
		"courier_id", event.CourierID.String(),
	)
	return nil
}

// LoggingPublisher logs and swallows delivery failures of the wrapped publisher.
type LoggingPublisher struct {
	next   ports.EventPublisher
	logger *slog.Logger
}

// NewLoggingPublisher wraps next so that delivery failures are logged instead of returned.
func NewLoggingPublisher(next ports.EventPublisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger.With("component", "event_publisher")}
}

// Publish forwards the event to the wrapped publisher and always returns nil.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	if err := p.next.Publish(ctx, event); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish order event",
			"type", string(event.Type),
			"order_id", event.OrderID.String(),
			"error", err,
		)
	}
	return nil
}
