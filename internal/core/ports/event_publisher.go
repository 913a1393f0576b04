package ports

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// EventPublisher emits committed lifecycle events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event shipment.Event) error
}
