package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/history"
)

// UnmeasuredDelivery is a delivered shipment with no delivery metric yet.
type UnmeasuredDelivery struct {
	ShipmentID  int64
	CreatedAt   time.Time
	DeliveredAt time.Time
}

// DeliveryMetricRepository is the append-only store of delivery metrics.
type DeliveryMetricRepository interface {
	// Add inserts the metric and returns its id. An unknown shipment is reported
	// as errs.ObjectNotFoundError.
	Add(ctx context.Context, metric *history.DeliveryMetric) (int64, error)

	// Get retrieves a metric by id.
	Get(ctx context.Context, id int64) (*history.DeliveryMetric, error)

	// ListByShipment returns a shipment's metrics in insertion order.
	ListByShipment(ctx context.Context, shipmentID int64) ([]*history.DeliveryMetric, error)

	// FindUnmeasuredDeliveries returns up to limit shipments whose history holds a
	// DELIVERED entry but which have no metric. DeliveredAt is the first such entry.
	FindUnmeasuredDeliveries(ctx context.Context, limit int) ([]UnmeasuredDelivery, error)
}
