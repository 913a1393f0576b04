package history

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeliveryMetricIsNotConstructed = errors.New(
	"DeliveryMetric must be created via NewDeliveryMetric or RestoreDeliveryMetric")

// DeliveryMetric records how long a shipment took from creation to delivery.
type DeliveryMetric struct {
	id                  int64
	shipmentID          int64
	deliveryTimeMinutes int
	createdAt           time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryMetric creates an unsaved metric; minutes must not be negative.
func NewDeliveryMetric(shipmentID int64, deliveryTimeMinutes int) (*DeliveryMetric, error) {
	m := &DeliveryMetric{guard: guard.NewConstructorGuard()}

	var shipmentErr, minutesErr error
	if shipmentID <= 0 {
		shipmentErr = errs.NewValueIsRequiredErrorWithCause("shipmentId", fmt.Errorf("%d is not a shipment id", shipmentID))
	}
	if deliveryTimeMinutes < 0 {
		minutesErr = errs.NewValueIsOutOfRangeError("deliveryTimeMinutes", deliveryTimeMinutes, 0, "unbounded")
	}
	if err := errors.Join(shipmentErr, minutesErr); err != nil {
		return nil, err
	}

	m.shipmentID = shipmentID
	m.deliveryTimeMinutes = deliveryTimeMinutes
	return m, nil
}

// RestoreDeliveryMetric rebuilds a persisted metric.
func RestoreDeliveryMetric(id, shipmentID int64, deliveryTimeMinutes int, createdAt time.Time) *DeliveryMetric {
	return &DeliveryMetric{
		id:                  id,
		shipmentID:          shipmentID,
		deliveryTimeMinutes: deliveryTimeMinutes,
		createdAt:           createdAt,
		guard:               guard.NewConstructorGuard(),
	}
}

// DeliveryTimeMinutes returns the whole minutes elapsed between createdAt and
// deliveredAt, never negative.
//
// Example:
//
//	minutes := history.DeliveryTimeMinutes(s.CreatedAt(), deliveredEntry.CreatedAt())
func DeliveryTimeMinutes(createdAt, deliveredAt time.Time) int {
	d := deliveredAt.Sub(createdAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

func (m *DeliveryMetric) Validate() error {
	if m == nil {
		return ErrDeliveryMetricIsNotConstructed
	}
	return m.guard.Validate(ErrDeliveryMetricIsNotConstructed)
}

func (m *DeliveryMetric) ID() int64 {
	return m.id
}

func (m *DeliveryMetric) ShipmentID() int64 {
	return m.shipmentID
}

func (m *DeliveryMetric) DeliveryTimeMinutes() int {
	return m.deliveryTimeMinutes
}

func (m *DeliveryMetric) CreatedAt() time.Time {
	return m.createdAt
}
