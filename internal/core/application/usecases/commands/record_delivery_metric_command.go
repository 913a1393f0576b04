package commands

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrRecordDeliveryMetricCommandIsNotConstructed = errors.New(
		"RecordDeliveryMetricCommand must be created via NewRecordDeliveryMetricCommand constructor",
	)
	ErrRecordMissingDeliveryMetricsCommandIsNotConstructed = errors.New(
		"RecordMissingDeliveryMetricsCommand must be created via NewRecordMissingDeliveryMetricsCommand constructor",
	)
)

// RecordDeliveryMetricCommand stores how long a shipment took to deliver.
type RecordDeliveryMetricCommand struct {
	shipmentID          int64
	deliveryTimeMinutes int

	guard guard.ConstructorGuard
}

func NewRecordDeliveryMetricCommand(shipmentID int64, deliveryTimeMinutes int) (RecordDeliveryMetricCommand, error) {
	var idErr, minutesErr error
	if shipmentID <= 0 {
		idErr = errs.NewValueIsRequiredErrorWithCause("shipmentId", fmt.Errorf("%d is not a shipment id", shipmentID))
	}
	if deliveryTimeMinutes < 0 {
		minutesErr = errs.NewValueIsOutOfRangeError("deliveryTimeMinutes", deliveryTimeMinutes, 0, "unbounded")
	}
	if err := errors.Join(idErr, minutesErr); err != nil {
		return RecordDeliveryMetricCommand{}, err
	}

	return RecordDeliveryMetricCommand{
		shipmentID:          shipmentID,
		deliveryTimeMinutes: deliveryTimeMinutes,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (c RecordDeliveryMetricCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryMetricCommandIsNotConstructed)
}

func (c RecordDeliveryMetricCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c RecordDeliveryMetricCommand) DeliveryTimeMinutes() int {
	return c.deliveryTimeMinutes
}

// RecordMissingDeliveryMetricsCommand backfills metrics for delivered shipments,
// at most batchSize per run.
type RecordMissingDeliveryMetricsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRecordMissingDeliveryMetricsCommand(batchSize int) (RecordMissingDeliveryMetricsCommand, error) {
	if batchSize <= 0 {
		return RecordMissingDeliveryMetricsCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	return RecordMissingDeliveryMetricsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RecordMissingDeliveryMetricsCommand) Validate() error {
	return c.guard.Validate(ErrRecordMissingDeliveryMetricsCommandIsNotConstructed)
}

func (c RecordMissingDeliveryMetricsCommand) BatchSize() int {
	return c.batchSize
}
