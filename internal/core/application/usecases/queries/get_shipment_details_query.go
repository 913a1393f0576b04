package queries

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentDetailsQueryIsNotConstructed = errors.New(
	"GetShipmentDetailsQuery must be created via NewGetShipmentDetailsQuery constructor",
)

// GetShipmentDetailsQuery loads one shipment together with its status history and
// delivery metrics.
type GetShipmentDetailsQuery struct {
	shipmentID int64
	guard      guard.ConstructorGuard
}

func NewGetShipmentDetailsQuery(shipmentID int64) (GetShipmentDetailsQuery, error) {
	if shipmentID <= 0 {
		return GetShipmentDetailsQuery{}, errs.NewValueIsInvalidError("shipmentId")
	}

	return GetShipmentDetailsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentDetailsQuery) ShipmentID() int64 {
	return q.shipmentID
}

func (q GetShipmentDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentDetailsQueryIsNotConstructed)
}

// ShipmentDetails is a shipment with its history and metrics, each in insertion order.
type ShipmentDetails struct {
	ShipmentView

	History []HistoryEntryView   `json:"history"`
	Metrics []DeliveryMetricView `json:"metrics"`
}
