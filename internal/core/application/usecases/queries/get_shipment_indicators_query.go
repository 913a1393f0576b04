package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetShipmentIndicatorsQueryIsNotConstructed = errors.New(
	"GetShipmentIndicatorsQuery must be created via NewGetShipmentIndicatorsQuery constructor",
)

// GetShipmentIndicatorsQuery computes the dashboard totals over all shipments.
type GetShipmentIndicatorsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetShipmentIndicatorsQuery() GetShipmentIndicatorsQuery {
	return GetShipmentIndicatorsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetShipmentIndicatorsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentIndicatorsQueryIsNotConstructed)
}

// ShipmentIndicators are aggregate counters. StatusCounts always sums to
// TotalShipments; a null weight counts as zero.
type ShipmentIndicators struct {
	TotalShipments int64            `json:"totalShipments"`
	StatusCounts   map[string]int64 `json:"statusCounts"`
	TotalWeight    float64          `json:"totalWeight"`
}
