// Package ports defines the contracts between the logistics core and its adapters:
// repositories, the unit of work, and the external collaborators (address validation,
// email, event stream, cache backend). Implementations live under internal/adapters.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Lookups of absent ids return an errs.ObjectNotFoundError.
type ShipmentRepository interface {
	// Add persists a new shipment and returns the store-assigned id.
	// A tracking id collision is reported as shipment.ErrTrackingIDTaken.
	Add(ctx context.Context, aggregate *shipment.Shipment) (int64, error)

	// Get retrieves a shipment by id.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// UpdateStatus unconditionally sets the status. Returns errs.ObjectNotFoundError
	// when no row was affected.
	UpdateStatus(ctx context.Context, id int64, status shipment.Status) error

	// TransitionStatus sets the status to `to` only if it currently equals `from`,
	// as one atomic statement. It reports whether a row changed; it never returns
	// a not-found error, callers disambiguate with Get.
	//
	// Example:
	//   ok, err := repo.TransitionStatus(ctx, id, shipment.InTransit, shipment.Delivered)
	TransitionStatus(ctx context.Context, id int64, from, to shipment.Status) (bool, error)

	// Delete removes the shipment; dependent history, metrics and route assignments
	// are removed by the store. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error
}
