// Package route holds the link between a shipment and a delivery route.
package route

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")

// Assignment places a shipment on a route. Routes themselves are provisioned
// outside this service; existence of both ends is enforced by the store.
type Assignment struct {
	id         int64
	shipmentID int64
	routeID    int64
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewAssignment requires both ids to be positive.
func NewAssignment(shipmentID, routeID int64) (*Assignment, error) {
	var shipmentErr, routeErr error
	if shipmentID <= 0 {
		shipmentErr = errs.NewValueIsRequiredErrorWithCause("shipmentId", fmt.Errorf("%d is not a shipment id", shipmentID))
	}
	if routeID <= 0 {
		routeErr = errs.NewValueIsRequiredErrorWithCause("routeId", fmt.Errorf("%d is not a route id", routeID))
	}
	if err := errors.Join(shipmentErr, routeErr); err != nil {
		return nil, err
	}

	return &Assignment{
		shipmentID: shipmentID,
		routeID:    routeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func RestoreAssignment(id, shipmentID, routeID int64, createdAt time.Time) *Assignment {
	return &Assignment{
		id:         id,
		shipmentID: shipmentID,
		routeID:    routeID,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}
}

func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) ID() int64 {
	return a.id
}

func (a *Assignment) ShipmentID() int64 {
	return a.shipmentID
}

func (a *Assignment) RouteID() int64 {
	return a.routeID
}

func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}
