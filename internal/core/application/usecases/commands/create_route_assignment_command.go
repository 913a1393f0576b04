package commands

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateRouteAssignmentCommandIsNotConstructed = errors.New(
		"CreateRouteAssignmentCommand must be created via NewCreateRouteAssignmentCommand constructor",
	)
)

// CreateRouteAssignmentCommand links a shipment to a delivery route.
type CreateRouteAssignmentCommand struct {
	shipmentID int64
	routeID    int64

	guard guard.ConstructorGuard
}

func NewCreateRouteAssignmentCommand(shipmentID, routeID int64) (CreateRouteAssignmentCommand, error) {
	var shipmentErr, routeErr error
	if shipmentID <= 0 {
		shipmentErr = errs.NewValueIsRequiredErrorWithCause("shipmentId", fmt.Errorf("%d is not a shipment id", shipmentID))
	}
	if routeID <= 0 {
		routeErr = errs.NewValueIsRequiredErrorWithCause("routeId", fmt.Errorf("%d is not a route id", routeID))
	}
	if err := errors.Join(shipmentErr, routeErr); err != nil {
		return CreateRouteAssignmentCommand{}, err
	}

	return CreateRouteAssignmentCommand{
		shipmentID: shipmentID,
		routeID:    routeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteAssignmentCommandIsNotConstructed)
}

func (c CreateRouteAssignmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c CreateRouteAssignmentCommand) RouteID() int64 {
	return c.routeID
}
