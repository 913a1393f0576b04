package commands

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrMarkShipmentDeliveredCommandIsNotConstructed = errors.New(
		"MarkShipmentDeliveredCommand must be created via NewMarkShipmentDeliveredCommand constructor",
	)
	ErrDeleteShipmentCommandIsNotConstructed = errors.New(
		"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
	)
)

// MarkShipmentDeliveredCommand moves an IN_TRANSIT shipment to DELIVERED.
type MarkShipmentDeliveredCommand struct {
	shipmentID int64

	guard guard.ConstructorGuard
}

func NewMarkShipmentDeliveredCommand(shipmentID int64) (MarkShipmentDeliveredCommand, error) {
	if err := validateShipmentID(shipmentID); err != nil {
		return MarkShipmentDeliveredCommand{}, err
	}
	return MarkShipmentDeliveredCommand{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkShipmentDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkShipmentDeliveredCommandIsNotConstructed)
}

func (c MarkShipmentDeliveredCommand) ShipmentID() int64 {
	return c.shipmentID
}

// DeleteShipmentCommand removes a shipment and, through the schema, its history,
// metrics and route assignments.
type DeleteShipmentCommand struct {
	shipmentID int64

	guard guard.ConstructorGuard
}

func NewDeleteShipmentCommand(shipmentID int64) (DeleteShipmentCommand, error) {
	if err := validateShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}
	return DeleteShipmentCommand{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

func (c DeleteShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

func validateShipmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("id", fmt.Errorf("%d is not a shipment id", id))
	}
	return nil
}
