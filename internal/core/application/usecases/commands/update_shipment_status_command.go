package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand sets an explicit status on a shipment. Custom statuses
// are allowed; only IN_TRANSIT notifies the owner.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64
	status     shipment.Status

	guard guard.ConstructorGuard
}

func NewUpdateShipmentStatusCommand(shipmentID int64, status string) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *UpdateShipmentStatusCommand) setShipmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("id", fmt.Errorf("%d is not a shipment id", id))
	}
	c.shipmentID = id
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatus(status string) error {
	parsed, err := shipment.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
