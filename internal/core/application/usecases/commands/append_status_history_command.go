package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrAppendStatusHistoryCommandIsNotConstructed = errors.New(
		"AppendStatusHistoryCommand must be created via NewAppendStatusHistoryCommand constructor",
	)
)

// AppendStatusHistoryCommand records a caller-supplied history entry without
// touching the shipment's current status.
type AppendStatusHistoryCommand struct {
	shipmentID int64
	status     shipment.Status

	guard guard.ConstructorGuard
}

func NewAppendStatusHistoryCommand(shipmentID int64, status string) (AppendStatusHistoryCommand, error) {
	var idErr error
	if shipmentID <= 0 {
		idErr = errs.NewValueIsRequiredErrorWithCause("shipmentId", fmt.Errorf("%d is not a shipment id", shipmentID))
	}
	parsed, statusErr := shipment.ParseStatus(status)
	if err := errors.Join(idErr, statusErr); err != nil {
		return AppendStatusHistoryCommand{}, err
	}

	return AppendStatusHistoryCommand{
		shipmentID: shipmentID,
		status:     parsed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AppendStatusHistoryCommand) Validate() error {
	return c.guard.Validate(ErrAppendStatusHistoryCommandIsNotConstructed)
}

func (c AppendStatusHistoryCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c AppendStatusHistoryCommand) Status() shipment.Status {
	return c.status
}
