package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a new shipment for a user.
//
// Example:
//
//	dest, _ := kernel.NewAddress("US", "Austin", "TX", "78701", []string{"100 Congress Ave"})
//	cmd, err := NewCreateShipmentCommand(7, 2.5, "30x20x10", "books", dest)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	userID      int64
	weight      float64
	dimensions  string
	productType string
	destination kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the owner, a positive weight and a constructed
// destination address.
func NewCreateShipmentCommand(
	userID int64,
	weight float64,
	dimensions string,
	productType string,
	destination kernel.Address,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		dimensions:  dimensions,
		productType: productType,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setWeight(weight),
		cmd.setDestination(destination),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) UserID() int64 {
	return c.userID
}

func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

func (c CreateShipmentCommand) Dimensions() string {
	return c.dimensions
}

func (c CreateShipmentCommand) ProductType() string {
	return c.productType
}

func (c CreateShipmentCommand) Destination() kernel.Address {
	return c.destination
}

func (c *CreateShipmentCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("userId", fmt.Errorf("%d is not a user id", userID))
	}
	c.userID = userID
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", weight))
	}
	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destinationAddress", err)
	}
	c.destination = destination
	return nil
}
