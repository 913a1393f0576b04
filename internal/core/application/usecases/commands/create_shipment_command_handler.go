package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// MaxTrackingIDAttempts bounds how many fresh tracking ids a create tries before
// giving up on unique-index collisions.
const MaxTrackingIDAttempts = 3

var ErrAddressIsIncomplete = errors.New("address validation reported the address as incomplete")

// CreateShipmentCommandHandler registers shipments. The destination is checked with the
// address provider first; nothing is written unless the provider accepts it.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, validator, effects)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // rejected address, answer 400
//	}
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	validator  ports.AddressValidator
	effects    *LifecycleEffects
}

func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	validator ports.AddressValidator,
	effects *LifecycleEffects,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		effects:    effects,
	}
}

// Handle validates the address, persists the shipment as WAITING together with its
// first history entry and returns the stored record. The owner notification and the
// shipment.created event are dispatched after commit.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	verdict, err := h.validator.Validate(ctx, cmd.Destination())
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("destinationAddress", err)
	}
	if !verdict.IsValid {
		return nil, errs.NewValueIsInvalidErrorWithCause("destinationAddress", ErrAddressIsIncomplete)
	}

	for attempt := 1; ; attempt++ {
		created, err := h.create(ctx, cmd, verdict.Normalized)
		if errors.Is(err, shipment.ErrTrackingIDTaken) && attempt < MaxTrackingIDAttempts {
			continue
		}
		if err != nil {
			return nil, err
		}

		h.effects.Dispatch(ctx, services.TriggerCreated, shipment.EventCreated, created)
		return created, nil
	}
}

func (h CreateShipmentCommandHandler) create(
	ctx context.Context,
	cmd CreateShipmentCommand,
	normalized *kernel.Address,
) (*shipment.Shipment, error) {
	s, err := shipment.NewShipment(
		kernel.NewTrackingID(),
		cmd.UserID(),
		cmd.Weight(),
		cmd.Dimensions(),
		cmd.ProductType(),
		cmd.Destination(),
		normalized,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	id, err := shipmentRepo.Add(ctx, s)
	if err != nil {
		return nil, err
	}

	entry, err := history.NewEntry(id, s.Status())
	if err != nil {
		return nil, err
	}
	if _, err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	stored, err := shipmentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
