package commands

import (
	"context"

	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// MarkShipmentDeliveredCommandHandler completes deliveries. The status change is a
// single conditional update, so of two concurrent calls exactly one succeeds.
//
// Example:
//
//	delivered, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown shipment
//	case errors.Is(err, errs.ErrStateIsInvalid):
//	    // not in transit, or already delivered
//	}
type MarkShipmentDeliveredCommandHandler struct {
	uowFactory ShipmentUoWFactory
	effects    *LifecycleEffects
}

func NewMarkShipmentDeliveredCommandHandler(
	uowFactory ShipmentUoWFactory,
	effects *LifecycleEffects,
) MarkShipmentDeliveredCommandHandler {
	return MarkShipmentDeliveredCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

func (h MarkShipmentDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkShipmentDeliveredCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	moved, err := shipmentRepo.TransitionStatus(ctx, cmd.ShipmentID(), shipment.InTransit, shipment.Delivered)
	if err != nil {
		return nil, err
	}
	if !moved {
		current, getErr := shipmentRepo.Get(ctx, cmd.ShipmentID())
		if getErr != nil {
			return nil, getErr
		}
		if _, deliverErr := current.Status().Deliver(); deliverErr != nil {
			return nil, deliverErr
		}
		return nil, errs.NewStateIsInvalidError("status", current.Status())
	}

	entry, err := history.NewEntry(cmd.ShipmentID(), shipment.Delivered)
	if err != nil {
		return nil, err
	}
	if _, err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	delivered, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.Dispatch(ctx, services.TriggerDelivered, shipment.EventDelivered, delivered)
	return delivered, nil
}
