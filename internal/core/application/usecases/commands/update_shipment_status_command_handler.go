package commands

import (
	"context"

	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// UpdateShipmentStatusCommandHandler applies explicit status updates and records each
// one in the shipment's history.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	effects    *LifecycleEffects
}

func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	effects *LifecycleEffects,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle returns errs.ObjectNotFoundError for an unknown id. After commit it schedules
// the shipment.status_changed event and, for IN_TRANSIT, one owner notification.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
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
	if err := shipmentRepo.UpdateStatus(ctx, cmd.ShipmentID(), cmd.Status()); err != nil {
		return nil, err
	}

	entry, err := history.NewEntry(cmd.ShipmentID(), cmd.Status())
	if err != nil {
		return nil, err
	}
	if _, err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	updated, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.Dispatch(ctx, services.TriggerStatusUpdated, shipment.EventStatusChanged, updated)
	return updated, nil
}
