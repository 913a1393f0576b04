package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// CreateRouteAssignmentCommandHandler stores shipment/route links. Unknown shipments or
// routes are rejected by the store as errs.ValueIsInvalidError.
type CreateRouteAssignmentCommandHandler struct {
	uowFactory RouteAssignmentUoWFactory
}

func NewCreateRouteAssignmentCommandHandler(uowFactory RouteAssignmentUoWFactory) CreateRouteAssignmentCommandHandler {
	return CreateRouteAssignmentCommandHandler{uowFactory: uowFactory}
}

func (h CreateRouteAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRouteAssignmentCommand,
) (*route.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	assignment, err := route.NewAssignment(cmd.ShipmentID(), cmd.RouteID())
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

	repo := uow.RouteAssignmentRepository()
	id, err := repo.Add(ctx, assignment)
	if err != nil {
		return nil, err
	}

	stored, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
