package commands

import (
	"context"

	"logistics/internal/core/domain/model/history"
)

// AppendStatusHistoryCommandHandler appends history entries on behalf of callers.
type AppendStatusHistoryCommandHandler struct {
	uowFactory HistoryUoWFactory
}

func NewAppendStatusHistoryCommandHandler(uowFactory HistoryUoWFactory) AppendStatusHistoryCommandHandler {
	return AppendStatusHistoryCommandHandler{uowFactory: uowFactory}
}

// Handle returns the stored entry. An unknown shipment yields errs.ObjectNotFoundError.
func (h AppendStatusHistoryCommandHandler) Handle(
	ctx context.Context,
	cmd AppendStatusHistoryCommand,
) (*history.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	entry, err := history.NewEntry(cmd.ShipmentID(), cmd.Status())
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

	repo := uow.HistoryRepository()
	id, err := repo.Append(ctx, entry)
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
