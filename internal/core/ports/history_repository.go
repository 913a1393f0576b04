package ports

import (
	"context"

	"logistics/internal/core/domain/model/history"
)

// HistoryRepository is the append-only store of status history entries.
type HistoryRepository interface {
	// Append inserts the entry and returns its id. An unknown shipment is reported
	// as errs.ObjectNotFoundError.
	Append(ctx context.Context, entry *history.Entry) (int64, error)

	// Get retrieves an entry by id.
	Get(ctx context.Context, id int64) (*history.Entry, error)

	// ListByShipment returns a shipment's entries in insertion order.
	ListByShipment(ctx context.Context, shipmentID int64) ([]*history.Entry, error)
}
