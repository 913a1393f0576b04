package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListStatusHistoryQueryHandler struct {
	db *gorm.DB
}

func NewListStatusHistoryQueryHandler(db *gorm.DB) ListStatusHistoryQueryHandler {
	return ListStatusHistoryQueryHandler{db: db}
}

func (h ListStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query ListStatusHistoryQuery,
) ([]HistoryEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]HistoryEntryView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, shipment_id, status, created_at
		FROM shipment_status_history
		ORDER BY id
	`).Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
