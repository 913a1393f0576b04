package queries

import (
	"context"

	"gorm.io/gorm"
)

type FindShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewFindShipmentsQueryHandler(db *gorm.DB) FindShipmentsQueryHandler {
	return FindShipmentsQueryHandler{db: db}
}

// Handle returns the matching shipments ordered by id. No match is an empty slice.
func (h FindShipmentsQueryHandler) Handle(ctx context.Context, query FindShipmentsQuery) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("shipments").Select(shipmentColumns)
	if id := query.ID(); id != nil {
		stmt = stmt.Where("id = ?", *id)
	}
	if userID := query.UserID(); userID != nil {
		stmt = stmt.Where("user_id = ?", *userID)
	}

	var rows []shipmentRow
	if err := stmt.Order("id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	shipments := make([]ShipmentView, 0, len(rows))
	for _, row := range rows {
		shipments = append(shipments, row.view())
	}
	return shipments, nil
}
