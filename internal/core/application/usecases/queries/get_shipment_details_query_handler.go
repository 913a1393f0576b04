package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentDetailsQueryHandler reads the details aggregate straight from the store.
// It is usually fronted by CachedGetShipmentDetailsQueryHandler.
type GetShipmentDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentDetailsQueryHandler(db *gorm.DB) GetShipmentDetailsQueryHandler {
	return GetShipmentDetailsQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the shipment does not exist.
func (h GetShipmentDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentDetailsQuery,
) (ShipmentDetails, error) {
	if err := query.Validate(); err != nil {
		return ShipmentDetails{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []shipmentRow
	err := db.Raw(`SELECT `+shipmentColumns+` FROM shipments WHERE id = ?`, query.ShipmentID()).
		Scan(&rows).Error
	if err != nil {
		return ShipmentDetails{}, err
	}
	if len(rows) == 0 {
		return ShipmentDetails{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
	}

	history := make([]HistoryEntryView, 0)
	err = db.Raw(`
		SELECT id, shipment_id, status, created_at
		FROM shipment_status_history
		WHERE shipment_id = ?
		ORDER BY id
	`, query.ShipmentID()).Scan(&history).Error
	if err != nil {
		return ShipmentDetails{}, err
	}

	metrics := make([]DeliveryMetricView, 0)
	err = db.Raw(`
		SELECT id, shipment_id, delivery_time_minutes, created_at
		FROM shipment_metrics
		WHERE shipment_id = ?
		ORDER BY id
	`, query.ShipmentID()).Scan(&metrics).Error
	if err != nil {
		return ShipmentDetails{}, err
	}

	return ShipmentDetails{
		ShipmentView: rows[0].view(),
		History:      history,
		Metrics:      metrics,
	}, nil
}
