package queries

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetShipmentIndicatorsQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentIndicatorsQueryHandler(db *gorm.DB) GetShipmentIndicatorsQueryHandler {
	return GetShipmentIndicatorsQueryHandler{db: db}
}

// Handle reads the totals and the per-status counts from one repeatable-read
// snapshot so that they agree with each other.
func (h GetShipmentIndicatorsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentIndicatorsQuery,
) (ShipmentIndicators, error) {
	if err := query.Validate(); err != nil {
		return ShipmentIndicators{}, err
	}

	indicators := ShipmentIndicators{StatusCounts: make(map[string]int64)}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var totals struct {
			TotalShipments int64
			TotalWeight    decimal.Decimal
		}
		err := tx.Raw(`
			SELECT
				COUNT(*) AS total_shipments,
				COALESCE(SUM(weight), 0) AS total_weight
			FROM shipments
		`).Scan(&totals).Error
		if err != nil {
			return err
		}

		var counts []struct {
			Status string
			Count  int64
		}
		err = tx.Raw(`
			SELECT current_status AS status, COUNT(*) AS count
			FROM shipments
			GROUP BY current_status
		`).Scan(&counts).Error
		if err != nil {
			return err
		}

		indicators.TotalShipments = totals.TotalShipments
		indicators.TotalWeight = totals.TotalWeight.InexactFloat64()
		for _, c := range counts {
			indicators.StatusCounts[c.Status] = c.Count
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return ShipmentIndicators{}, err
	}

	return indicators, nil
}
