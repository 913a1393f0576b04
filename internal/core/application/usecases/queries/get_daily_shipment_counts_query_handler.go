package queries

import (
	"context"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"gorm.io/gorm"
)

type GetDailyShipmentCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetDailyShipmentCountsQueryHandler(db *gorm.DB) GetDailyShipmentCountsQueryHandler {
	return GetDailyShipmentCountsQueryHandler{db: db}
}

// Handle groups shipments by the calendar date of created_at, newest day first.
// Days without shipments are omitted.
func (h GetDailyShipmentCountsQueryHandler) Handle(
	ctx context.Context,
	query GetDailyShipmentCountsQuery,
) ([]DailyShipmentCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		Day   time.Time
		Count int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT created_at::date AS day, COUNT(*) AS count
		FROM shipments
		GROUP BY day
		ORDER BY day DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]DailyShipmentCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, DailyShipmentCount{
			Date:  openapi_types.Date{Time: row.Day},
			Count: row.Count,
		})
	}
	return counts, nil
}
