package historyrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryMetricRepository implements ports.DeliveryMetricRepository using GORM.
type GormDeliveryMetricRepository struct {
	db *gorm.DB
}

func NewGormDeliveryMetricRepository(db *gorm.DB) *GormDeliveryMetricRepository {
	return &GormDeliveryMetricRepository{db: db}
}

func (r *GormDeliveryMetricRepository) Add(ctx context.Context, metric *history.DeliveryMetric) (int64, error) {
	if err := metric.Validate(); err != nil {
		return 0, err
	}

	dto := metricFromDomain(metric)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, errs.NewObjectNotFoundErrorWithCause("shipment", dto.ShipmentID, err)
		}
		return 0, fmt.Errorf("historyrepo.AddMetric: %w", err)
	}

	return dto.ID, nil
}

func (r *GormDeliveryMetricRepository) Get(ctx context.Context, id int64) (*history.DeliveryMetric, error) {
	var dto DeliveryMetricDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery metric", id)
		}
		return nil, fmt.Errorf("historyrepo.GetMetric: %w", err)
	}

	return metricToDomain(dto), nil
}

func (r *GormDeliveryMetricRepository) ListByShipment(
	ctx context.Context,
	shipmentID int64,
) ([]*history.DeliveryMetric, error) {
	var dtos []DeliveryMetricDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("historyrepo.ListMetricsByShipment: %w", err)
	}

	metrics := make([]*history.DeliveryMetric, 0, len(dtos))
	for _, dto := range dtos {
		metrics = append(metrics, metricToDomain(dto))
	}
	return metrics, nil
}

// FindUnmeasuredDeliveries lists delivered shipments lacking a metric, oldest id first.
func (r *GormDeliveryMetricRepository) FindUnmeasuredDeliveries(
	ctx context.Context,
	limit int,
) ([]ports.UnmeasuredDelivery, error) {
	type row struct {
		ShipmentID  int64
		CreatedAt   time.Time
		DeliveredAt time.Time
	}

	var rows []row
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id AS shipment_id,
			s.created_at,
			MIN(h.created_at) AS delivered_at
		FROM shipments s
		JOIN shipment_status_history h
			ON h.shipment_id = s.id AND h.status = ?
		WHERE NOT EXISTS (
			SELECT 1 FROM shipment_metrics m WHERE m.shipment_id = s.id
		)
		GROUP BY s.id, s.created_at
		ORDER BY s.id
		LIMIT ?
	`, shipment.Delivered.String(), limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("historyrepo.FindUnmeasuredDeliveries: %w", err)
	}

	result := make([]ports.UnmeasuredDelivery, 0, len(rows))
	for _, r := range rows {
		result = append(result, ports.UnmeasuredDelivery{
			ShipmentID:  r.ShipmentID,
			CreatedAt:   r.CreatedAt,
			DeliveredAt: r.DeliveredAt,
		})
	}
	return result, nil
}
