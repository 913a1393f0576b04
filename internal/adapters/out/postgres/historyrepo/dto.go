// Package historyrepo persists the append-only shipment records: status history
// entries and delivery metrics.
package historyrepo

import (
	"time"

	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/shipment"
)

// EntryDTO represents a row of shipment_status_history.
type EntryDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64  `gorm:"index"`
	Status     string `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
}

func (EntryDTO) TableName() string {
	return "shipment_status_history"
}

// DeliveryMetricDTO represents a row of shipment_metrics.
type DeliveryMetricDTO struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	ShipmentID          int64 `gorm:"index"`
	DeliveryTimeMinutes int
	CreatedAt           time.Time
}

func (DeliveryMetricDTO) TableName() string {
	return "shipment_metrics"
}

func entryFromDomain(e *history.Entry) EntryDTO {
	return EntryDTO{
		ShipmentID: e.ShipmentID(),
		Status:     e.Status().String(),
	}
}

func entryToDomain(dto EntryDTO) *history.Entry {
	return history.RestoreEntry(dto.ID, dto.ShipmentID, shipment.Status(dto.Status), dto.CreatedAt)
}

func metricFromDomain(m *history.DeliveryMetric) DeliveryMetricDTO {
	return DeliveryMetricDTO{
		ShipmentID:          m.ShipmentID(),
		DeliveryTimeMinutes: m.DeliveryTimeMinutes(),
	}
}

func metricToDomain(dto DeliveryMetricDTO) *history.DeliveryMetric {
	return history.RestoreDeliveryMetric(dto.ID, dto.ShipmentID, dto.DeliveryTimeMinutes, dto.CreatedAt)
}
