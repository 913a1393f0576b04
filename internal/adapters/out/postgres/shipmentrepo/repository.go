package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
// The *gorm.DB must be opened with TranslateError enabled so unique violations
// surface as gorm.ErrDuplicatedKey.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add inserts a new shipment and returns its id.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: %s", shipment.ErrTrackingIDTaken, dto.TrackingID)
		}
		return 0, fmt.Errorf("shipmentrepo.Add: %w", err)
	}

	return dto.ID, nil
}

// Get retrieves a shipment by id.
func (r *GormShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, fmt.Errorf("shipmentrepo.Get: %w", err)
	}

	return toDomain(dto)
}

// UpdateStatus sets current_status unconditionally.
func (r *GormShipmentRepository) UpdateStatus(ctx context.Context, id int64, status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", id).
		Update("current_status", status.String())
	if result.Error != nil {
		return fmt.Errorf("shipmentrepo.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id)
	}

	return nil
}

// TransitionStatus runs a single conditional UPDATE so concurrent callers cannot
// both observe `from` and both apply `to`.
func (r *GormShipmentRepository) TransitionStatus(
	ctx context.Context,
	id int64,
	from, to shipment.Status,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND current_status = ?", id, from.String()).
		Update("current_status", to.String())
	if result.Error != nil {
		return false, fmt.Errorf("shipmentrepo.TransitionStatus: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// Delete removes a shipment; the schema cascades to its dependents.
func (r *GormShipmentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("shipmentrepo.Delete: %w", err)
	}
	return nil
}
