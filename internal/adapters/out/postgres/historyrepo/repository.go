package historyrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/history"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append inserts a history entry. The shipment foreign key rejects unknown shipments.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *history.Entry) (int64, error) {
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	dto := entryFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, errs.NewObjectNotFoundErrorWithCause("shipment", dto.ShipmentID, err)
		}
		return 0, fmt.Errorf("historyrepo.Append: %w", err)
	}

	return dto.ID, nil
}

func (r *GormHistoryRepository) Get(ctx context.Context, id int64) (*history.Entry, error) {
	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("history entry", id)
		}
		return nil, fmt.Errorf("historyrepo.Get: %w", err)
	}

	return entryToDomain(dto), nil
}

func (r *GormHistoryRepository) ListByShipment(ctx context.Context, shipmentID int64) ([]*history.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("historyrepo.ListByShipment: %w", err)
	}

	entries := make([]*history.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, entryToDomain(dto))
	}
	return entries, nil
}
