package routerepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteAssignmentRepository implements ports.RouteAssignmentRepository using GORM.
type GormRouteAssignmentRepository struct {
	db *gorm.DB
}

func NewGormRouteAssignmentRepository(db *gorm.DB) *GormRouteAssignmentRepository {
	return &GormRouteAssignmentRepository{db: db}
}

// Add inserts the link. Both ends are checked by foreign keys; a violation means the
// caller referenced a shipment or route that does not exist.
func (r *GormRouteAssignmentRepository) Add(ctx context.Context, assignment *route.Assignment) (int64, error) {
	if err := assignment.Validate(); err != nil {
		return 0, err
	}

	dto := AssignmentDTO{
		ShipmentID: assignment.ShipmentID(),
		RouteID:    assignment.RouteID(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"shipmentId or routeId",
				fmt.Errorf("shipment %d or route %d does not exist", dto.ShipmentID, dto.RouteID),
			)
		}
		return 0, fmt.Errorf("routerepo.Add: %w", err)
	}

	return dto.ID, nil
}

func (r *GormRouteAssignmentRepository) Get(ctx context.Context, id int64) (*route.Assignment, error) {
	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route assignment", id)
		}
		return nil, fmt.Errorf("routerepo.Get: %w", err)
	}

	return toDomain(dto), nil
}
