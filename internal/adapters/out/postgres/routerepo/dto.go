// Package routerepo persists the links between shipments and delivery routes.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/route"
)

// RouteDTO represents a row of routes. Routes are provisioned by the planning system;
// the service reads them only through the assignment foreign key.
type RouteDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (RouteDTO) TableName() string {
	return "routes"
}

// AssignmentDTO represents a row of route_assignments.
type AssignmentDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64 `gorm:"index"`
	RouteID    int64
	CreatedAt  time.Time
}

func (AssignmentDTO) TableName() string {
	return "route_assignments"
}

func toDomain(dto AssignmentDTO) *route.Assignment {
	return route.RestoreAssignment(dto.ID, dto.ShipmentID, dto.RouteID, dto.CreatedAt)
}
