package ports

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

type RouteAssignmentRepository interface {
	// Add links a shipment to a route and returns the link id. A missing shipment or
	// route is reported as errs.ValueIsInvalidError.
	Add(ctx context.Context, assignment *route.Assignment) (int64, error)

	Get(ctx context.Context, id int64) (*route.Assignment, error)
}
