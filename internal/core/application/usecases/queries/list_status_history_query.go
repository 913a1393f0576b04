package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrListStatusHistoryQueryIsNotConstructed = errors.New(
	"ListStatusHistoryQuery must be created via NewListStatusHistoryQuery constructor",
)

// ListStatusHistoryQuery lists every history entry across all shipments.
type ListStatusHistoryQuery struct {
	guard guard.ConstructorGuard
}

func NewListStatusHistoryQuery() ListStatusHistoryQuery {
	return ListStatusHistoryQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListStatusHistoryQueryIsNotConstructed)
}
