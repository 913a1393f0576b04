package queries

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrFindShipmentsQueryIsNotConstructed = errors.New(
	"FindShipmentsQuery must be created via NewFindShipmentsQuery constructor",
)

// FindShipmentsQuery filters shipments by id, owner, both or neither. With no
// filter it lists every shipment.
//
// Example:
//
//	ownerID := int64(7)
//	query, err := NewFindShipmentsQuery(nil, &ownerID)
type FindShipmentsQuery struct {
	id     *int64
	userID *int64
	guard  guard.ConstructorGuard
}

func NewFindShipmentsQuery(id, userID *int64) (FindShipmentsQuery, error) {
	if id != nil && *id <= 0 {
		return FindShipmentsQuery{}, errs.NewValueIsInvalidError("id")
	}
	if userID != nil && *userID <= 0 {
		return FindShipmentsQuery{}, errs.NewValueIsInvalidError("userId")
	}

	return FindShipmentsQuery{
		id:     id,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q FindShipmentsQuery) ID() *int64 {
	return q.id
}

func (q FindShipmentsQuery) UserID() *int64 {
	return q.userID
}

func (q FindShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrFindShipmentsQueryIsNotConstructed)
}
