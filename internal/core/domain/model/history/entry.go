package history

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry records that a shipment entered a status. Entries are append-only and ordered
// by their store-assigned id.
type Entry struct {
	id         int64
	shipmentID int64
	status     shipment.Status
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates an unsaved history entry.
func NewEntry(shipmentID int64, status shipment.Status) (*Entry, error) {
	e := &Entry{guard: guard.NewConstructorGuard()}
	if err := errors.Join(e.setShipmentID(shipmentID), e.setStatus(status)); err != nil {
		return nil, err
	}
	return e, nil
}

// RestoreEntry rebuilds a persisted entry.
func RestoreEntry(id, shipmentID int64, status shipment.Status, createdAt time.Time) *Entry {
	return &Entry{
		id:         id,
		shipmentID: shipmentID,
		status:     status,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() int64 {
	return e.id
}

func (e *Entry) ShipmentID() int64 {
	return e.shipmentID
}

func (e *Entry) Status() shipment.Status {
	return e.status
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setShipmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", fmt.Errorf("%d is not a shipment id", id))
	}
	e.shipmentID = id
	return nil
}

func (e *Entry) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
