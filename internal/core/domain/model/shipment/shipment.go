package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created through
// NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// ErrTrackingIDTaken is reported by stores when a new shipment's tracking id is
// already in use. Callers retry with a fresh id.
var ErrTrackingIDTaken = errors.New("tracking id is already taken")

// Shipment is the aggregate root of the logistics domain.
//
// Shipment follows these invariants:
//   - tracking id, owner and creation time never change after creation
//   - weight is positive for new shipments
//   - the destination address is kept as supplied; the provider's normalized form,
//     when available, is stored alongside it
//   - status is always a valid Status
//
// The identifier is assigned by the store: a new Shipment has ID 0 until it is
// persisted and read back.
type Shipment struct {
	id                int64
	trackingID        kernel.TrackingID
	userID            int64
	weight            float64
	dimensions        string
	productType       string
	destination       kernel.Address
	normalizedAddress *kernel.Address
	status            Status
	createdAt         time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in WAITING status.
//
// Parameters:
//   - trackingID: a freshly generated tracking id
//   - userID: owner of the shipment (must be positive)
//   - weight: package weight (must be positive)
//   - dimensions, productType: free-form descriptions, may be empty
//   - destination: the address as supplied by the caller
//   - normalized: the provider's normalized address, nil if none was returned
//
// Example:
//
//	dest, _ := kernel.NewAddress("US", "Austin", "TX", "78701", []string{"100 Congress Ave"})
//	s, err := shipment.NewShipment(kernel.NewTrackingID(), 7, 2.5, "30x20x10", "books", dest, nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewShipment(
	trackingID kernel.TrackingID,
	userID int64,
	weight float64,
	dimensions string,
	productType string,
	destination kernel.Address,
	normalized *kernel.Address,
) (*Shipment, error) {
	s := &Shipment{
		dimensions:  strings.TrimSpace(dimensions),
		productType: strings.TrimSpace(productType),
		status:      Waiting,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setTrackingID(trackingID),
		s.setUserID(userID),
		s.setWeight(weight),
		s.setDestination(destination),
		s.setNormalizedAddress(normalized),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a persisted shipment. Weight is not re-checked because
// legacy rows may carry no weight (read as 0).
func RestoreShipment(
	id int64,
	trackingID kernel.TrackingID,
	userID int64,
	weight float64,
	dimensions string,
	productType string,
	destination kernel.Address,
	normalized *kernel.Address,
	status Status,
	createdAt time.Time,
) (*Shipment, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", fmt.Errorf("%d is not a stored shipment id", id))
	}
	if err := errors.Join(trackingID.Validate(), destination.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Shipment{
		id:                id,
		trackingID:        trackingID,
		userID:            userID,
		weight:            weight,
		dimensions:        dimensions,
		productType:       productType,
		destination:       destination,
		normalizedAddress: normalized,
		status:            status,
		createdAt:         createdAt,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Shipment was built by one of the constructors.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() int64 {
	return s.id
}

func (s *Shipment) TrackingID() kernel.TrackingID {
	return s.trackingID
}

func (s *Shipment) UserID() int64 {
	return s.userID
}

func (s *Shipment) Weight() float64 {
	return s.weight
}

func (s *Shipment) Dimensions() string {
	return s.dimensions
}

func (s *Shipment) ProductType() string {
	return s.productType
}

// DestinationAddress returns the address as originally supplied.
func (s *Shipment) DestinationAddress() kernel.Address {
	return s.destination
}

// NormalizedAddress returns the provider-normalized address, or nil.
func (s *Shipment) NormalizedAddress() *kernel.Address {
	return s.normalizedAddress
}

func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt is set by the store; it is the zero time for unsaved shipments.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// IsPersisted reports whether the shipment carries a store-assigned id.
func (s *Shipment) IsPersisted() bool {
	return s.id > 0
}

// IsEqual compares shipments by tracking id.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.trackingID.IsEqual(other.trackingID)
}

// ChangeStatus sets an explicit status. Any valid Status is accepted, including
// custom ones and the current status.
func (s *Shipment) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

// MarkDelivered moves an IN_TRANSIT shipment to DELIVERED.
//
// Example:
//
//	if err := s.MarkDelivered(); errors.Is(err, errs.ErrStateIsInvalid) {
//	    // not in transit, or already delivered
//	}
func (s *Shipment) MarkDelivered() error {
	next, err := s.status.Deliver()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

func (s *Shipment) setTrackingID(id kernel.TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.trackingID = id
	return nil
}

func (s *Shipment) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("userId", fmt.Errorf("%d is not a user id", userID))
	}
	s.userID = userID
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", weight))
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setNormalizedAddress(normalized *kernel.Address) error {
	if normalized == nil {
		return nil
	}
	if err := normalized.Validate(); err != nil {
		return err
	}
	s.normalizedAddress = normalized
	return nil
}
