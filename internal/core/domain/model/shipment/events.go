package shipment

import "time"

// EventType names a lifecycle fact. Values double as message types on the event stream.
type EventType string

const (
	EventCreated       EventType = "shipment.created"
	EventStatusChanged EventType = "shipment.status_changed"
	EventDelivered     EventType = "shipment.delivered"
)

// Event is a committed lifecycle change, published best-effort to downstream consumers.
type Event struct {
	Type       EventType `json:"type"`
	ShipmentID int64     `json:"shipmentId"`
	TrackingID string    `json:"trackingId"`
	UserID     int64     `json:"userId"`
	Status     Status    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewEvent snapshots s for an event of type t.
func NewEvent(t EventType, s *Shipment, occurredAt time.Time) Event {
	return Event{
		Type:       t,
		ShipmentID: s.ID(),
		TrackingID: s.TrackingID().String(),
		UserID:     s.UserID(),
		Status:     s.Status(),
		OccurredAt: occurredAt.UTC(),
	}
}
