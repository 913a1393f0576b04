// Package queries contains read operations for the shipment dashboards and lookups.
// Handlers read the store directly through SQL and return read models shaped for the
// API: camelCase JSON names, addresses as nested objects, nullable fields as pointers.
package queries

import (
	"time"

	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type AddressView struct {
	RegionCode         string   `json:"regionCode"`
	Locality           string   `json:"locality"`
	AdministrativeArea string   `json:"administrativeArea"`
	PostalCode         string   `json:"postalCode,omitempty"`
	AddressLines       []string `json:"addressLines"`
}

// AddressViewFromDomain maps a domain address to its read model.
func AddressViewFromDomain(a kernel.Address) AddressView {
	return AddressView{
		RegionCode:         a.RegionCode(),
		Locality:           a.Locality(),
		AdministrativeArea: a.AdministrativeArea(),
		PostalCode:         a.PostalCode(),
		AddressLines:       a.AddressLines(),
	}
}

// ShipmentView is the API representation of a shipment.
type ShipmentView struct {
	ID                 int64        `json:"id"`
	TrackingID         string       `json:"trackingId"`
	UserID             int64        `json:"userId"`
	Weight             float64      `json:"weight"`
	Dimensions         string       `json:"dimensions"`
	ProductType        string       `json:"productType"`
	DestinationAddress AddressView  `json:"destinationAddress"`
	NormalizedAddress  *AddressView `json:"normalizedAddress"`
	CurrentStatus      string       `json:"currentStatus"`
	CreatedAt          time.Time    `json:"createdAt"`
}

// ShipmentViewFromDomain renders an aggregate returned by a command.
func ShipmentViewFromDomain(s *shipment.Shipment) ShipmentView {
	view := ShipmentView{
		ID:                 s.ID(),
		TrackingID:         s.TrackingID().String(),
		UserID:             s.UserID(),
		Weight:             s.Weight(),
		Dimensions:         s.Dimensions(),
		ProductType:        s.ProductType(),
		DestinationAddress: AddressViewFromDomain(s.DestinationAddress()),
		CurrentStatus:      s.Status().String(),
		CreatedAt:          s.CreatedAt(),
	}
	if n := s.NormalizedAddress(); n != nil {
		normalized := AddressViewFromDomain(*n)
		view.NormalizedAddress = &normalized
	}
	return view
}

type HistoryEntryView struct {
	ID         int64     `json:"id"`
	ShipmentID int64     `json:"shipmentId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func HistoryEntryViewFromDomain(e *history.Entry) HistoryEntryView {
	return HistoryEntryView{
		ID:         e.ID(),
		ShipmentID: e.ShipmentID(),
		Status:     e.Status().String(),
		CreatedAt:  e.CreatedAt(),
	}
}

type DeliveryMetricView struct {
	ID                  int64     `json:"id"`
	ShipmentID          int64     `json:"shipmentId"`
	DeliveryTimeMinutes int       `json:"deliveryTimeMinutes"`
	CreatedAt           time.Time `json:"createdAt"`
}

func DeliveryMetricViewFromDomain(m *history.DeliveryMetric) DeliveryMetricView {
	return DeliveryMetricView{
		ID:                  m.ID(),
		ShipmentID:          m.ShipmentID(),
		DeliveryTimeMinutes: m.DeliveryTimeMinutes(),
		CreatedAt:           m.CreatedAt(),
	}
}

func addressViewFromStored(a shipmentrepo.AddressDTO) AddressView {
	lines := a.AddressLines
	if lines == nil {
		lines = []string{}
	}
	return AddressView{
		RegionCode:         a.RegionCode,
		Locality:           a.Locality,
		AdministrativeArea: a.AdministrativeArea,
		PostalCode:         a.PostalCode,
		AddressLines:       lines,
	}
}

// shipmentRow is one scanned row of the shipments table.
type shipmentRow struct {
	ID                 int64
	TrackingID         string
	UserID             int64
	Weight             decimal.NullDecimal
	Dimensions         string
	ProductType        string
	DestinationAddress datatypes.JSONType[shipmentrepo.AddressDTO]
	NormalizedAddress  datatypes.JSONType[*shipmentrepo.AddressDTO]
	CurrentStatus      string
	CreatedAt          time.Time
}

const shipmentColumns = `
	id,
	tracking_id,
	user_id,
	weight,
	dimensions,
	product_type,
	destination_address,
	normalized_address,
	current_status,
	created_at`

func (r shipmentRow) view() ShipmentView {
	view := ShipmentView{
		ID:                 r.ID,
		TrackingID:         r.TrackingID,
		UserID:             r.UserID,
		Dimensions:         r.Dimensions,
		ProductType:        r.ProductType,
		DestinationAddress: addressViewFromStored(r.DestinationAddress.Data()),
		CurrentStatus:      r.CurrentStatus,
		CreatedAt:          r.CreatedAt,
	}
	if r.Weight.Valid {
		view.Weight = r.Weight.Decimal.InexactFloat64()
	}
	if n := r.NormalizedAddress.Data(); n != nil {
		normalized := addressViewFromStored(*n)
		view.NormalizedAddress = &normalized
	}
	return view
}
