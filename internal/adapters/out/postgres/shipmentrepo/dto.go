// Package shipmentrepo provides data transfer objects and mapping functions for shipment
// persistence. Column names are snake_case; addresses are stored as JSONB documents
// whose keys are snake_case as well, while the domain and the API use camelCase names.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
type ShipmentDTO struct {
	ID                 int64                           `gorm:"primaryKey;autoIncrement"`
	TrackingID         string                          `gorm:"type:varchar(14);uniqueIndex:shipments_tracking_id_key"`
	UserID             int64                           `gorm:"index"`
	Weight             decimal.NullDecimal             `gorm:"type:numeric(12,3)"`
	Dimensions         string                          `gorm:"type:varchar(255)"`
	ProductType        string                          `gorm:"type:varchar(255)"`
	DestinationAddress datatypes.JSONType[AddressDTO]  `gorm:"type:jsonb;not null"`
	NormalizedAddress  datatypes.JSONType[*AddressDTO] `gorm:"type:jsonb;not null"`
	CurrentStatus      string                          `gorm:"type:varchar(50)"`
	CreatedAt          time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO is the JSONB shape of an address.
type AddressDTO struct {
	RegionCode         string   `json:"region_code"`
	Locality           string   `json:"locality"`
	AdministrativeArea string   `json:"administrative_area"`
	PostalCode         string   `json:"postal_code,omitempty"`
	AddressLines       []string `json:"address_lines"`
}

// AddressFromDomain maps a domain address to its stored form.
func AddressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		RegionCode:         a.RegionCode(),
		Locality:           a.Locality(),
		AdministrativeArea: a.AdministrativeArea(),
		PostalCode:         a.PostalCode(),
		AddressLines:       a.AddressLines(),
	}
}

// ToDomain restores the stored address without re-applying input rules.
func (a AddressDTO) ToDomain() kernel.Address {
	return kernel.RestoreAddress(a.RegionCode, a.Locality, a.AdministrativeArea, a.PostalCode, a.AddressLines)
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	var normalized *AddressDTO
	if n := s.NormalizedAddress(); n != nil {
		dto := AddressFromDomain(*n)
		normalized = &dto
	}

	return ShipmentDTO{
		ID:                 s.ID(),
		TrackingID:         s.TrackingID().String(),
		UserID:             s.UserID(),
		Weight:             decimal.NewNullDecimal(decimal.NewFromFloat(s.Weight())),
		Dimensions:         s.Dimensions(),
		ProductType:        s.ProductType(),
		DestinationAddress: datatypes.NewJSONType(AddressFromDomain(s.DestinationAddress())),
		NormalizedAddress:  datatypes.NewJSONType(normalized),
		CurrentStatus:      s.Status().String(),
		CreatedAt:          s.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	var normalized *kernel.Address
	if n := dto.NormalizedAddress.Data(); n != nil {
		addr := n.ToDomain()
		normalized = &addr
	}

	var weight float64
	if dto.Weight.Valid {
		weight = dto.Weight.Decimal.InexactFloat64()
	}

	return shipment.RestoreShipment(
		dto.ID,
		trackingID,
		dto.UserID,
		weight,
		dto.Dimensions,
		dto.ProductType,
		dto.DestinationAddress.Data().ToDomain(),
		normalized,
		shipment.Status(dto.CurrentStatus),
		dto.CreatedAt,
	)
}
