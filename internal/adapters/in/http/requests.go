package http

import (
	"time"

	"logistics/internal/core/domain/model/route"
)

type AddressRequest struct {
	RegionCode         string   `json:"regionCode" validate:"required,len=2,alpha"`
	Locality           string   `json:"locality" validate:"required"`
	AdministrativeArea string   `json:"administrativeArea" validate:"required"`
	PostalCode         string   `json:"postalCode"`
	AddressLines       []string `json:"addressLines" validate:"required,min=1,dive,required"`
}

type CreateShipmentRequest struct {
	UserID             int64          `json:"userId" validate:"required,gt=0"`
	Weight             float64        `json:"weight" validate:"required,gt=0"`
	Dimensions         string         `json:"dimensions" validate:"required"`
	ProductType        string         `json:"productType" validate:"required"`
	DestinationAddress AddressRequest `json:"destinationAddress" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type CreateRouteAssignmentRequest struct {
	ShipmentID int64 `json:"shipmentId" validate:"required,gt=0"`
	RouteID    int64 `json:"routeId" validate:"required,gt=0"`
}

type AppendHistoryRequest struct {
	ShipmentID int64  `json:"shipmentId" validate:"required,gt=0"`
	Status     string `json:"status" validate:"required,max=50"`
}

// RecordMetricRequest uses a pointer so that an explicit 0 minutes is accepted.
type RecordMetricRequest struct {
	ShipmentID          int64 `json:"shipmentId" validate:"required,gt=0"`
	DeliveryTimeMinutes *int  `json:"deliveryTimeMinutes" validate:"required,gte=0"`
}

type RouteAssignmentResponse struct {
	ID         int64     `json:"id"`
	ShipmentID int64     `json:"shipmentId"`
	RouteID    int64     `json:"routeId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func routeAssignmentResponse(a *route.Assignment) RouteAssignmentResponse {
	return RouteAssignmentResponse{
		ID:         a.ID(),
		ShipmentID: a.ShipmentID(),
		RouteID:    a.RouteID(),
		CreatedAt:  a.CreatedAt(),
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}

