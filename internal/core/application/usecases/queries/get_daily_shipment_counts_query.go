package queries

import (
	"errors"

	"logistics/internal/pkg/guard"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

var ErrGetDailyShipmentCountsQueryIsNotConstructed = errors.New(
	"GetDailyShipmentCountsQuery must be created via NewGetDailyShipmentCountsQuery constructor",
)

type GetDailyShipmentCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDailyShipmentCountsQuery() GetDailyShipmentCountsQuery {
	return GetDailyShipmentCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDailyShipmentCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyShipmentCountsQueryIsNotConstructed)
}

// DailyShipmentCount is the number of shipments created on one calendar day.
// Date is rendered as YYYY-MM-DD.
type DailyShipmentCount struct {
	Date  openapi_types.Date `json:"date"`
	Count int64              `json:"count"`
}
