// Package http exposes the shipment lifecycle over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the server. The command and query handlers satisfy
// them; tests substitute mocks.
type (
	CreateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error)
	}
	UpdateShipmentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateShipmentStatusCommand) (*shipment.Shipment, error)
	}
	MarkShipmentDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.MarkShipmentDeliveredCommand) (*shipment.Shipment, error)
	}
	DeleteShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteShipmentCommand) error
	}
	CreateRouteAssignmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRouteAssignmentCommand) (*route.Assignment, error)
	}
	AppendStatusHistoryHandler interface {
		Handle(ctx context.Context, cmd commands.AppendStatusHistoryCommand) (*history.Entry, error)
	}
	RecordDeliveryMetricHandler interface {
		Handle(ctx context.Context, cmd commands.RecordDeliveryMetricCommand) (*history.DeliveryMetric, error)
	}
	FindShipmentsHandler interface {
		Handle(ctx context.Context, query queries.FindShipmentsQuery) ([]queries.ShipmentView, error)
	}
	GetShipmentIndicatorsHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentIndicatorsQuery) (queries.ShipmentIndicators, error)
	}
	GetDailyShipmentCountsHandler interface {
		Handle(ctx context.Context, query queries.GetDailyShipmentCountsQuery) ([]queries.DailyShipmentCount, error)
	}
	ListStatusHistoryHandler interface {
		Handle(ctx context.Context, query queries.ListStatusHistoryQuery) ([]queries.HistoryEntryView, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateShipment        CreateShipmentHandler
	UpdateShipmentStatus  UpdateShipmentStatusHandler
	MarkShipmentDelivered MarkShipmentDeliveredHandler
	DeleteShipment        DeleteShipmentHandler
	CreateRouteAssignment CreateRouteAssignmentHandler
	AppendStatusHistory   AppendStatusHistoryHandler
	RecordDeliveryMetric  RecordDeliveryMetricHandler

	// Query handlers
	FindShipments          FindShipmentsHandler
	GetShipmentDetails     queries.ShipmentDetailsReader
	GetShipmentIndicators  GetShipmentIndicatorsHandler
	GetDailyShipmentCounts GetDailyShipmentCountsHandler
	ListStatusHistory      ListStatusHistoryHandler
	FindUserByEmail        queries.UserByEmailReader
}

// Server translates HTTP requests into commands and queries and renders their results.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: handlers, logger: logger.With("component", "http.Server")}
}

// RegisterRoutes mounts the API under g, which is normally the /api group.
// Static shipment paths are registered next to /shipments/:id; echo prefers them.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/shipments", s.CreateShipment)
	g.GET("/shipments", s.ListShipments)
	g.GET("/shipments/indicators", s.GetShipmentIndicators)
	g.GET("/shipments/daily-count", s.GetDailyShipmentCounts)
	g.POST("/shipments/assignment-route", s.CreateRouteAssignment)
	g.GET("/shipments/:id", s.GetShipment)
	g.PUT("/shipments/:id", s.UpdateShipmentStatus)
	g.DELETE("/shipments/:id", s.DeleteShipment)
	g.GET("/shipments/:id/details", s.GetShipmentDetails)
	g.PUT("/shipments/:id/mark_delivered", s.MarkShipmentDelivered)

	g.POST("/history", s.AppendStatusHistory)
	g.GET("/history", s.ListStatusHistory)
	g.POST("/history/metrics", s.RecordDeliveryMetric)

	g.GET("/users", s.FindUserByEmail)
}

// bindAndValidate decodes the JSON body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return badRequest("Invalid request body")
	}
	return c.Validate(req)
}
