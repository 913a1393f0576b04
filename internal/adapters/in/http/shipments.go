package http

import (
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req CreateShipmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	destination, err := kernel.NewAddress(
		req.DestinationAddress.RegionCode,
		req.DestinationAddress.Locality,
		req.DestinationAddress.AdministrativeArea,
		req.DestinationAddress.PostalCode,
		req.DestinationAddress.AddressLines,
	)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateShipmentCommand(req.UserID, req.Weight, req.Dimensions, req.ProductType, destination)
	if err != nil {
		return err
	}

	created, err := s.h.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, queries.ShipmentViewFromDomain(created))
}

// ListShipments handles GET /api/shipments.
func (s *Server) ListShipments(c echo.Context) error {
	query, err := queries.NewFindShipmentsQuery(nil, nil)
	if err != nil {
		return err
	}

	shipments, err := s.h.FindShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shipments)
}

// GetShipment handles GET /api/shipments/:id?user_id=. Both parameters are required.
func (s *Server) GetShipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	rawUserID := c.QueryParam("user_id")
	if rawUserID == "" {
		return badRequest("user_id is required")
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		return badRequest("user_id must be a positive integer")
	}

	query, err := queries.NewFindShipmentsQuery(&id, &userID)
	if err != nil {
		return err
	}

	shipments, err := s.h.FindShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if len(shipments) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "shipment not found")
	}

	return c.JSON(http.StatusOK, shipments[0])
}

// GetShipmentDetails handles GET /api/shipments/:id/details.
func (s *Server) GetShipmentDetails(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentDetailsQuery(id)
	if err != nil {
		return err
	}

	details, err := s.h.GetShipmentDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, details)
}

// UpdateShipmentStatus handles PUT /api/shipments/:id.
func (s *Server) UpdateShipmentStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, req.Status)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateShipmentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, queries.ShipmentViewFromDomain(updated))
}

// MarkShipmentDelivered handles PUT /api/shipments/:id/mark_delivered.
func (s *Server) MarkShipmentDelivered(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkShipmentDeliveredCommand(id)
	if err != nil {
		return err
	}

	delivered, err := s.h.MarkShipmentDelivered.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, queries.ShipmentViewFromDomain(delivered))
}

// DeleteShipment handles DELETE /api/shipments/:id.
func (s *Server) DeleteShipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return err
	}

	if err := s.h.DeleteShipment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateRouteAssignment handles POST /api/shipments/assignment-route.
func (s *Server) CreateRouteAssignment(c echo.Context) error {
	var req CreateRouteAssignmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRouteAssignmentCommand(req.ShipmentID, req.RouteID)
	if err != nil {
		return err
	}

	assignment, err := s.h.CreateRouteAssignment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, routeAssignmentResponse(assignment))
}

// GetShipmentIndicators handles GET /api/shipments/indicators.
func (s *Server) GetShipmentIndicators(c echo.Context) error {
	indicators, err := s.h.GetShipmentIndicators.Handle(c.Request().Context(), queries.NewGetShipmentIndicatorsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, indicators)
}

// GetDailyShipmentCounts handles GET /api/shipments/daily-count.
func (s *Server) GetDailyShipmentCounts(c echo.Context) error {
	counts, err := s.h.GetDailyShipmentCounts.Handle(c.Request().Context(), queries.NewGetDailyShipmentCountsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, counts)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("id must be a positive integer")
	}
	return id, nil
}
