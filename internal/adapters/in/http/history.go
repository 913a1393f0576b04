package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// AppendStatusHistory handles POST /api/history.
func (s *Server) AppendStatusHistory(c echo.Context) error {
	var req AppendHistoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAppendStatusHistoryCommand(req.ShipmentID, req.Status)
	if err != nil {
		return err
	}

	entry, err := s.h.AppendStatusHistory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, queries.HistoryEntryViewFromDomain(entry))
}

// ListStatusHistory handles GET /api/history.
func (s *Server) ListStatusHistory(c echo.Context) error {
	entries, err := s.h.ListStatusHistory.Handle(c.Request().Context(), queries.NewListStatusHistoryQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entries)
}

// RecordDeliveryMetric handles POST /api/history/metrics.
func (s *Server) RecordDeliveryMetric(c echo.Context) error {
	var req RecordMetricRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRecordDeliveryMetricCommand(req.ShipmentID, *req.DeliveryTimeMinutes)
	if err != nil {
		return err
	}

	metric, err := s.h.RecordDeliveryMetric.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, queries.DeliveryMetricViewFromDomain(metric))
}
