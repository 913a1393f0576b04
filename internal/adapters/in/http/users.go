package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// FindUserByEmail handles GET /api/users?email=.
func (s *Server) FindUserByEmail(c echo.Context) error {
	query, err := queries.NewFindUserByEmailQuery(c.QueryParam("email"))
	if err != nil {
		return err
	}

	u, err := s.h.FindUserByEmail.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, u)
}
