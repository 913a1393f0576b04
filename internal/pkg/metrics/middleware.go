package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware records one request count and duration sample per request, labelled
// with the matched route pattern. Scrapes of /metrics are not recorded.
func EchoMiddleware(m *Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

			return nil
		}
	}
}
