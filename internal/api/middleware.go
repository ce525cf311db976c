package api

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/ougirez/energy-dashboard/internal/pkg/logger"
)

// LoggerContextMiddleware puts the request id into the request context so
// every log line of the request carries it. It expects the RequestID
// middleware to run first.
func (svc *APIService) LoggerContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Response().Header().Get(constants.HeaderRequestID)
		if id == "" {
			return next(c)
		}

		c.Set(constants.CtxKeyRequestID, id)
		ctx := logger.With(c.Request().Context(), constants.CtxKeyRequestID, id)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
