package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
)

func (c *Controller) PostDashboard(ctx echo.Context) error {
	req, err := bindDashboardRequest(ctx)
	if err != nil {
		return err
	}

	profile, inputs, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}

	view, err := c.dashboard.Build(ctx.Request().Context(), profile, inputs)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}
