package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/domain/dto"
	"github.com/ougirez/energy-dashboard/internal/service/dashboard"
	"github.com/ougirez/energy-dashboard/internal/service/recommendation"
)

type Controller struct {
	dashboard          *dashboard.Service
	source             dashboard.DatasetSource
	paybackPlaceholder string
}

func NewController(dashboardService *dashboard.Service, source dashboard.DatasetSource, paybackPlaceholder string) *Controller {
	return &Controller{
		dashboard:          dashboardService,
		source:             source,
		paybackPlaceholder: paybackPlaceholder,
	}
}

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (c *Controller) GetClimateZone(ctx echo.Context) error {
	address := ctx.QueryParam("address")

	return ctx.JSON(http.StatusOK, map[string]string{
		"address":      address,
		"climate_zone": string(domain.ClimateZoneFor(address)),
	})
}

func (c *Controller) GetRecommendations(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, recommendation.List())
}

// bindDashboardRequest starts from the form defaults, then applies the query
// string (GET) or JSON body (POST) on top.
func bindDashboardRequest(ctx echo.Context) (*dto.DashboardRequest, error) {
	req := dto.NewDashboardRequest()

	if ctx.Request().Method == http.MethodGet {
		binder := &echo.DefaultBinder{}
		if err := binder.BindQueryParams(ctx, &req.Profile); err != nil {
			return nil, err
		}
		if err := binder.BindQueryParams(ctx, &req.Financials); err != nil {
			return nil, err
		}
	} else if err := ctx.Bind(req); err != nil {
		return nil, err
	}

	if err := ctx.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}
