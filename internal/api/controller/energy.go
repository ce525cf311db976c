package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/energy-dashboard/internal/domain"
)

func (c *Controller) GetEnergyData(ctx echo.Context) error {
	res, err := c.source.FetchDataset(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		Source   domain.DatasetSource  `json:"source"`
		Advisory *domain.Advisory      `json:"advisory,omitempty"`
		Samples  []domain.EnergySample `json:"samples"`
	}

	return ctx.JSON(http.StatusOK, response{
		Source:   res.Dataset.Source,
		Advisory: res.Advisory,
		Samples:  res.Dataset.Samples,
	})
}
