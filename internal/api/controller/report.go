package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/ougirez/energy-dashboard/internal/service/report"
)

const (
	headerReportID     = "X-Report-ID"
	headerDataAdvisory = "X-Data-Advisory"
)

func (c *Controller) ExportReport(ctx echo.Context) error {
	req, err := bindDashboardRequest(ctx)
	if err != nil {
		return err
	}

	profile, inputs, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}

	export, err := c.dashboard.Export(ctx.Request().Context(), profile, inputs)
	if err != nil {
		return err
	}

	h := ctx.Response().Header()
	h.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName))
	h.Set(headerReportID, export.Report.ID.String())
	if export.Advisory != nil {
		h.Set(headerDataAdvisory, string(export.Advisory.Kind))
	}

	return ctx.Blob(http.StatusOK, report.ContentType, export.Content)
}
