package controller

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/domain/dto"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/ougirez/energy-dashboard/internal/pkg/logger"
	"github.com/ougirez/energy-dashboard/internal/pkg/utils"
	"github.com/ougirez/energy-dashboard/internal/service/dashboard"
	"github.com/ougirez/energy-dashboard/internal/service/energy"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"currency": utils.FormatCurrency,
	"percent":  utils.FormatPercent,
	"month":    func(t time.Time) string { return t.Format("2006-01") },
	"num":      func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).ParseFS(templatesFS, "templates/dashboard.html"))

type trendRow struct {
	Timestamp      time.Time
	ElectricityKwh float64
	WaterTons      float64
	GasM3          float64
	CO2Tons        float64
}

type pageData struct {
	Request       *dto.DashboardRequest
	BuildingTypes []domain.BuildingType
	ClimateZone   domain.ClimateZone
	Error         string
	View          *dashboard.View
	Payback       string
	Trend         []trendRow
	ExportURL     string
}

func (c *Controller) GetDashboardPage(ctx echo.Context) error {
	data := pageData{
		Request:       dto.NewDashboardRequest(),
		BuildingTypes: domain.BuildingTypes,
	}

	status := http.StatusOK
	if err := c.fillPage(ctx, &data); err != nil {
		status = statusFor(err)
		data.Error = userMessage(err)
		logger.Warnf(ctx.Request().Context(), "dashboard page: %s", err.Error())
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("pageTemplate.Execute: %w", err)
	}

	return ctx.HTMLBlob(status, buf.Bytes())
}

func (c *Controller) fillPage(ctx echo.Context, data *pageData) error {
	req, err := bindDashboardRequest(ctx)
	if err != nil {
		return err
	}
	data.Request = req

	profile, inputs, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}
	data.ClimateZone = domain.ClimateZoneFor(profile.Address)

	view, err := c.dashboard.Build(ctx.Request().Context(), profile, inputs)
	if err != nil {
		return err
	}

	data.View = view
	data.Payback = payback(view.Financials, c.paybackPlaceholder)
	data.Trend = trendRows(view.Series)
	data.ExportURL = exportURL(req)
	return nil
}

func payback(f domain.FinancialResult, placeholder string) string {
	if placeholder == "" {
		placeholder = constants.DefaultPaybackPlaceholder
	}
	return utils.FormatPayback(f.PaybackYears, placeholder)
}

func trendRows(s domain.ChartSeries) []trendRow {
	rows := make([]trendRow, 0, len(s.Timestamps))
	for i, ts := range s.Timestamps {
		rows = append(rows, trendRow{
			Timestamp:      ts,
			ElectricityKwh: s.ElectricityKwh[i],
			WaterTons:      s.WaterTons[i],
			GasM3:          s.GasM3[i],
			CO2Tons:        s.CO2Tons[i],
		})
	}
	return rows
}

func exportURL(req *dto.DashboardRequest) string {
	q := url.Values{}
	q.Set("type", req.Profile.Type)
	q.Set("address", req.Profile.Address)
	q.Set("floor_area_sqft", strconv.FormatFloat(req.Profile.FloorAreaSqft, 'f', -1, 64))
	q.Set("occupancy_rate", strconv.FormatFloat(req.Profile.OccupancyRate, 'f', -1, 64))
	q.Set("operation_hours_per_day", strconv.Itoa(req.Profile.OperationHoursPerDay))
	q.Set("investment_cost", strconv.FormatFloat(req.Financials.InvestmentCost, 'f', -1, 64))
	q.Set("electricity_price", strconv.FormatFloat(req.Financials.ElectricityPrice, 'f', -1, 64))
	return "/api/v1/report/export?" + q.Encode()
}

func statusFor(err error) int {
	var (
		coded   *constants.CodedError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &coded):
		return coded.Code()
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	var fe *energy.FetchError
	if errors.As(err, &fe) {
		return fe.UserMessage()
	}
	return err.Error()
}
