package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/energy-dashboard/internal/api/controller"
	"github.com/ougirez/energy-dashboard/internal/pkg/config"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/ougirez/energy-dashboard/internal/pkg/metrics"
	"github.com/ougirez/energy-dashboard/internal/service/dashboard"
	"github.com/ougirez/energy-dashboard/internal/service/energy"
	"github.com/ougirez/energy-dashboard/internal/service/report"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIService struct {
	router           *echo.Echo
	dashboardService *dashboard.Service
}

// Serve blocks until the listener stops. A graceful Shutdown is not an error.
func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(cfg config.Config, m *metrics.Metrics) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(echoLogLevel(cfg.Log.Level))
	svc.router.JSONSerializer = SonicSerializer{}
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: constants.HeaderRequestID,
	}))
	svc.router.Use(svc.LoggerContextMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	if m == nil {
		m = metrics.New()
	}

	source := energy.NewService(energy.Config{
		APIURL:        cfg.APIURL,
		Timeout:       cfg.Fetch.Timeout,
		Retries:       cfg.Fetch.Retries,
		RetryInterval: cfg.Fetch.RetryInterval,
	}, energy.WithMetrics(m))
	reports := report.NewService(report.Config{
		FileName:           cfg.Report.FileName,
		PaybackPlaceholder: cfg.Report.PaybackPlaceholder,
		Compress:           cfg.Report.Compress,
	}, report.WithMetrics(m))
	svc.dashboardService = dashboard.NewService(source, reports)

	cntrl := controller.NewController(svc.dashboardService, source, cfg.Report.PaybackPlaceholder)

	svc.router.GET("/", cntrl.GetDashboardPage)
	svc.router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	api := svc.router.Group("/api/v1")
	api.GET("/health", cntrl.Health)
	api.GET("/climate-zone", cntrl.GetClimateZone)
	api.GET("/recommendations", cntrl.GetRecommendations)
	api.POST("/dashboard", cntrl.PostDashboard)

	energyGroup := api.Group("/energy")
	energyGroup.GET("/data", cntrl.GetEnergyData)

	reportGroup := api.Group("/report")
	reportGroup.GET("/export", cntrl.ExportReport)
	reportGroup.POST("/export", cntrl.ExportReport)

	return svc, nil
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
