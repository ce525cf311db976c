package dashboard

import (
	"context"
	"fmt"

	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/pkg/logger"
	"github.com/ougirez/energy-dashboard/internal/service/energy"
	"github.com/ougirez/energy-dashboard/internal/service/financial"
	"github.com/ougirez/energy-dashboard/internal/service/recommendation"
	"github.com/ougirez/energy-dashboard/internal/service/report"
)

type DatasetSource interface {
	FetchDataset(ctx context.Context) (*energy.Result, error)
}

type View struct {
	Profile         domain.BuildingProfile  `json:"profile"`
	ClimateZone     domain.ClimateZone      `json:"climate_zone"`
	Inputs          domain.FinancialInputs  `json:"inputs"`
	Source          domain.DatasetSource    `json:"source"`
	Advisory        *domain.Advisory        `json:"advisory,omitempty"`
	Series          domain.ChartSeries      `json:"series"`
	Financials      domain.FinancialResult  `json:"financials"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

type Export struct {
	Report   domain.Report
	FileName string
	Content  []byte
	Advisory *domain.Advisory
}

type Service struct {
	source  DatasetSource
	reports *report.Service
}

func NewService(source DatasetSource, reports *report.Service) *Service {
	return &Service{source: source, reports: reports}
}

// Build runs one full recomputation pass for the given inputs.
func (s *Service) Build(ctx context.Context, profile domain.BuildingProfile, inputs domain.FinancialInputs) (*View, error) {
	zone := domain.ClimateZoneFor(profile.Address)

	res, err := s.source.FetchDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("FetchDataset: %w", err)
	}

	financials, err := financial.ComputeFinancials(res.Dataset, inputs)
	if err != nil {
		return nil, fmt.Errorf("ComputeFinancials: %w", err)
	}

	logger.Debugf(ctx, "dashboard built: type=%s zone=%q source=%s roi=%.3f",
		profile.Type, zone, res.Dataset.Source, financials.ROIPercent)

	return &View{
		Profile:         profile,
		ClimateZone:     zone,
		Inputs:          inputs,
		Source:          res.Dataset.Source,
		Advisory:        res.Advisory,
		Series:          res.Dataset.Series(),
		Financials:      financials,
		Recommendations: recommendation.List(),
	}, nil
}

func (s *Service) Export(ctx context.Context, profile domain.BuildingProfile, inputs domain.FinancialInputs) (*Export, error) {
	view, err := s.Build(ctx, profile, inputs)
	if err != nil {
		return nil, err
	}

	r := s.reports.BuildReport(view.Profile, view.ClimateZone, view.Financials)
	content, err := s.reports.RenderReport(r)
	if err != nil {
		return nil, fmt.Errorf("RenderReport: %w", err)
	}

	logger.Infof(ctx, "report %s rendered (%d bytes)", r.ID, len(content))

	return &Export{
		Report:   r,
		FileName: s.reports.FileName(),
		Content:  content,
		Advisory: view.Advisory,
	}, nil
}
