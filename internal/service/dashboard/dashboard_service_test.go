package dashboard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/ougirez/energy-dashboard/internal/service/energy"
	"github.com/ougirez/energy-dashboard/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	res *energy.Result
	err error
}

func (s stubSource) FetchDataset(context.Context) (*energy.Result, error) {
	return s.res, s.err
}

func fallbackSource() stubSource {
	fe := &energy.FetchError{Kind: energy.KindBackendStatus, StatusCode: 500}
	return stubSource{res: &energy.Result{
		Dataset:  energy.GenerateSyntheticDataset(),
		Advisory: fe.Advisory(),
		Cause:    fe,
	}}
}

func TestBuild(t *testing.T) {
	svc := NewService(fallbackSource(), report.NewService(report.Config{PaybackPlaceholder: "N/A"}))

	view, err := svc.Build(context.Background(), domain.DefaultBuildingProfile(), domain.DefaultFinancialInputs())
	require.NoError(t, err)

	assert.Equal(t, domain.ClimateZoneMixedHumid, view.ClimateZone)
	assert.Equal(t, domain.DatasetSourceSynthetic, view.Source)
	require.NotNil(t, view.Advisory)
	assert.Equal(t, domain.AdvisoryBackendError, view.Advisory.Kind)
	assert.Len(t, view.Series.Timestamps, 120)
	assert.InDelta(t, 8.985, view.Financials.ROIPercent, 1e-9)
	assert.Len(t, view.Recommendations, 4)
}

func TestBuildStopsOnMissingField(t *testing.T) {
	missing := &energy.FetchError{Kind: energy.KindMissingField, Field: "timestamp"}
	svc := NewService(stubSource{err: missing}, report.NewService(report.Config{}))

	view, err := svc.Build(context.Background(), domain.DefaultBuildingProfile(), domain.DefaultFinancialInputs())
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, constants.ErrMissingField))
}

func TestBuildZeroCost(t *testing.T) {
	svc := NewService(fallbackSource(), report.NewService(report.Config{}))

	_, err := svc.Build(context.Background(), domain.DefaultBuildingProfile(), domain.FinancialInputs{ElectricityPrice: 0.18})
	assert.True(t, errors.Is(err, constants.ErrDivisionByZero))
}

func TestExport(t *testing.T) {
	svc := NewService(fallbackSource(), report.NewService(report.Config{PaybackPlaceholder: "N/A"}))

	profile := domain.DefaultBuildingProfile()
	profile.Type = domain.BuildingTypeSchool
	out, err := svc.Export(context.Background(), profile, domain.DefaultFinancialInputs())
	require.NoError(t, err)

	assert.Equal(t, "Triphorium_Energy_Report.pdf", out.FileName)
	assert.True(t, bytes.HasPrefix(out.Content, []byte("%PDF-")))
	assert.Equal(t, domain.BuildingTypeSchool, out.Report.Profile.Type)
	assert.Equal(t, domain.AdvisoryBackendError, out.Advisory.Kind)
}

func TestExportWithoutPaybackNeedsPlaceholder(t *testing.T) {
	svc := NewService(fallbackSource(), report.NewService(report.Config{}))

	_, err := svc.Export(context.Background(), domain.DefaultBuildingProfile(), domain.FinancialInputs{InvestmentCost: 1000})
	assert.True(t, errors.Is(err, constants.ErrMissingFinancials))
}
