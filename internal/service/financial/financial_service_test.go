package financial

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/ougirez/energy-dashboard/internal/service/energy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(electricity ...float64) *domain.EnergyDataset {
	ds := &domain.EnergyDataset{Source: domain.DatasetSourceBackend}
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, e := range electricity {
		ds.Samples = append(ds.Samples, domain.EnergySample{
			Timestamp:      start.AddDate(0, i, 0),
			ElectricityKwh: e,
		})
	}
	return ds
}

func TestComputeFinancialsSyntheticScenario(t *testing.T) {
	res, err := ComputeFinancials(energy.GenerateSyntheticDataset(), domain.FinancialInputs{
		InvestmentCost:   30000,
		ElectricityPrice: 0.18,
	})
	require.NoError(t, err)

	assert.InDelta(t, 14975, res.MeanElectricityKwh, 1e-9)
	assert.InDelta(t, 2695.5, res.AnnualSavings, 1e-9)
	assert.InDelta(t, 8.985, res.ROIPercent, 1e-9)
	require.NotNil(t, res.PaybackYears)
	assert.InDelta(t, 11.1296, *res.PaybackYears, 1e-4)
}

func TestROIMatchesFormula(t *testing.T) {
	cases := []struct {
		electricity []float64
		cost, price float64
	}{
		{[]float64{100, 200, 300}, 1000, 0.25},
		{[]float64{12345.67}, 99999.99, 0.1234},
		{[]float64{0.5, 0.25, 1.75, 3}, 7, 3.3},
		{[]float64{50000, 49000, 51000, 50500}, 250000, 0.31},
	}
	for _, c := range cases {
		res, err := ComputeFinancials(dataset(c.electricity...), domain.FinancialInputs{
			InvestmentCost:   c.cost,
			ElectricityPrice: c.price,
		})
		require.NoError(t, err)

		var sum float64
		for _, e := range c.electricity {
			sum += e
		}
		mean := sum / float64(len(c.electricity))
		assert.InDelta(t, mean*c.price/c.cost*100, res.ROIPercent, 1e-9)
		assert.InDelta(t, c.cost/(mean*c.price), *res.PaybackYears, 1e-9)
	}
}

func TestZeroSavingsHasNoPayback(t *testing.T) {
	res, err := ComputeFinancials(dataset(0, 0, 0), domain.FinancialInputs{InvestmentCost: 30000, ElectricityPrice: 0.18})
	require.NoError(t, err)
	assert.Zero(t, res.AnnualSavings)
	assert.Zero(t, res.ROIPercent)
	assert.Nil(t, res.PaybackYears)
	assert.False(t, res.HasPayback())

	res, err = ComputeFinancials(dataset(100, 200), domain.FinancialInputs{InvestmentCost: 30000, ElectricityPrice: 0})
	require.NoError(t, err)
	assert.Nil(t, res.PaybackYears)
}

func TestEmptyDataset(t *testing.T) {
	_, err := ComputeFinancials(&domain.EnergyDataset{}, domain.DefaultFinancialInputs())
	assert.True(t, errors.Is(err, constants.ErrEmptyDataset))

	_, err = ComputeFinancials(nil, domain.DefaultFinancialInputs())
	assert.True(t, errors.Is(err, constants.ErrEmptyDataset))
}

func TestZeroCost(t *testing.T) {
	_, err := ComputeFinancials(dataset(100), domain.FinancialInputs{InvestmentCost: 0, ElectricityPrice: 0.18})
	assert.True(t, errors.Is(err, constants.ErrDivisionByZero))
}

func TestNonFiniteInputs(t *testing.T) {
	cases := []struct {
		name        string
		cost, price float64
	}{
		{"cost NaN", math.NaN(), 0.18},
		{"cost +Inf", math.Inf(1), 0.18},
		{"cost -Inf", math.Inf(-1), 0.18},
		{"price NaN", 30000, math.NaN()},
		{"price +Inf", 30000, math.Inf(1)},
		{"price -Inf", 30000, math.Inf(-1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = ComputeFinancials(dataset(100, 200), domain.FinancialInputs{
					InvestmentCost:   c.cost,
					ElectricityPrice: c.price,
				})
			})
			assert.True(t, errors.Is(err, constants.ErrInvalidFinancialInput))
		})
	}
}
