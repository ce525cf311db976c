package financial

import (
	"fmt"
	"math"

	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MeanElectricity is the arithmetic mean of ElectricityKwh over the dataset.
func MeanElectricity(dataset *domain.EnergyDataset) (decimal.Decimal, error) {
	if dataset.Len() == 0 {
		return decimal.Zero, constants.ErrEmptyDataset
	}

	total := decimal.Zero
	for _, s := range dataset.Samples {
		total = total.Add(decimal.NewFromFloat(s.ElectricityKwh))
	}

	return total.Div(decimal.NewFromInt(int64(dataset.Len()))), nil
}

// ComputeFinancials derives savings, ROI and payback. It has no side effects.
func ComputeFinancials(dataset *domain.EnergyDataset, inputs domain.FinancialInputs) (domain.FinancialResult, error) {
	mean, err := MeanElectricity(dataset)
	if err != nil {
		return domain.FinancialResult{}, fmt.Errorf("MeanElectricity: %w", err)
	}

	if !finite(inputs.InvestmentCost) || !finite(inputs.ElectricityPrice) {
		return domain.FinancialResult{}, constants.ErrInvalidFinancialInput
	}

	cost := decimal.NewFromFloat(inputs.InvestmentCost)
	if cost.IsZero() {
		return domain.FinancialResult{}, constants.ErrDivisionByZero
	}
	price := decimal.NewFromFloat(inputs.ElectricityPrice)

	annualSavings := mean.Mul(price)
	roi := annualSavings.Div(cost).Mul(hundred)

	res := domain.FinancialResult{
		MeanElectricityKwh: mean.InexactFloat64(),
		AnnualSavings:      annualSavings.InexactFloat64(),
		ROIPercent:         roi.InexactFloat64(),
	}
	if !annualSavings.IsZero() {
		payback := cost.Div(annualSavings).InexactFloat64()
		res.PaybackYears = &payback
	}

	return res, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
