package domain

type FinancialInputs struct {
	InvestmentCost   float64 `json:"investment_cost"`
	ElectricityPrice float64 `json:"electricity_price"`
}

func DefaultFinancialInputs() FinancialInputs {
	return FinancialInputs{
		InvestmentCost:   30000,
		ElectricityPrice: 0.18,
	}
}

type FinancialResult struct {
	MeanElectricityKwh float64 `json:"mean_electricity_kwh"`
	AnnualSavings      float64 `json:"annual_savings"`
	ROIPercent         float64 `json:"roi_percent"`
	// nil when annual savings are zero; never zero or infinite.
	PaybackYears *float64 `json:"payback_years"`
}

func (r FinancialResult) HasPayback() bool {
	return r.PaybackYears != nil
}
