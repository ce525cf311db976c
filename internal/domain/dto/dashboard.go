package dto

import (
	"github.com/ougirez/energy-dashboard/internal/domain"
)

type BuildingProfileRequest struct {
	Type                 string  `json:"type" query:"type" form:"type" validate:"required,oneof=Office School Hospital Retail"`
	Address              string  `json:"address" query:"address" form:"address"`
	FloorAreaSqft        float64 `json:"floor_area_sqft" query:"floor_area_sqft" form:"floor_area_sqft" validate:"gt=0"`
	OccupancyRate        float64 `json:"occupancy_rate" query:"occupancy_rate" form:"occupancy_rate" validate:"gte=0,lte=1"`
	OperationHoursPerDay int     `json:"operation_hours_per_day" query:"operation_hours_per_day" form:"operation_hours_per_day" validate:"gte=0,lte=24"`
}

// FinancialInputsRequest only needs to be numeric; a zero cost is reported
// by the financial model, not rejected here.
type FinancialInputsRequest struct {
	InvestmentCost   float64 `json:"investment_cost" query:"investment_cost" form:"investment_cost"`
	ElectricityPrice float64 `json:"electricity_price" query:"electricity_price" form:"electricity_price"`
}

type DashboardRequest struct {
	Profile    BuildingProfileRequest `json:"profile"`
	Financials FinancialInputsRequest `json:"financials"`
}

func NewDashboardRequest() *DashboardRequest {
	p := domain.DefaultBuildingProfile()
	f := domain.DefaultFinancialInputs()
	return &DashboardRequest{
		Profile: BuildingProfileRequest{
			Type:                 string(p.Type),
			Address:              p.Address,
			FloorAreaSqft:        p.FloorAreaSqft,
			OccupancyRate:        p.OccupancyRate,
			OperationHoursPerDay: p.OperationHoursPerDay,
		},
		Financials: FinancialInputsRequest{
			InvestmentCost:   f.InvestmentCost,
			ElectricityPrice: f.ElectricityPrice,
		},
	}
}

func (r *DashboardRequest) ToDomain() (domain.BuildingProfile, domain.FinancialInputs, error) {
	bt, err := domain.ParseBuildingType(r.Profile.Type)
	if err != nil {
		return domain.BuildingProfile{}, domain.FinancialInputs{}, err
	}

	profile := domain.BuildingProfile{
		Type:                 bt,
		Address:              r.Profile.Address,
		FloorAreaSqft:        r.Profile.FloorAreaSqft,
		OccupancyRate:        r.Profile.OccupancyRate,
		OperationHoursPerDay: r.Profile.OperationHoursPerDay,
	}
	inputs := domain.FinancialInputs{
		InvestmentCost:   r.Financials.InvestmentCost,
		ElectricityPrice: r.Financials.ElectricityPrice,
	}
	return profile, inputs, nil
}
