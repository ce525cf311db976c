package energy

import (
	"time"

	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

const SyntheticPoints = 120

var (
	syntheticStart = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
	co2PerKwh      = decimal.RequireFromString("0.00052")
)

// GenerateSyntheticDataset returns the monthly demo series for 2015-01..2024-12.
func GenerateSyntheticDataset() *domain.EnergyDataset {
	samples := make([]domain.EnergySample, 0, SyntheticPoints)
	for i := 0; i < SyntheticPoints; i++ {
		fi := float64(i)
		electricity := 12000 + 50*fi

		samples = append(samples, domain.EnergySample{
			Timestamp:      syntheticStart.AddDate(0, i, 0),
			ElectricityKwh: electricity,
			WaterTons:      300 + 0.5*fi,
			GasM3:          110 + 0.3*fi,
			CO2Tons:        decimal.NewFromFloat(electricity).Mul(co2PerKwh).Round(2).InexactFloat64(),
		})
	}

	return &domain.EnergyDataset{
		Source:  domain.DatasetSourceSynthetic,
		Samples: samples,
	}
}
