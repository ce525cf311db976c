package domain

import "time"

type DatasetSource string

const (
	DatasetSourceBackend   DatasetSource = "backend"
	DatasetSourceSynthetic DatasetSource = "synthetic"
)

type EnergySample struct {
	Timestamp      time.Time `json:"timestamp"`
	ElectricityKwh float64   `json:"electricity_kwh"`
	WaterTons      float64   `json:"water_tons"`
	GasM3          float64   `json:"gas_m3"`
	CO2Tons        float64   `json:"co2_tons"`
}

type EnergyDataset struct {
	Source  DatasetSource  `json:"source"`
	Samples []EnergySample `json:"samples"`
}

func (d *EnergyDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Samples)
}

type ChartSeries struct {
	Timestamps     []time.Time `json:"timestamps"`
	ElectricityKwh []float64   `json:"electricity_kwh"`
	WaterTons      []float64   `json:"water_tons"`
	GasM3          []float64   `json:"gas_m3"`
	CO2Tons        []float64   `json:"co2_tons"`
}

// Series splits the dataset into one column per metric for charting.
func (d *EnergyDataset) Series() ChartSeries {
	n := d.Len()
	s := ChartSeries{
		Timestamps:     make([]time.Time, 0, n),
		ElectricityKwh: make([]float64, 0, n),
		WaterTons:      make([]float64, 0, n),
		GasM3:          make([]float64, 0, n),
		CO2Tons:        make([]float64, 0, n),
	}
	if n == 0 {
		return s
	}

	for _, sample := range d.Samples {
		s.Timestamps = append(s.Timestamps, sample.Timestamp)
		s.ElectricityKwh = append(s.ElectricityKwh, sample.ElectricityKwh)
		s.WaterTons = append(s.WaterTons, sample.WaterTons)
		s.GasM3 = append(s.GasM3, sample.GasM3)
		s.CO2Tons = append(s.CO2Tons, sample.CO2Tons)
	}
	return s
}

type AdvisoryKind string

const (
	AdvisoryBackendError       AdvisoryKind = "backend_error"
	AdvisoryBackendUnreachable AdvisoryKind = "backend_unreachable"
)

// Advisory is a non-fatal notice that the dataset is the synthetic fallback.
type Advisory struct {
	Kind    AdvisoryKind `json:"kind"`
	Message string       `json:"message"`
}
