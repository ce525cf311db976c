package energy

import (
	"testing"
	"time"

	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSyntheticDataset(t *testing.T) {
	ds := GenerateSyntheticDataset()

	require.Equal(t, 120, ds.Len())
	assert.Equal(t, domain.DatasetSourceSynthetic, ds.Source)
	assert.Equal(t, time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC), ds.Samples[0].Timestamp)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), ds.Samples[119].Timestamp)

	for i := 1; i < ds.Len(); i++ {
		prev, cur := ds.Samples[i-1].Timestamp, ds.Samples[i].Timestamp
		require.True(t, prev.Before(cur), "index %d", i)
		require.Equal(t, prev.AddDate(0, 1, 0), cur, "index %d", i)
	}
}

func TestSyntheticValues(t *testing.T) {
	ds := GenerateSyntheticDataset()

	first := ds.Samples[0]
	assert.Equal(t, 12000.0, first.ElectricityKwh)
	assert.Equal(t, 300.0, first.WaterTons)
	assert.Equal(t, 110.0, first.GasM3)
	assert.Equal(t, 6.24, first.CO2Tons)

	second := ds.Samples[1]
	assert.Equal(t, 6.27, second.CO2Tons)

	last := ds.Samples[119]
	assert.Equal(t, 17950.0, last.ElectricityKwh)
	assert.Equal(t, 359.5, last.WaterTons)
	assert.InDelta(t, 145.7, last.GasM3, 1e-9)
	assert.Equal(t, 9.33, last.CO2Tons)
}

func TestSyntheticIsDeterministic(t *testing.T) {
	assert.Equal(t, GenerateSyntheticDataset(), GenerateSyntheticDataset())
}
