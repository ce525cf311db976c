package domain

import (
	"fmt"
	"strings"
)

type BuildingType string

const (
	BuildingTypeOffice   BuildingType = "Office"
	BuildingTypeSchool   BuildingType = "School"
	BuildingTypeHospital BuildingType = "Hospital"
	BuildingTypeRetail   BuildingType = "Retail"
)

var BuildingTypes = []BuildingType{
	BuildingTypeOffice,
	BuildingTypeSchool,
	BuildingTypeHospital,
	BuildingTypeRetail,
}

// ParseBuildingType matches case-insensitively and returns the canonical spelling.
func ParseBuildingType(s string) (BuildingType, error) {
	for _, bt := range BuildingTypes {
		if strings.EqualFold(string(bt), strings.TrimSpace(s)) {
			return bt, nil
		}
	}
	return "", fmt.Errorf("unknown building type %q", s)
}

type BuildingProfile struct {
	Type                 BuildingType `json:"type"`
	Address              string       `json:"address"`
	FloorAreaSqft        float64      `json:"floor_area_sqft"`
	OccupancyRate        float64      `json:"occupancy_rate"`
	OperationHoursPerDay int          `json:"operation_hours_per_day"`
}

func DefaultBuildingProfile() BuildingProfile {
	return BuildingProfile{
		Type:                 BuildingTypeOffice,
		Address:              "New York, NY",
		FloorAreaSqft:        10000,
		OccupancyRate:        0.85,
		OperationHoursPerDay: 10,
	}
}

type ClimateZone string

const (
	ClimateZoneMixedHumid ClimateZone = "4A - Mixed-Humid"
	ClimateZoneUnknown    ClimateZone = "Unknown"
)

// ClimateZoneFor is a placeholder heuristic, not a real lookup.
func ClimateZoneFor(address string) ClimateZone {
	if strings.Contains(address, "NY") {
		return ClimateZoneMixedHumid
	}
	return ClimateZoneUnknown
}
