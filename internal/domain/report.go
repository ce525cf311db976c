package domain

import (
	"time"

	"github.com/google/uuid"
)

type Recommendation struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Report is a snapshot; nothing mutates it after BuildReport.
type Report struct {
	ID              uuid.UUID        `json:"id"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Profile         BuildingProfile  `json:"profile"`
	ClimateZone     ClimateZone      `json:"climate_zone"`
	Financials      FinancialResult  `json:"financials"`
	Recommendations []Recommendation `json:"recommendations"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
