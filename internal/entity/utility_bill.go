package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/carbon-tracker/constants"
)

// UtilityBill represents a persisted bill record for data transfer between layers.
// Usage fields are independently optional: a bill where only electricity was
// readable is a valid record.
type UtilityBill struct {
	ID                uuid.UUID             `json:"id"`
	ProfileID         uuid.UUID             `json:"profile_id"`
	PeriodStart       *time.Time            `json:"period_start,omitempty"`
	PeriodEnd         *time.Time            `json:"period_end,omitempty"`
	ElectricityUsage  *float64              `json:"electricity_usage,omitempty"` // kWh
	WaterUsage        *float64              `json:"water_usage,omitempty"`       // m³
	GasUsage          *float64              `json:"gas_usage,omitempty"`         // kWh
	ElectricityCarbon float64               `json:"electricity_carbon"`          // kg CO₂e
	WaterCarbon       float64               `json:"water_carbon"`
	GasCarbon         float64               `json:"gas_carbon"`
	TotalCarbon       float64               `json:"total_carbon"`
	InputMethod       constants.InputMethod `json:"input_method"`
	OCRConfidence     *float32              `json:"ocr_confidence,omitempty"`
	OCRRawText        *string               `json:"ocr_raw_text,omitempty"`
	Notes             *string               `json:"notes,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}
