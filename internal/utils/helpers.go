package utils

import (
	"time"

	"github.com/ecotrack-app/carbon-tracker/constants"
	"github.com/ecotrack-app/carbon-tracker/gen/ent"
	billspb "github.com/ecotrack-app/carbon-tracker/gen/proto/carbontracker/v1"
	"github.com/ecotrack-app/carbon-tracker/internal/entity"
)

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:        e.ID,
		Name:      e.Name,
		Region:    e.Region,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToUtilityBill(e *ent.UtilityBill) *entity.UtilityBill {
	return &entity.UtilityBill{
		ID:                e.ID,
		ProfileID:         e.ProfileID,
		PeriodStart:       e.PeriodStart,
		PeriodEnd:         e.PeriodEnd,
		ElectricityUsage:  e.ElectricityUsage,
		WaterUsage:        e.WaterUsage,
		GasUsage:          e.GasUsage,
		ElectricityCarbon: e.ElectricityCarbon,
		WaterCarbon:       e.WaterCarbon,
		GasCarbon:         e.GasCarbon,
		TotalCarbon:       e.TotalCarbon,
		InputMethod:       constants.InputMethod(e.InputMethod),
		OCRConfidence:     e.OcrConfidence,
		OCRRawText:        e.OcrRawText,
		Notes:             e.Notes,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToPBProfile(p *entity.Profile) *billspb.Profile {
	return &billspb.Profile{
		Id:        p.ID.String(),
		Name:      p.Name,
		Region:    p.Region,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBUtilityBill(b *entity.UtilityBill) *billspb.UtilityBill {
	return &billspb.UtilityBill{
		Id:                b.ID.String(),
		ProfileId:         b.ProfileID.String(),
		PeriodStart:       formatYMD(b.PeriodStart),
		PeriodEnd:         formatYMD(b.PeriodEnd),
		ElectricityUsage:  b.ElectricityUsage,
		WaterUsage:        b.WaterUsage,
		GasUsage:          b.GasUsage,
		ElectricityCarbon: b.ElectricityCarbon,
		WaterCarbon:       b.WaterCarbon,
		GasCarbon:         b.GasCarbon,
		TotalCarbon:       b.TotalCarbon,
		InputMethod:       string(b.InputMethod),
		OcrConfidence:     b.OCRConfidence,
		Notes:             strOrEmpty(b.Notes),
		CreatedAt:         b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func formatYMD(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
