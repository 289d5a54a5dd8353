package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ecotrack-app/carbon-tracker/internal/repository"
)

// Service is a tiny façade over the bill repository that produces XLSX bytes
// for exports.
type Service struct {
	billsRepo repository.BillRepository
	logger    *slog.Logger
}

func NewService(billsRepo repository.BillRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{billsRepo: billsRepo, logger: logger}
}

// ExportBillsXLSX returns an XLSX workbook (as bytes) for the given profile
// and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all bills for profile.
func (s *Service) ExportBillsXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	bills, err := s.billsRepo.List(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Utility Bills"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Period Start",
		"Period End",
		"Electricity (kWh)",
		"Water (m³)",
		"Gas (kWh)",
		"Electricity Carbon (kg)",
		"Water Carbon (kg)",
		"Gas Carbon (kg)",
		"Total Carbon (kg)",
		"Input Method",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, formatDate(b.PeriodStart))
		write(2, formatDate(b.PeriodEnd))
		writeUsage(write, 3, b.ElectricityUsage)
		writeUsage(write, 4, b.WaterUsage)
		writeUsage(write, 5, b.GasUsage)
		write(6, b.ElectricityCarbon)
		write(7, b.WaterCarbon)
		write(8, b.GasCarbon)
		write(9, b.TotalCarbon)
		write(10, string(b.InputMethod))
		if b.Notes != nil {
			write(11, truncate(*b.Notes, 140))
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 14) // dates
	_ = f.SetColWidth(sheet, "C", "I", 18) // usage + carbon
	_ = f.SetColWidth(sheet, "J", "J", 14) // input method
	_ = f.SetColWidth(sheet, "K", "K", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(bills),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeUsage(write func(int, any), col int, v *float64) {
	if v != nil {
		write(col, *v)
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
