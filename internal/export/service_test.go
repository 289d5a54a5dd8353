package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ecotrack-app/carbon-tracker/constants"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/entity"
)

type stubBillRepo struct {
	bills    []*entity.UtilityBill
	err      error
	lastFrom *time.Time
	lastTo   *time.Time
}

func (s *stubBillRepo) Create(_ context.Context, _ *entity.UtilityBill) (*entity.UtilityBill, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBillRepo) GetByID(_ context.Context, _, _ uuid.UUID) (*entity.UtilityBill, error) {
	return nil, common.ErrNotFound
}

func (s *stubBillRepo) List(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.UtilityBill, error) {
	s.lastFrom, s.lastTo = from, to
	return s.bills, s.err
}

func (s *stubBillRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return common.ErrNotFound
}

func fptr(v float64) *float64 { return &v }

func dateptr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestExportBillsXLSX(t *testing.T) {
	notes := "March bill"
	repo := &stubBillRepo{bills: []*entity.UtilityBill{
		{
			ID:                uuid.New(),
			PeriodStart:       dateptr(2024, 3, 1),
			PeriodEnd:         dateptr(2024, 3, 31),
			ElectricityUsage:  fptr(320.5),
			WaterUsage:        fptr(15.2),
			ElectricityCarbon: 130.03,
			WaterCarbon:       6.37,
			TotalCarbon:       136.4,
			InputMethod:       constants.InputMethodAuto,
			Notes:             &notes,
		},
		{
			ID:          uuid.New(),
			GasUsage:    fptr(42),
			GasCarbon:   7.72,
			TotalCarbon: 7.72,
			InputMethod: constants.InputMethodManual,
		},
	}}

	data, err := NewService(repo, nil).ExportBillsXLSX(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("ExportBillsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Utility Bills")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("sheet has %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Period Start" || rows[0][10] != "Notes" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "2024-03-01" {
		t.Errorf("period start cell = %q", rows[1][0])
	}
	if rows[1][9] != string(constants.InputMethodAuto) {
		t.Errorf("input method cell = %q", rows[1][9])
	}
	if rows[1][10] != "March bill" {
		t.Errorf("notes cell = %q", rows[1][10])
	}
	// Second bill has no dates: its first cells stay empty.
	if rows[2][0] != "" {
		t.Errorf("missing period start rendered as %q", rows[2][0])
	}
}

func TestExportDefaultsOpenEndedWindow(t *testing.T) {
	repo := &stubBillRepo{}
	svc := NewService(repo, nil)

	from := time.Date(2024, 1, 15, 13, 45, 0, 0, time.Local)
	if _, err := svc.ExportBillsXLSX(context.Background(), uuid.New(), &from, nil); err != nil {
		t.Fatalf("ExportBillsXLSX: %v", err)
	}
	if repo.lastFrom == nil || !repo.lastFrom.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from not normalized to date-only UTC: %v", repo.lastFrom)
	}
	if repo.lastTo == nil {
		t.Error("open-ended from window did not default to today")
	}
}

func TestExportPropagatesRepositoryError(t *testing.T) {
	dbErr := errors.New("query timeout")
	repo := &stubBillRepo{err: dbErr}

	if _, err := NewService(repo, nil).ExportBillsXLSX(context.Background(), uuid.New(), nil, nil); !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want wrapped %v", err, dbErr)
	}
}
