package pipeline

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/carbon-tracker/constants"
	"github.com/ecotrack-app/carbon-tracker/internal/classify"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/emission"
	"github.com/ecotrack-app/carbon-tracker/internal/entity"
	"github.com/ecotrack-app/carbon-tracker/internal/ocr"
	"github.com/ecotrack-app/carbon-tracker/internal/parse"
)

const billText = "SP Group electricity bill. Consumption 100 kwh. Billing period Jan–Feb. Account 12345."

type fakeExtractor struct {
	res   *ocr.Result
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, image []byte) (*ocr.Result, error) {
	f.calls++
	if len(image) == 0 {
		return nil, ocr.ErrEmptyPayload
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

type fakeProfiles struct {
	profile  *entity.Profile
	err      error
	getCalls int
}

func (f *fakeProfiles) Create(_ context.Context, name, region string) (*entity.Profile, error) {
	return &entity.Profile{ID: uuid.New(), Name: name, Region: region}, nil
}

func (f *fakeProfiles) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil || f.profile.ID != id {
		return nil, common.ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeProfiles) GetByName(_ context.Context, _ string) (*entity.Profile, error) {
	return nil, common.ErrNotFound
}

func (f *fakeProfiles) List(_ context.Context) ([]*entity.Profile, error) {
	return []*entity.Profile{f.profile}, nil
}

type fakeBills struct {
	created []*entity.UtilityBill
	err     error
}

func (f *fakeBills) Create(_ context.Context, bill *entity.UtilityBill) (*entity.UtilityBill, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec := *bill
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.created = append(f.created, &rec)
	return &rec, nil
}

func (f *fakeBills) GetByID(_ context.Context, id, profileID uuid.UUID) (*entity.UtilityBill, error) {
	for _, b := range f.created {
		if b.ID == id && b.ProfileID == profileID {
			return b, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeBills) List(_ context.Context, profileID uuid.UUID, _, _ *time.Time) ([]*entity.UtilityBill, error) {
	var out []*entity.UtilityBill
	for _, b := range f.created {
		if b.ProfileID == profileID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBills) Delete(_ context.Context, id, profileID uuid.UUID) error {
	for i, b := range f.created {
		if b.ID == id && b.ProfileID == profileID {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type harness struct {
	processor *Processor
	extractor *fakeExtractor
	profiles  *fakeProfiles
	bills     *fakeBills
	profileID uuid.UUID
}

func newHarness(extractor *fakeExtractor) *harness {
	profileID := uuid.New()
	profiles := &fakeProfiles{profile: &entity.Profile{ID: profileID, Name: "Test", Region: "SG"}}
	bills := &fakeBills{}
	p := NewProcessor(
		nil,
		extractor,
		classify.NewClassifier(nil),
		parse.NewParser(nil),
		emission.NewCalculator(emission.DefaultTable()),
		profiles,
		bills,
		nil,
	)
	return &harness{processor: p, extractor: extractor, profiles: profiles, bills: bills, profileID: profileID}
}

func TestScanUploadHappyPath(t *testing.T) {
	h := newHarness(&fakeExtractor{res: &ocr.Result{Text: billText, Confidence: 0.92, Pages: 1}})

	rec, err := h.processor.ScanUpload(context.Background(), h.profileID, []byte("image"), "march bill")
	if err != nil {
		t.Fatalf("ScanUpload: %v", err)
	}
	if len(h.bills.created) != 1 {
		t.Fatalf("persisted %d records, want 1", len(h.bills.created))
	}
	if rec.InputMethod != constants.InputMethodAuto {
		t.Errorf("input method = %s, want AUTO", rec.InputMethod)
	}
	if rec.ElectricityUsage == nil || *rec.ElectricityUsage != 100 {
		t.Errorf("electricity usage = %v, want 100", rec.ElectricityUsage)
	}
	if math.Abs(rec.TotalCarbon-40.57) > 1e-9 {
		t.Errorf("total carbon = %v, want 40.57", rec.TotalCarbon)
	}
	if rec.OCRConfidence == nil || *rec.OCRConfidence != 0.92 {
		t.Errorf("ocr confidence = %v, want 0.92", rec.OCRConfidence)
	}
	if rec.OCRRawText == nil || *rec.OCRRawText != billText {
		t.Error("raw OCR text not stored")
	}
	if rec.Notes == nil || *rec.Notes != "march bill" {
		t.Errorf("notes = %v", rec.Notes)
	}
	if rec.PeriodStart == nil || rec.PeriodEnd == nil {
		t.Error("billing period not stored")
	}
}

func TestScanUploadEmptyImage(t *testing.T) {
	h := newHarness(&fakeExtractor{})

	_, err := h.processor.ScanUpload(context.Background(), h.profileID, nil, "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if h.extractor.calls != 0 {
		t.Errorf("extractor called %d times for empty image, want 0", h.extractor.calls)
	}
	if len(h.bills.created) != 0 {
		t.Error("record persisted for an empty image")
	}
}

func TestScanUploadExtractorFailure(t *testing.T) {
	cause := errors.New("provider status 500")
	h := newHarness(&fakeExtractor{err: cause})

	_, err := h.processor.ScanUpload(context.Background(), h.profileID, []byte("image"), "")
	var eErr *ExtractionError
	if !errors.As(err, &eErr) {
		t.Fatalf("err = %v, want *ExtractionError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("extraction error does not wrap the provider failure")
	}
	if len(h.bills.created) != 0 {
		t.Error("record persisted after extraction failure")
	}
}

func TestScanUploadBlankText(t *testing.T) {
	h := newHarness(&fakeExtractor{res: &ocr.Result{Text: "   \n ", Confidence: 0.1, Pages: 1}})

	_, err := h.processor.ScanUpload(context.Background(), h.profileID, []byte("image"), "")
	var eErr *ExtractionError
	if !errors.As(err, &eErr) {
		t.Fatalf("err = %v, want *ExtractionError", err)
	}
}

func TestScanUploadRejectsNonBill(t *testing.T) {
	flight := "BOARDING PASS\nPassenger: TAN WEI MING\nFlight SQ 318\nGate B12 Seat 32A\nDeparture 09:30 Terminal 3"
	h := newHarness(&fakeExtractor{res: &ocr.Result{Text: flight, Confidence: 0.95, Pages: 1}})

	_, err := h.processor.ScanUpload(context.Background(), h.profileID, []byte("image"), "")
	var cErr *ClassificationError
	if !errors.As(err, &cErr) {
		t.Fatalf("err = %v, want *ClassificationError", err)
	}
	if cErr.DetectedType != constants.DocTypeFlightTicket {
		t.Errorf("detected type = %s, want FLIGHT_TICKET", cErr.DetectedType)
	}
	if cErr.Message == "" {
		t.Error("classification error carries no diagnostic")
	}
	if len(h.bills.created) != 0 {
		t.Error("non-bill document was persisted")
	}
}

func TestScanUploadRejectsBillWithoutQuantities(t *testing.T) {
	text := "Electricity supply tariff statement. Meter reading pending. Billing period to be advised."
	h := newHarness(&fakeExtractor{res: &ocr.Result{Text: text, Confidence: 0.9, Pages: 1}})

	_, err := h.processor.ScanUpload(context.Background(), h.profileID, []byte("image"), "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if len(h.bills.created) != 0 {
		t.Error("record persisted with no usage values")
	}
}

func TestScanUploadUnknownProfile(t *testing.T) {
	h := newHarness(&fakeExtractor{res: &ocr.Result{Text: billText, Confidence: 0.9, Pages: 1}})

	_, err := h.processor.ScanUpload(context.Background(), uuid.New(), []byte("image"), "")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestScanUploadCancelledBeforePersist(t *testing.T) {
	h := newHarness(&fakeExtractor{res: &ocr.Result{Text: billText, Confidence: 0.9, Pages: 1}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.processor.ScanUpload(ctx, h.profileID, []byte("image"), "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(h.bills.created) != 0 {
		t.Error("partial record persisted after cancellation")
	}
}

func TestCreateManualHappyPath(t *testing.T) {
	h := newHarness(&fakeExtractor{})

	usage := 200.0
	rec, err := h.processor.CreateManual(context.Background(), h.profileID, parse.Fields{Electricity: &usage}, "")
	if err != nil {
		t.Fatalf("CreateManual: %v", err)
	}
	if rec.InputMethod != constants.InputMethodManual {
		t.Errorf("input method = %s, want MANUAL", rec.InputMethod)
	}
	if math.Abs(rec.TotalCarbon-81.14) > 1e-9 {
		t.Errorf("total carbon = %v, want 81.14", rec.TotalCarbon)
	}
	if rec.OCRConfidence != nil || rec.OCRRawText != nil {
		t.Error("manual record carries OCR metadata")
	}
	if h.extractor.calls != 0 {
		t.Error("manual path called the extractor")
	}
}

func TestCreateManualInvertedPeriod(t *testing.T) {
	h := newHarness(&fakeExtractor{})

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	usage := 10.0
	_, err := h.processor.CreateManual(context.Background(), h.profileID, parse.Fields{
		PeriodStart: &start,
		PeriodEnd:   &end,
		Electricity: &usage,
	}, "")

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if h.profiles.getCalls != 0 {
		t.Error("validation failure still reached the calculation step")
	}
	if len(h.bills.created) != 0 {
		t.Error("invalid manual entry was persisted")
	}
}

func TestCreateManualRequiresUsage(t *testing.T) {
	h := newHarness(&fakeExtractor{})

	_, err := h.processor.CreateManual(context.Background(), h.profileID, parse.Fields{}, "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if h.profiles.getCalls != 0 {
		t.Error("validation failure still reached the calculation step")
	}
}

func TestCreateManualRepositoryErrorPropagates(t *testing.T) {
	h := newHarness(&fakeExtractor{})
	dbErr := errors.New("connection reset")
	h.bills.err = dbErr

	usage := 10.0
	_, err := h.processor.CreateManual(context.Background(), h.profileID, parse.Fields{Electricity: &usage}, "")
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want the repository error unchanged", err)
	}
}
