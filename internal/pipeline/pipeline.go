package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/carbon-tracker/constants"
	"github.com/ecotrack-app/carbon-tracker/internal/classify"
	"github.com/ecotrack-app/carbon-tracker/internal/emission"
	"github.com/ecotrack-app/carbon-tracker/internal/entity"
	"github.com/ecotrack-app/carbon-tracker/internal/metrics"
	"github.com/ecotrack-app/carbon-tracker/internal/ocr"
	"github.com/ecotrack-app/carbon-tracker/internal/parse"
	"github.com/ecotrack-app/carbon-tracker/internal/repository"
)

// Stage names for logs and metrics.
const (
	StageValidate  = "validate"
	StageExtract   = "extract"
	StageClassify  = "classify"
	StageParse     = "parse"
	StageCalculate = "calculate"
	StagePersist   = "persist"
)

// Processor sequences the scan pipeline: validate → OCR extract → classify →
// parse → calculate → persist. One pass per upload, no retries across gates.
// Stages share nothing mutable, so concurrent scans are independent.
type Processor struct {
	logger     *slog.Logger
	extractor  ocr.TextExtractor
	classifier *classify.Classifier
	parser     *parse.Parser
	calc       *emission.Calculator
	profiles   repository.ProfileRepository
	bills      repository.BillRepository
	metrics    *metrics.Pipeline // nil disables instrumentation
}

func NewProcessor(
	logger *slog.Logger,
	extractor ocr.TextExtractor,
	classifier *classify.Classifier,
	parser *parse.Parser,
	calc *emission.Calculator,
	profiles repository.ProfileRepository,
	bills repository.BillRepository,
	m *metrics.Pipeline,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:     logger,
		extractor:  extractor,
		classifier: classifier,
		parser:     parser,
		calc:       calc,
		profiles:   profiles,
		bills:      bills,
		metrics:    m,
	}
}

// ScanUpload runs the full auto path for one uploaded bill image and returns
// the persisted record. Failures are typed: *ValidationError,
// *ExtractionError, *ClassificationError; anything else came from the
// profile/bill repositories and propagates unchanged.
func (p *Processor) ScanUpload(ctx context.Context, profileID uuid.UUID, image []byte, notes string) (*entity.UtilityBill, error) {
	start := time.Now()

	// 1) Validate
	if len(image) == 0 {
		p.metrics.Observe(StageValidate, metrics.ResultRejected)
		return nil, newValidationErrorf("uploaded file is empty")
	}
	p.metrics.Observe(StageValidate, metrics.ResultOK)

	// 2) Extract
	res, err := p.extractor.Extract(ctx, image)
	if err != nil {
		p.metrics.Observe(StageExtract, metrics.ResultError)
		p.logger.Error("pipeline.extract.failed", "profile_id", profileID, "error", err)
		return nil, &ExtractionError{Message: "OCR produced no usable text", Cause: err}
	}
	if strings.TrimSpace(res.Text) == "" {
		p.metrics.Observe(StageExtract, metrics.ResultError)
		p.logger.Warn("pipeline.extract.empty", "profile_id", profileID, "pages", res.Pages)
		return nil, &ExtractionError{Message: "OCR produced no usable text"}
	}
	p.metrics.Observe(StageExtract, metrics.ResultOK)
	p.logger.Debug("pipeline.extract.ok",
		"profile_id", profileID,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"text_bytes", len(res.Text),
	)

	// 3) Classify — the central correctness gate: non-bill documents must
	// never reach parsing or persistence.
	verdict := p.classifier.Classify(res.Text)
	if verdict.DocumentType != constants.DocTypeUtilityBill {
		p.metrics.Observe(StageClassify, metrics.ResultRejected)
		p.logger.Warn("pipeline.classify.rejected",
			"profile_id", profileID,
			"document_type", string(verdict.DocumentType),
			"diagnostic", verdict.Diagnostic,
		)
		return nil, &ClassificationError{Message: verdict.Diagnostic, DetectedType: verdict.DocumentType}
	}
	p.metrics.Observe(StageClassify, metrics.ResultOK)
	p.logger.Debug("pipeline.classify.ok",
		"profile_id", profileID,
		"confidence", verdict.Confidence,
		"matched", len(verdict.MatchedKeywords),
	)

	// 4) Parse — structurally always succeeds; fields may be partially nil.
	fields := p.parser.Parse(res.Text)
	if fields.Electricity == nil && fields.Water == nil && fields.Gas == nil {
		p.metrics.Observe(StageParse, metrics.ResultRejected)
		return nil, newValidationErrorf("no usage quantities could be extracted from the bill")
	}
	p.metrics.Observe(StageParse, metrics.ResultOK)

	bill := &entity.UtilityBill{
		ProfileID:        profileID,
		PeriodStart:      fields.PeriodStart,
		PeriodEnd:        fields.PeriodEnd,
		ElectricityUsage: fields.Electricity,
		WaterUsage:       fields.Water,
		GasUsage:         fields.Gas,
		InputMethod:      constants.InputMethodAuto,
		OCRConfidence:    &res.Confidence,
		OCRRawText:       &fields.RawText,
	}
	if notes != "" {
		bill.Notes = &notes
	}

	rec, err := p.finish(ctx, profileID, bill)
	if err != nil {
		return nil, err
	}
	p.metrics.ObserveDuration(time.Since(start).Seconds())
	p.logger.Info("pipeline.scan.ok",
		"profile_id", profileID,
		"bill_id", rec.ID,
		"total_carbon", rec.TotalCarbon,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// CreateManual runs the manual path: caller-supplied fields, no OCR metadata.
// Validation happens before any calculation.
func (p *Processor) CreateManual(ctx context.Context, profileID uuid.UUID, fields parse.Fields, notes string) (*entity.UtilityBill, error) {
	if fields.PeriodStart != nil && fields.PeriodEnd != nil && fields.PeriodStart.After(*fields.PeriodEnd) {
		p.metrics.Observe(StageValidate, metrics.ResultRejected)
		return nil, newValidationErrorf("billing period start %s is after end %s",
			fields.PeriodStart.Format("2006-01-02"), fields.PeriodEnd.Format("2006-01-02"))
	}
	if fields.Electricity == nil && fields.Water == nil && fields.Gas == nil {
		p.metrics.Observe(StageValidate, metrics.ResultRejected)
		return nil, newValidationErrorf("at least one usage value is required")
	}
	p.metrics.Observe(StageValidate, metrics.ResultOK)

	bill := &entity.UtilityBill{
		ProfileID:        profileID,
		PeriodStart:      fields.PeriodStart,
		PeriodEnd:        fields.PeriodEnd,
		ElectricityUsage: fields.Electricity,
		WaterUsage:       fields.Water,
		GasUsage:         fields.Gas,
		InputMethod:      constants.InputMethodManual,
	}
	if notes != "" {
		bill.Notes = &notes
	}

	rec, err := p.finish(ctx, profileID, bill)
	if err != nil {
		return nil, err
	}
	p.logger.Info("pipeline.manual.ok", "profile_id", profileID, "bill_id", rec.ID, "total_carbon", rec.TotalCarbon)
	return rec, nil
}

// finish runs the shared calculate and persist steps.
func (p *Processor) finish(ctx context.Context, profileID uuid.UUID, bill *entity.UtilityBill) (*entity.UtilityBill, error) {
	prof, err := p.profiles.GetByID(ctx, profileID)
	if err != nil {
		p.metrics.Observe(StagePersist, metrics.ResultError)
		return nil, err
	}

	// 5) Calculate
	em := p.calc.Calculate(prof.Region, bill.ElectricityUsage, bill.WaterUsage, bill.GasUsage)
	bill.ElectricityCarbon = em.Electricity
	bill.WaterCarbon = em.Water
	bill.GasCarbon = em.Gas
	bill.TotalCarbon = em.Total
	p.metrics.Observe(StageCalculate, metrics.ResultOK)

	// Cancelled requests must not leave a partial record behind.
	if err := ctx.Err(); err != nil {
		p.metrics.Observe(StagePersist, metrics.ResultError)
		return nil, err
	}

	// 6) Persist — one atomic create, owned by the repository from here on.
	rec, err := p.bills.Create(ctx, bill)
	if err != nil {
		p.metrics.Observe(StagePersist, metrics.ResultError)
		p.logger.Error("pipeline.persist.failed", "profile_id", profileID, "error", err)
		return nil, err
	}
	p.metrics.Observe(StagePersist, metrics.ResultOK)
	return rec, nil
}
