package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	billspb "github.com/ecotrack-app/carbon-tracker/gen/proto/carbontracker/v1"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/export"
	"github.com/ecotrack-app/carbon-tracker/internal/parse"
	"github.com/ecotrack-app/carbon-tracker/internal/pipeline"
	"github.com/ecotrack-app/carbon-tracker/internal/repository"
	"github.com/ecotrack-app/carbon-tracker/internal/utils"
)

const maxNotesLength = 500

type BillService struct {
	billspb.UnimplementedCarbonTrackerServiceServer
	processor *pipeline.Processor
	billsRepo repository.BillRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewBillService(processor *pipeline.Processor, billsRepo repository.BillRepository, exporter *export.Service, logger *slog.Logger) *BillService {
	return &BillService{
		processor: processor,
		billsRepo: billsRepo,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *BillService) ScanBill(ctx context.Context, req *billspb.ScanBillRequest) (*billspb.ScanBillResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	v := common.NewValidator().Field("notes", req.GetNotes(), func(name string, value interface{}) *common.FieldError {
		return common.MaxLength(name, value, maxNotesLength)
	})
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	s.logger.Info("scan bill request", "profile_id", profileID, "image_bytes", len(req.GetImage()))
	rec, err := s.processor.ScanUpload(ctx, profileID, req.GetImage(), req.GetNotes())
	if err != nil {
		return nil, s.mapPipelineError(err)
	}
	return &billspb.ScanBillResponse{Bill: utils.ToPBUtilityBill(rec)}, nil
}

func (s *BillService) CreateManualBill(ctx context.Context, req *billspb.CreateManualBillRequest) (*billspb.CreateManualBillResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	fields := parse.Fields{
		Electricity: req.ElectricityUsage,
		Water:       req.WaterUsage,
		Gas:         req.GasUsage,
	}
	if fields.PeriodStart, err = parseOptionalYMD("period_start", req.GetPeriodStart()); err != nil {
		return nil, err
	}
	if fields.PeriodEnd, err = parseOptionalYMD("period_end", req.GetPeriodEnd()); err != nil {
		return nil, err
	}

	rec, err := s.processor.CreateManual(ctx, profileID, fields, req.GetNotes())
	if err != nil {
		return nil, s.mapPipelineError(err)
	}
	return &billspb.CreateManualBillResponse{Bill: utils.ToPBUtilityBill(rec)}, nil
}

func (s *BillService) GetBill(ctx context.Context, req *billspb.GetBillRequest) (*billspb.GetBillResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	billID, err := uuid.Parse(req.GetBillId())
	if err != nil {
		return nil, common.InvalidArgumentError("bill_id must be a UUID")
	}

	rec, err := s.billsRepo.GetByID(ctx, billID, profileID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("bill not found")
		}
		s.logger.Error("failed to get bill", "bill_id", billID, "error", err)
		return nil, common.InternalError("get bill failed")
	}
	return &billspb.GetBillResponse{Bill: utils.ToPBUtilityBill(rec)}, nil
}

func (s *BillService) ListBills(ctx context.Context, req *billspb.ListBillsRequest) (*billspb.ListBillsResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	recs, err := s.billsRepo.List(ctx, profileID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list bills", "profile_id", profileID, "error", err)
		return nil, common.InternalError("list bills failed")
	}

	out := make([]*billspb.UtilityBill, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBUtilityBill(r))
	}
	return &billspb.ListBillsResponse{Bills: out}, nil
}

func (s *BillService) DeleteBill(ctx context.Context, req *billspb.DeleteBillRequest) (*billspb.DeleteBillResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	billID, err := uuid.Parse(req.GetBillId())
	if err != nil {
		return nil, common.InvalidArgumentError("bill_id must be a UUID")
	}

	if err := s.billsRepo.Delete(ctx, billID, profileID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("bill not found")
		}
		s.logger.Error("failed to delete bill", "bill_id", billID, "error", err)
		return nil, common.InternalError("delete bill failed")
	}
	s.logger.Info("bill deleted", "bill_id", billID, "profile_id", profileID)
	return &billspb.DeleteBillResponse{}, nil
}

func (s *BillService) ExportBills(ctx context.Context, req *billspb.ExportBillsRequest) (*billspb.ExportBillsResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportBillsXLSX(ctx, profileID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to export bills", "profile_id", profileID, "error", err)
		return nil, common.InternalError("export bills failed")
	}
	filename := fmt.Sprintf("utility-bills-%s.xlsx", time.Now().UTC().Format("20060102"))
	return &billspb.ExportBillsResponse{Xlsx: data, Filename: filename}, nil
}

// mapPipelineError translates the pipeline's typed failures into gRPC codes:
// caller mistakes are InvalidArgument, "this image is not usable / not a
// bill" is FailedPrecondition so the client can explain why, and everything
// else is Internal.
func (s *BillService) mapPipelineError(err error) error {
	var vErr *pipeline.ValidationError
	if errors.As(err, &vErr) {
		return status.Error(codes.InvalidArgument, vErr.Message)
	}
	var eErr *pipeline.ExtractionError
	if errors.As(err, &eErr) {
		return status.Error(codes.FailedPrecondition, eErr.Message)
	}
	var cErr *pipeline.ClassificationError
	if errors.As(err, &cErr) {
		return status.Error(codes.FailedPrecondition, cErr.Message)
	}
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFoundError("profile not found")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.Canceled, "request cancelled")
	}
	s.logger.Error("pipeline failed", "error", err)
	return common.InternalError("bill processing failed")
}

func parseProfileID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, common.InvalidArgumentError("profile_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	return id, nil
}

func parseOptionalYMD(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := utils.ParseYMD(raw)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("%s invalid (YYYY-MM-DD): %v", field, err)
	}
	return &t, nil
}

func parseDateWindow(fromRaw, toRaw string) (*time.Time, *time.Time, error) {
	fromDate, err := parseOptionalYMD("from_date", fromRaw)
	if err != nil {
		return nil, nil, err
	}
	toDate, err := parseOptionalYMD("to_date", toRaw)
	if err != nil {
		return nil, nil, err
	}
	return fromDate, toDate, nil
}
