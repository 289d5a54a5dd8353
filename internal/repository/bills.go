package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/carbon-tracker/gen/ent"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/utilitybill"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/entity"
	"github.com/ecotrack-app/carbon-tracker/internal/utils"
)

// BillRepository is the persistence collaborator for utility-bill records.
// Create is a single atomic insert: emission components are columns of the
// parent row, so a record is either fully stored or not at all.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.UtilityBill) (*entity.UtilityBill, error)
	GetByID(ctx context.Context, id, profileID uuid.UUID) (*entity.UtilityBill, error)
	List(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.UtilityBill, error)
	Delete(ctx context.Context, id, profileID uuid.UUID) error
}

type billRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBillRepository(client *ent.Client, logger *slog.Logger) BillRepository {
	return &billRepository{
		client: client,
		logger: logger,
	}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.UtilityBill) (*entity.UtilityBill, error) {
	rec, err := r.client.UtilityBill.Create().
		SetProfileID(bill.ProfileID).
		SetNillablePeriodStart(bill.PeriodStart).
		SetNillablePeriodEnd(bill.PeriodEnd).
		SetNillableElectricityUsage(bill.ElectricityUsage).
		SetNillableWaterUsage(bill.WaterUsage).
		SetNillableGasUsage(bill.GasUsage).
		SetElectricityCarbon(bill.ElectricityCarbon).
		SetWaterCarbon(bill.WaterCarbon).
		SetGasCarbon(bill.GasCarbon).
		SetTotalCarbon(bill.TotalCarbon).
		SetInputMethod(string(bill.InputMethod)).
		SetNillableOcrConfidence(bill.OCRConfidence).
		SetNillableOcrRawText(bill.OCRRawText).
		SetNillableNotes(bill.Notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create utility bill", "profile_id", bill.ProfileID, "error", err)
		return nil, common.WrapError(err, "create utility bill")
	}
	return utils.ToUtilityBill(rec), nil
}

func (r *billRepository) GetByID(ctx context.Context, id, profileID uuid.UUID) (*entity.UtilityBill, error) {
	rec, err := r.client.UtilityBill.Query().
		Where(utilitybill.ID(id), utilitybill.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get utility bill", "bill_id", id, "error", err)
		return nil, err
	}
	return utils.ToUtilityBill(rec), nil
}

func (r *billRepository) List(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.UtilityBill, error) {
	q := r.client.UtilityBill.Query().Where(utilitybill.ProfileID(profileID))
	if fromDate != nil {
		q = q.Where(utilitybill.PeriodStartGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(utilitybill.PeriodStartLTE(*toDate))
	}
	recs, err := q.Order(utilitybill.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list utility bills", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.UtilityBill, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToUtilityBill(rec)
	}
	return result, nil
}

func (r *billRepository) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	n, err := r.client.UtilityBill.Delete().
		Where(utilitybill.ID(id), utilitybill.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete utility bill", "bill_id", id, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
