// Code generated by ent, DO NOT EDIT.

package utilitybill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldProfileID, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldPeriodEnd, v))
}

// ElectricityUsage applies equality check predicate on the "electricity_usage" field. It's identical to ElectricityUsageEQ.
func ElectricityUsage(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldElectricityUsage, v))
}

// WaterUsage applies equality check predicate on the "water_usage" field. It's identical to WaterUsageEQ.
func WaterUsage(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldWaterUsage, v))
}

// GasUsage applies equality check predicate on the "gas_usage" field. It's identical to GasUsageEQ.
func GasUsage(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldGasUsage, v))
}

// ElectricityCarbon applies equality check predicate on the "electricity_carbon" field. It's identical to ElectricityCarbonEQ.
func ElectricityCarbon(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldElectricityCarbon, v))
}

// WaterCarbon applies equality check predicate on the "water_carbon" field. It's identical to WaterCarbonEQ.
func WaterCarbon(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldWaterCarbon, v))
}

// GasCarbon applies equality check predicate on the "gas_carbon" field. It's identical to GasCarbonEQ.
func GasCarbon(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldGasCarbon, v))
}

// TotalCarbon applies equality check predicate on the "total_carbon" field. It's identical to TotalCarbonEQ.
func TotalCarbon(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldTotalCarbon, v))
}

// InputMethod applies equality check predicate on the "input_method" field. It's identical to InputMethodEQ.
func InputMethod(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldInputMethod, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrRawText applies equality check predicate on the "ocr_raw_text" field. It's identical to OcrRawTextEQ.
func OcrRawText(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldOcrRawText, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldProfileID, vs...))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodStartIsNil applies the IsNil predicate on the "period_start" field.
func PeriodStartIsNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIsNull(FieldPeriodStart))
}

// PeriodStartNotNil applies the NotNil predicate on the "period_start" field.
func PeriodStartNotNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotNull(FieldPeriodStart))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldPeriodEnd, v))
}

// PeriodEndIsNil applies the IsNil predicate on the "period_end" field.
func PeriodEndIsNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIsNull(FieldPeriodEnd))
}

// PeriodEndNotNil applies the NotNil predicate on the "period_end" field.
func PeriodEndNotNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotNull(FieldPeriodEnd))
}

// ElectricityUsageEQ applies the EQ predicate on the "electricity_usage" field.
func ElectricityUsageEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldElectricityUsage, v))
}

// ElectricityUsageNEQ applies the NEQ predicate on the "electricity_usage" field.
func ElectricityUsageNEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldElectricityUsage, v))
}

// ElectricityUsageIn applies the In predicate on the "electricity_usage" field.
func ElectricityUsageIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldElectricityUsage, vs...))
}

// ElectricityUsageNotIn applies the NotIn predicate on the "electricity_usage" field.
func ElectricityUsageNotIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldElectricityUsage, vs...))
}

// ElectricityUsageGT applies the GT predicate on the "electricity_usage" field.
func ElectricityUsageGT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldElectricityUsage, v))
}

// ElectricityUsageGTE applies the GTE predicate on the "electricity_usage" field.
func ElectricityUsageGTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldElectricityUsage, v))
}

// ElectricityUsageLT applies the LT predicate on the "electricity_usage" field.
func ElectricityUsageLT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldElectricityUsage, v))
}

// ElectricityUsageLTE applies the LTE predicate on the "electricity_usage" field.
func ElectricityUsageLTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldElectricityUsage, v))
}

// ElectricityUsageIsNil applies the IsNil predicate on the "electricity_usage" field.
func ElectricityUsageIsNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIsNull(FieldElectricityUsage))
}

// ElectricityUsageNotNil applies the NotNil predicate on the "electricity_usage" field.
func ElectricityUsageNotNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotNull(FieldElectricityUsage))
}

// WaterUsageEQ applies the EQ predicate on the "water_usage" field.
func WaterUsageEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldWaterUsage, v))
}

// WaterUsageNEQ applies the NEQ predicate on the "water_usage" field.
func WaterUsageNEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldWaterUsage, v))
}

// WaterUsageIn applies the In predicate on the "water_usage" field.
func WaterUsageIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldWaterUsage, vs...))
}

// WaterUsageNotIn applies the NotIn predicate on the "water_usage" field.
func WaterUsageNotIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldWaterUsage, vs...))
}

// WaterUsageGT applies the GT predicate on the "water_usage" field.
func WaterUsageGT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldWaterUsage, v))
}

// WaterUsageGTE applies the GTE predicate on the "water_usage" field.
func WaterUsageGTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldWaterUsage, v))
}

// WaterUsageLT applies the LT predicate on the "water_usage" field.
func WaterUsageLT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldWaterUsage, v))
}

// WaterUsageLTE applies the LTE predicate on the "water_usage" field.
func WaterUsageLTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldWaterUsage, v))
}

// WaterUsageIsNil applies the IsNil predicate on the "water_usage" field.
func WaterUsageIsNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIsNull(FieldWaterUsage))
}

// WaterUsageNotNil applies the NotNil predicate on the "water_usage" field.
func WaterUsageNotNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotNull(FieldWaterUsage))
}

// GasUsageEQ applies the EQ predicate on the "gas_usage" field.
func GasUsageEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldGasUsage, v))
}

// GasUsageNEQ applies the NEQ predicate on the "gas_usage" field.
func GasUsageNEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldGasUsage, v))
}

// GasUsageIn applies the In predicate on the "gas_usage" field.
func GasUsageIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldGasUsage, vs...))
}

// GasUsageNotIn applies the NotIn predicate on the "gas_usage" field.
func GasUsageNotIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldGasUsage, vs...))
}

// GasUsageGT applies the GT predicate on the "gas_usage" field.
func GasUsageGT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldGasUsage, v))
}

// GasUsageGTE applies the GTE predicate on the "gas_usage" field.
func GasUsageGTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldGasUsage, v))
}

// GasUsageLT applies the LT predicate on the "gas_usage" field.
func GasUsageLT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldGasUsage, v))
}

// GasUsageLTE applies the LTE predicate on the "gas_usage" field.
func GasUsageLTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldGasUsage, v))
}

// GasUsageIsNil applies the IsNil predicate on the "gas_usage" field.
func GasUsageIsNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIsNull(FieldGasUsage))
}

// GasUsageNotNil applies the NotNil predicate on the "gas_usage" field.
func GasUsageNotNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotNull(FieldGasUsage))
}

// ElectricityCarbonEQ applies the EQ predicate on the "electricity_carbon" field.
func ElectricityCarbonEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldElectricityCarbon, v))
}

// ElectricityCarbonNEQ applies the NEQ predicate on the "electricity_carbon" field.
func ElectricityCarbonNEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldElectricityCarbon, v))
}

// ElectricityCarbonIn applies the In predicate on the "electricity_carbon" field.
func ElectricityCarbonIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldElectricityCarbon, vs...))
}

// ElectricityCarbonNotIn applies the NotIn predicate on the "electricity_carbon" field.
func ElectricityCarbonNotIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldElectricityCarbon, vs...))
}

// ElectricityCarbonGT applies the GT predicate on the "electricity_carbon" field.
func ElectricityCarbonGT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldElectricityCarbon, v))
}

// ElectricityCarbonGTE applies the GTE predicate on the "electricity_carbon" field.
func ElectricityCarbonGTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldElectricityCarbon, v))
}

// ElectricityCarbonLT applies the LT predicate on the "electricity_carbon" field.
func ElectricityCarbonLT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldElectricityCarbon, v))
}

// ElectricityCarbonLTE applies the LTE predicate on the "electricity_carbon" field.
func ElectricityCarbonLTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldElectricityCarbon, v))
}

// WaterCarbonEQ applies the EQ predicate on the "water_carbon" field.
func WaterCarbonEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldWaterCarbon, v))
}

// WaterCarbonNEQ applies the NEQ predicate on the "water_carbon" field.
func WaterCarbonNEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldWaterCarbon, v))
}

// WaterCarbonIn applies the In predicate on the "water_carbon" field.
func WaterCarbonIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldWaterCarbon, vs...))
}

// WaterCarbonNotIn applies the NotIn predicate on the "water_carbon" field.
func WaterCarbonNotIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldWaterCarbon, vs...))
}

// WaterCarbonGT applies the GT predicate on the "water_carbon" field.
func WaterCarbonGT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldWaterCarbon, v))
}

// WaterCarbonGTE applies the GTE predicate on the "water_carbon" field.
func WaterCarbonGTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldWaterCarbon, v))
}

// WaterCarbonLT applies the LT predicate on the "water_carbon" field.
func WaterCarbonLT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldWaterCarbon, v))
}

// WaterCarbonLTE applies the LTE predicate on the "water_carbon" field.
func WaterCarbonLTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldWaterCarbon, v))
}

// GasCarbonEQ applies the EQ predicate on the "gas_carbon" field.
func GasCarbonEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldGasCarbon, v))
}

// GasCarbonNEQ applies the NEQ predicate on the "gas_carbon" field.
func GasCarbonNEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldGasCarbon, v))
}

// GasCarbonIn applies the In predicate on the "gas_carbon" field.
func GasCarbonIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldGasCarbon, vs...))
}

// GasCarbonNotIn applies the NotIn predicate on the "gas_carbon" field.
func GasCarbonNotIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldGasCarbon, vs...))
}

// GasCarbonGT applies the GT predicate on the "gas_carbon" field.
func GasCarbonGT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldGasCarbon, v))
}

// GasCarbonGTE applies the GTE predicate on the "gas_carbon" field.
func GasCarbonGTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldGasCarbon, v))
}

// GasCarbonLT applies the LT predicate on the "gas_carbon" field.
func GasCarbonLT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldGasCarbon, v))
}

// GasCarbonLTE applies the LTE predicate on the "gas_carbon" field.
func GasCarbonLTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldGasCarbon, v))
}

// TotalCarbonEQ applies the EQ predicate on the "total_carbon" field.
func TotalCarbonEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldTotalCarbon, v))
}

// TotalCarbonNEQ applies the NEQ predicate on the "total_carbon" field.
func TotalCarbonNEQ(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldTotalCarbon, v))
}

// TotalCarbonIn applies the In predicate on the "total_carbon" field.
func TotalCarbonIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldTotalCarbon, vs...))
}

// TotalCarbonNotIn applies the NotIn predicate on the "total_carbon" field.
func TotalCarbonNotIn(vs ...float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldTotalCarbon, vs...))
}

// TotalCarbonGT applies the GT predicate on the "total_carbon" field.
func TotalCarbonGT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldTotalCarbon, v))
}

// TotalCarbonGTE applies the GTE predicate on the "total_carbon" field.
func TotalCarbonGTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldTotalCarbon, v))
}

// TotalCarbonLT applies the LT predicate on the "total_carbon" field.
func TotalCarbonLT(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldTotalCarbon, v))
}

// TotalCarbonLTE applies the LTE predicate on the "total_carbon" field.
func TotalCarbonLTE(v float64) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldTotalCarbon, v))
}

// InputMethodEQ applies the EQ predicate on the "input_method" field.
func InputMethodEQ(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldInputMethod, v))
}

// InputMethodNEQ applies the NEQ predicate on the "input_method" field.
func InputMethodNEQ(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldInputMethod, v))
}

// InputMethodIn applies the In predicate on the "input_method" field.
func InputMethodIn(vs ...string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldInputMethod, vs...))
}

// InputMethodNotIn applies the NotIn predicate on the "input_method" field.
func InputMethodNotIn(vs ...string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldInputMethod, vs...))
}

// InputMethodGT applies the GT predicate on the "input_method" field.
func InputMethodGT(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldInputMethod, v))
}

// InputMethodGTE applies the GTE predicate on the "input_method" field.
func InputMethodGTE(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldInputMethod, v))
}

// InputMethodLT applies the LT predicate on the "input_method" field.
func InputMethodLT(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldInputMethod, v))
}

// InputMethodLTE applies the LTE predicate on the "input_method" field.
func InputMethodLTE(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldInputMethod, v))
}

// InputMethodContains applies the Contains predicate on the "input_method" field.
func InputMethodContains(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldContains(FieldInputMethod, v))
}

// InputMethodHasPrefix applies the HasPrefix predicate on the "input_method" field.
func InputMethodHasPrefix(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldHasPrefix(FieldInputMethod, v))
}

// InputMethodHasSuffix applies the HasSuffix predicate on the "input_method" field.
func InputMethodHasSuffix(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldHasSuffix(FieldInputMethod, v))
}

// InputMethodEqualFold applies the EqualFold predicate on the "input_method" field.
func InputMethodEqualFold(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEqualFold(FieldInputMethod, v))
}

// InputMethodContainsFold applies the ContainsFold predicate on the "input_method" field.
func InputMethodContainsFold(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldContainsFold(FieldInputMethod, v))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float32) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldOcrConfidence, v))
}

// OcrConfidenceIsNil applies the IsNil predicate on the "ocr_confidence" field.
func OcrConfidenceIsNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIsNull(FieldOcrConfidence))
}

// OcrConfidenceNotNil applies the NotNil predicate on the "ocr_confidence" field.
func OcrConfidenceNotNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotNull(FieldOcrConfidence))
}

// OcrRawTextEQ applies the EQ predicate on the "ocr_raw_text" field.
func OcrRawTextEQ(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldOcrRawText, v))
}

// OcrRawTextNEQ applies the NEQ predicate on the "ocr_raw_text" field.
func OcrRawTextNEQ(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldOcrRawText, v))
}

// OcrRawTextIn applies the In predicate on the "ocr_raw_text" field.
func OcrRawTextIn(vs ...string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldOcrRawText, vs...))
}

// OcrRawTextNotIn applies the NotIn predicate on the "ocr_raw_text" field.
func OcrRawTextNotIn(vs ...string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldOcrRawText, vs...))
}

// OcrRawTextGT applies the GT predicate on the "ocr_raw_text" field.
func OcrRawTextGT(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldOcrRawText, v))
}

// OcrRawTextGTE applies the GTE predicate on the "ocr_raw_text" field.
func OcrRawTextGTE(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldOcrRawText, v))
}

// OcrRawTextLT applies the LT predicate on the "ocr_raw_text" field.
func OcrRawTextLT(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldOcrRawText, v))
}

// OcrRawTextLTE applies the LTE predicate on the "ocr_raw_text" field.
func OcrRawTextLTE(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldOcrRawText, v))
}

// OcrRawTextContains applies the Contains predicate on the "ocr_raw_text" field.
func OcrRawTextContains(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldContains(FieldOcrRawText, v))
}

// OcrRawTextHasPrefix applies the HasPrefix predicate on the "ocr_raw_text" field.
func OcrRawTextHasPrefix(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldHasPrefix(FieldOcrRawText, v))
}

// OcrRawTextHasSuffix applies the HasSuffix predicate on the "ocr_raw_text" field.
func OcrRawTextHasSuffix(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldHasSuffix(FieldOcrRawText, v))
}

// OcrRawTextIsNil applies the IsNil predicate on the "ocr_raw_text" field.
func OcrRawTextIsNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIsNull(FieldOcrRawText))
}

// OcrRawTextNotNil applies the NotNil predicate on the "ocr_raw_text" field.
func OcrRawTextNotNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotNull(FieldOcrRawText))
}

// OcrRawTextEqualFold applies the EqualFold predicate on the "ocr_raw_text" field.
func OcrRawTextEqualFold(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEqualFold(FieldOcrRawText, v))
}

// OcrRawTextContainsFold applies the ContainsFold predicate on the "ocr_raw_text" field.
func OcrRawTextContainsFold(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldContainsFold(FieldOcrRawText, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UtilityBill {
	return predicate.UtilityBill(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.UtilityBill {
	return predicate.UtilityBill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.UtilityBill {
	return predicate.UtilityBill(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UtilityBill) predicate.UtilityBill {
	return predicate.UtilityBill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UtilityBill) predicate.UtilityBill {
	return predicate.UtilityBill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UtilityBill) predicate.UtilityBill {
	return predicate.UtilityBill(sql.NotPredicates(p))
}
