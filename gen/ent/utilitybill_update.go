// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/predicate"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/profile"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/utilitybill"
	"github.com/google/uuid"
)

// UtilityBillUpdate is the builder for updating UtilityBill entities.
type UtilityBillUpdate struct {
	config
	hooks    []Hook
	mutation *UtilityBillMutation
}

// Where appends a list predicates to the UtilityBillUpdate builder.
func (_u *UtilityBillUpdate) Where(ps ...predicate.UtilityBill) *UtilityBillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *UtilityBillUpdate) SetProfileID(v uuid.UUID) *UtilityBillUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableProfileID(v *uuid.UUID) *UtilityBillUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *UtilityBillUpdate) SetPeriodStart(v time.Time) *UtilityBillUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillablePeriodStart(v *time.Time) *UtilityBillUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *UtilityBillUpdate) ClearPeriodStart() *UtilityBillUpdate {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *UtilityBillUpdate) SetPeriodEnd(v time.Time) *UtilityBillUpdate {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillablePeriodEnd(v *time.Time) *UtilityBillUpdate {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *UtilityBillUpdate) ClearPeriodEnd() *UtilityBillUpdate {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetElectricityUsage sets the "electricity_usage" field.
func (_u *UtilityBillUpdate) SetElectricityUsage(v float64) *UtilityBillUpdate {
	_u.mutation.ResetElectricityUsage()
	_u.mutation.SetElectricityUsage(v)
	return _u
}

// SetNillableElectricityUsage sets the "electricity_usage" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableElectricityUsage(v *float64) *UtilityBillUpdate {
	if v != nil {
		_u.SetElectricityUsage(*v)
	}
	return _u
}

// AddElectricityUsage adds value to the "electricity_usage" field.
func (_u *UtilityBillUpdate) AddElectricityUsage(v float64) *UtilityBillUpdate {
	_u.mutation.AddElectricityUsage(v)
	return _u
}

// ClearElectricityUsage clears the value of the "electricity_usage" field.
func (_u *UtilityBillUpdate) ClearElectricityUsage() *UtilityBillUpdate {
	_u.mutation.ClearElectricityUsage()
	return _u
}

// SetWaterUsage sets the "water_usage" field.
func (_u *UtilityBillUpdate) SetWaterUsage(v float64) *UtilityBillUpdate {
	_u.mutation.ResetWaterUsage()
	_u.mutation.SetWaterUsage(v)
	return _u
}

// SetNillableWaterUsage sets the "water_usage" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableWaterUsage(v *float64) *UtilityBillUpdate {
	if v != nil {
		_u.SetWaterUsage(*v)
	}
	return _u
}

// AddWaterUsage adds value to the "water_usage" field.
func (_u *UtilityBillUpdate) AddWaterUsage(v float64) *UtilityBillUpdate {
	_u.mutation.AddWaterUsage(v)
	return _u
}

// ClearWaterUsage clears the value of the "water_usage" field.
func (_u *UtilityBillUpdate) ClearWaterUsage() *UtilityBillUpdate {
	_u.mutation.ClearWaterUsage()
	return _u
}

// SetGasUsage sets the "gas_usage" field.
func (_u *UtilityBillUpdate) SetGasUsage(v float64) *UtilityBillUpdate {
	_u.mutation.ResetGasUsage()
	_u.mutation.SetGasUsage(v)
	return _u
}

// SetNillableGasUsage sets the "gas_usage" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableGasUsage(v *float64) *UtilityBillUpdate {
	if v != nil {
		_u.SetGasUsage(*v)
	}
	return _u
}

// AddGasUsage adds value to the "gas_usage" field.
func (_u *UtilityBillUpdate) AddGasUsage(v float64) *UtilityBillUpdate {
	_u.mutation.AddGasUsage(v)
	return _u
}

// ClearGasUsage clears the value of the "gas_usage" field.
func (_u *UtilityBillUpdate) ClearGasUsage() *UtilityBillUpdate {
	_u.mutation.ClearGasUsage()
	return _u
}

// SetElectricityCarbon sets the "electricity_carbon" field.
func (_u *UtilityBillUpdate) SetElectricityCarbon(v float64) *UtilityBillUpdate {
	_u.mutation.ResetElectricityCarbon()
	_u.mutation.SetElectricityCarbon(v)
	return _u
}

// SetNillableElectricityCarbon sets the "electricity_carbon" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableElectricityCarbon(v *float64) *UtilityBillUpdate {
	if v != nil {
		_u.SetElectricityCarbon(*v)
	}
	return _u
}

// AddElectricityCarbon adds value to the "electricity_carbon" field.
func (_u *UtilityBillUpdate) AddElectricityCarbon(v float64) *UtilityBillUpdate {
	_u.mutation.AddElectricityCarbon(v)
	return _u
}

// SetWaterCarbon sets the "water_carbon" field.
func (_u *UtilityBillUpdate) SetWaterCarbon(v float64) *UtilityBillUpdate {
	_u.mutation.ResetWaterCarbon()
	_u.mutation.SetWaterCarbon(v)
	return _u
}

// SetNillableWaterCarbon sets the "water_carbon" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableWaterCarbon(v *float64) *UtilityBillUpdate {
	if v != nil {
		_u.SetWaterCarbon(*v)
	}
	return _u
}

// AddWaterCarbon adds value to the "water_carbon" field.
func (_u *UtilityBillUpdate) AddWaterCarbon(v float64) *UtilityBillUpdate {
	_u.mutation.AddWaterCarbon(v)
	return _u
}

// SetGasCarbon sets the "gas_carbon" field.
func (_u *UtilityBillUpdate) SetGasCarbon(v float64) *UtilityBillUpdate {
	_u.mutation.ResetGasCarbon()
	_u.mutation.SetGasCarbon(v)
	return _u
}

// SetNillableGasCarbon sets the "gas_carbon" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableGasCarbon(v *float64) *UtilityBillUpdate {
	if v != nil {
		_u.SetGasCarbon(*v)
	}
	return _u
}

// AddGasCarbon adds value to the "gas_carbon" field.
func (_u *UtilityBillUpdate) AddGasCarbon(v float64) *UtilityBillUpdate {
	_u.mutation.AddGasCarbon(v)
	return _u
}

// SetTotalCarbon sets the "total_carbon" field.
func (_u *UtilityBillUpdate) SetTotalCarbon(v float64) *UtilityBillUpdate {
	_u.mutation.ResetTotalCarbon()
	_u.mutation.SetTotalCarbon(v)
	return _u
}

// SetNillableTotalCarbon sets the "total_carbon" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableTotalCarbon(v *float64) *UtilityBillUpdate {
	if v != nil {
		_u.SetTotalCarbon(*v)
	}
	return _u
}

// AddTotalCarbon adds value to the "total_carbon" field.
func (_u *UtilityBillUpdate) AddTotalCarbon(v float64) *UtilityBillUpdate {
	_u.mutation.AddTotalCarbon(v)
	return _u
}

// SetInputMethod sets the "input_method" field.
func (_u *UtilityBillUpdate) SetInputMethod(v string) *UtilityBillUpdate {
	_u.mutation.SetInputMethod(v)
	return _u
}

// SetNillableInputMethod sets the "input_method" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableInputMethod(v *string) *UtilityBillUpdate {
	if v != nil {
		_u.SetInputMethod(*v)
	}
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *UtilityBillUpdate) SetOcrConfidence(v float32) *UtilityBillUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableOcrConfidence(v *float32) *UtilityBillUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *UtilityBillUpdate) AddOcrConfidence(v float32) *UtilityBillUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *UtilityBillUpdate) ClearOcrConfidence() *UtilityBillUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetOcrRawText sets the "ocr_raw_text" field.
func (_u *UtilityBillUpdate) SetOcrRawText(v string) *UtilityBillUpdate {
	_u.mutation.SetOcrRawText(v)
	return _u
}

// SetNillableOcrRawText sets the "ocr_raw_text" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableOcrRawText(v *string) *UtilityBillUpdate {
	if v != nil {
		_u.SetOcrRawText(*v)
	}
	return _u
}

// ClearOcrRawText clears the value of the "ocr_raw_text" field.
func (_u *UtilityBillUpdate) ClearOcrRawText() *UtilityBillUpdate {
	_u.mutation.ClearOcrRawText()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *UtilityBillUpdate) SetNotes(v string) *UtilityBillUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableNotes(v *string) *UtilityBillUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *UtilityBillUpdate) ClearNotes() *UtilityBillUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UtilityBillUpdate) SetCreatedAt(v time.Time) *UtilityBillUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UtilityBillUpdate) SetNillableCreatedAt(v *time.Time) *UtilityBillUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UtilityBillUpdate) SetUpdatedAt(v time.Time) *UtilityBillUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *UtilityBillUpdate) SetProfile(v *Profile) *UtilityBillUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the UtilityBillMutation object of the builder.
func (_u *UtilityBillUpdate) Mutation() *UtilityBillMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *UtilityBillUpdate) ClearProfile() *UtilityBillUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UtilityBillUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtilityBillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UtilityBillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtilityBillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UtilityBillUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := utilitybill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtilityBillUpdate) check() error {
	if v, ok := _u.mutation.InputMethod(); ok {
		if err := utilitybill.InputMethodValidator(v); err != nil {
			return &ValidationError{Name: "input_method", err: fmt.Errorf(`ent: validator failed for field "UtilityBill.input_method": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UtilityBill.profile"`)
	}
	return nil
}

func (_u *UtilityBillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utilitybill.Table, utilitybill.Columns, sqlgraph.NewFieldSpec(utilitybill.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(utilitybill.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(utilitybill.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(utilitybill.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(utilitybill.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.ElectricityUsage(); ok {
		_spec.SetField(utilitybill.FieldElectricityUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElectricityUsage(); ok {
		_spec.AddField(utilitybill.FieldElectricityUsage, field.TypeFloat64, value)
	}
	if _u.mutation.ElectricityUsageCleared() {
		_spec.ClearField(utilitybill.FieldElectricityUsage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WaterUsage(); ok {
		_spec.SetField(utilitybill.FieldWaterUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWaterUsage(); ok {
		_spec.AddField(utilitybill.FieldWaterUsage, field.TypeFloat64, value)
	}
	if _u.mutation.WaterUsageCleared() {
		_spec.ClearField(utilitybill.FieldWaterUsage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GasUsage(); ok {
		_spec.SetField(utilitybill.FieldGasUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGasUsage(); ok {
		_spec.AddField(utilitybill.FieldGasUsage, field.TypeFloat64, value)
	}
	if _u.mutation.GasUsageCleared() {
		_spec.ClearField(utilitybill.FieldGasUsage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ElectricityCarbon(); ok {
		_spec.SetField(utilitybill.FieldElectricityCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElectricityCarbon(); ok {
		_spec.AddField(utilitybill.FieldElectricityCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WaterCarbon(); ok {
		_spec.SetField(utilitybill.FieldWaterCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWaterCarbon(); ok {
		_spec.AddField(utilitybill.FieldWaterCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GasCarbon(); ok {
		_spec.SetField(utilitybill.FieldGasCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGasCarbon(); ok {
		_spec.AddField(utilitybill.FieldGasCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCarbon(); ok {
		_spec.SetField(utilitybill.FieldTotalCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCarbon(); ok {
		_spec.AddField(utilitybill.FieldTotalCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputMethod(); ok {
		_spec.SetField(utilitybill.FieldInputMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(utilitybill.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(utilitybill.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(utilitybill.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.OcrRawText(); ok {
		_spec.SetField(utilitybill.FieldOcrRawText, field.TypeString, value)
	}
	if _u.mutation.OcrRawTextCleared() {
		_spec.ClearField(utilitybill.FieldOcrRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(utilitybill.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(utilitybill.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(utilitybill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(utilitybill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   utilitybill.ProfileTable,
			Columns: []string{utilitybill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   utilitybill.ProfileTable,
			Columns: []string{utilitybill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utilitybill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UtilityBillUpdateOne is the builder for updating a single UtilityBill entity.
type UtilityBillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UtilityBillMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *UtilityBillUpdateOne) SetProfileID(v uuid.UUID) *UtilityBillUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableProfileID(v *uuid.UUID) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *UtilityBillUpdateOne) SetPeriodStart(v time.Time) *UtilityBillUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillablePeriodStart(v *time.Time) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *UtilityBillUpdateOne) ClearPeriodStart() *UtilityBillUpdateOne {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *UtilityBillUpdateOne) SetPeriodEnd(v time.Time) *UtilityBillUpdateOne {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillablePeriodEnd(v *time.Time) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *UtilityBillUpdateOne) ClearPeriodEnd() *UtilityBillUpdateOne {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetElectricityUsage sets the "electricity_usage" field.
func (_u *UtilityBillUpdateOne) SetElectricityUsage(v float64) *UtilityBillUpdateOne {
	_u.mutation.ResetElectricityUsage()
	_u.mutation.SetElectricityUsage(v)
	return _u
}

// SetNillableElectricityUsage sets the "electricity_usage" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableElectricityUsage(v *float64) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetElectricityUsage(*v)
	}
	return _u
}

// AddElectricityUsage adds value to the "electricity_usage" field.
func (_u *UtilityBillUpdateOne) AddElectricityUsage(v float64) *UtilityBillUpdateOne {
	_u.mutation.AddElectricityUsage(v)
	return _u
}

// ClearElectricityUsage clears the value of the "electricity_usage" field.
func (_u *UtilityBillUpdateOne) ClearElectricityUsage() *UtilityBillUpdateOne {
	_u.mutation.ClearElectricityUsage()
	return _u
}

// SetWaterUsage sets the "water_usage" field.
func (_u *UtilityBillUpdateOne) SetWaterUsage(v float64) *UtilityBillUpdateOne {
	_u.mutation.ResetWaterUsage()
	_u.mutation.SetWaterUsage(v)
	return _u
}

// SetNillableWaterUsage sets the "water_usage" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableWaterUsage(v *float64) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetWaterUsage(*v)
	}
	return _u
}

// AddWaterUsage adds value to the "water_usage" field.
func (_u *UtilityBillUpdateOne) AddWaterUsage(v float64) *UtilityBillUpdateOne {
	_u.mutation.AddWaterUsage(v)
	return _u
}

// ClearWaterUsage clears the value of the "water_usage" field.
func (_u *UtilityBillUpdateOne) ClearWaterUsage() *UtilityBillUpdateOne {
	_u.mutation.ClearWaterUsage()
	return _u
}

// SetGasUsage sets the "gas_usage" field.
func (_u *UtilityBillUpdateOne) SetGasUsage(v float64) *UtilityBillUpdateOne {
	_u.mutation.ResetGasUsage()
	_u.mutation.SetGasUsage(v)
	return _u
}

// SetNillableGasUsage sets the "gas_usage" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableGasUsage(v *float64) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetGasUsage(*v)
	}
	return _u
}

// AddGasUsage adds value to the "gas_usage" field.
func (_u *UtilityBillUpdateOne) AddGasUsage(v float64) *UtilityBillUpdateOne {
	_u.mutation.AddGasUsage(v)
	return _u
}

// ClearGasUsage clears the value of the "gas_usage" field.
func (_u *UtilityBillUpdateOne) ClearGasUsage() *UtilityBillUpdateOne {
	_u.mutation.ClearGasUsage()
	return _u
}

// SetElectricityCarbon sets the "electricity_carbon" field.
func (_u *UtilityBillUpdateOne) SetElectricityCarbon(v float64) *UtilityBillUpdateOne {
	_u.mutation.ResetElectricityCarbon()
	_u.mutation.SetElectricityCarbon(v)
	return _u
}

// SetNillableElectricityCarbon sets the "electricity_carbon" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableElectricityCarbon(v *float64) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetElectricityCarbon(*v)
	}
	return _u
}

// AddElectricityCarbon adds value to the "electricity_carbon" field.
func (_u *UtilityBillUpdateOne) AddElectricityCarbon(v float64) *UtilityBillUpdateOne {
	_u.mutation.AddElectricityCarbon(v)
	return _u
}

// SetWaterCarbon sets the "water_carbon" field.
func (_u *UtilityBillUpdateOne) SetWaterCarbon(v float64) *UtilityBillUpdateOne {
	_u.mutation.ResetWaterCarbon()
	_u.mutation.SetWaterCarbon(v)
	return _u
}

// SetNillableWaterCarbon sets the "water_carbon" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableWaterCarbon(v *float64) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetWaterCarbon(*v)
	}
	return _u
}

// AddWaterCarbon adds value to the "water_carbon" field.
func (_u *UtilityBillUpdateOne) AddWaterCarbon(v float64) *UtilityBillUpdateOne {
	_u.mutation.AddWaterCarbon(v)
	return _u
}

// SetGasCarbon sets the "gas_carbon" field.
func (_u *UtilityBillUpdateOne) SetGasCarbon(v float64) *UtilityBillUpdateOne {
	_u.mutation.ResetGasCarbon()
	_u.mutation.SetGasCarbon(v)
	return _u
}

// SetNillableGasCarbon sets the "gas_carbon" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableGasCarbon(v *float64) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetGasCarbon(*v)
	}
	return _u
}

// AddGasCarbon adds value to the "gas_carbon" field.
func (_u *UtilityBillUpdateOne) AddGasCarbon(v float64) *UtilityBillUpdateOne {
	_u.mutation.AddGasCarbon(v)
	return _u
}

// SetTotalCarbon sets the "total_carbon" field.
func (_u *UtilityBillUpdateOne) SetTotalCarbon(v float64) *UtilityBillUpdateOne {
	_u.mutation.ResetTotalCarbon()
	_u.mutation.SetTotalCarbon(v)
	return _u
}

// SetNillableTotalCarbon sets the "total_carbon" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableTotalCarbon(v *float64) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetTotalCarbon(*v)
	}
	return _u
}

// AddTotalCarbon adds value to the "total_carbon" field.
func (_u *UtilityBillUpdateOne) AddTotalCarbon(v float64) *UtilityBillUpdateOne {
	_u.mutation.AddTotalCarbon(v)
	return _u
}

// SetInputMethod sets the "input_method" field.
func (_u *UtilityBillUpdateOne) SetInputMethod(v string) *UtilityBillUpdateOne {
	_u.mutation.SetInputMethod(v)
	return _u
}

// SetNillableInputMethod sets the "input_method" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableInputMethod(v *string) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetInputMethod(*v)
	}
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *UtilityBillUpdateOne) SetOcrConfidence(v float32) *UtilityBillUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableOcrConfidence(v *float32) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *UtilityBillUpdateOne) AddOcrConfidence(v float32) *UtilityBillUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *UtilityBillUpdateOne) ClearOcrConfidence() *UtilityBillUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetOcrRawText sets the "ocr_raw_text" field.
func (_u *UtilityBillUpdateOne) SetOcrRawText(v string) *UtilityBillUpdateOne {
	_u.mutation.SetOcrRawText(v)
	return _u
}

// SetNillableOcrRawText sets the "ocr_raw_text" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableOcrRawText(v *string) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetOcrRawText(*v)
	}
	return _u
}

// ClearOcrRawText clears the value of the "ocr_raw_text" field.
func (_u *UtilityBillUpdateOne) ClearOcrRawText() *UtilityBillUpdateOne {
	_u.mutation.ClearOcrRawText()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *UtilityBillUpdateOne) SetNotes(v string) *UtilityBillUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableNotes(v *string) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *UtilityBillUpdateOne) ClearNotes() *UtilityBillUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UtilityBillUpdateOne) SetCreatedAt(v time.Time) *UtilityBillUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UtilityBillUpdateOne) SetNillableCreatedAt(v *time.Time) *UtilityBillUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UtilityBillUpdateOne) SetUpdatedAt(v time.Time) *UtilityBillUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *UtilityBillUpdateOne) SetProfile(v *Profile) *UtilityBillUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the UtilityBillMutation object of the builder.
func (_u *UtilityBillUpdateOne) Mutation() *UtilityBillMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *UtilityBillUpdateOne) ClearProfile() *UtilityBillUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the UtilityBillUpdate builder.
func (_u *UtilityBillUpdateOne) Where(ps ...predicate.UtilityBill) *UtilityBillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UtilityBillUpdateOne) Select(field string, fields ...string) *UtilityBillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UtilityBill entity.
func (_u *UtilityBillUpdateOne) Save(ctx context.Context) (*UtilityBill, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtilityBillUpdateOne) SaveX(ctx context.Context) *UtilityBill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UtilityBillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtilityBillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UtilityBillUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := utilitybill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtilityBillUpdateOne) check() error {
	if v, ok := _u.mutation.InputMethod(); ok {
		if err := utilitybill.InputMethodValidator(v); err != nil {
			return &ValidationError{Name: "input_method", err: fmt.Errorf(`ent: validator failed for field "UtilityBill.input_method": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UtilityBill.profile"`)
	}
	return nil
}

func (_u *UtilityBillUpdateOne) sqlSave(ctx context.Context) (_node *UtilityBill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utilitybill.Table, utilitybill.Columns, sqlgraph.NewFieldSpec(utilitybill.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UtilityBill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, utilitybill.FieldID)
		for _, f := range fields {
			if !utilitybill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != utilitybill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(utilitybill.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(utilitybill.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(utilitybill.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(utilitybill.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.ElectricityUsage(); ok {
		_spec.SetField(utilitybill.FieldElectricityUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElectricityUsage(); ok {
		_spec.AddField(utilitybill.FieldElectricityUsage, field.TypeFloat64, value)
	}
	if _u.mutation.ElectricityUsageCleared() {
		_spec.ClearField(utilitybill.FieldElectricityUsage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WaterUsage(); ok {
		_spec.SetField(utilitybill.FieldWaterUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWaterUsage(); ok {
		_spec.AddField(utilitybill.FieldWaterUsage, field.TypeFloat64, value)
	}
	if _u.mutation.WaterUsageCleared() {
		_spec.ClearField(utilitybill.FieldWaterUsage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GasUsage(); ok {
		_spec.SetField(utilitybill.FieldGasUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGasUsage(); ok {
		_spec.AddField(utilitybill.FieldGasUsage, field.TypeFloat64, value)
	}
	if _u.mutation.GasUsageCleared() {
		_spec.ClearField(utilitybill.FieldGasUsage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ElectricityCarbon(); ok {
		_spec.SetField(utilitybill.FieldElectricityCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElectricityCarbon(); ok {
		_spec.AddField(utilitybill.FieldElectricityCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WaterCarbon(); ok {
		_spec.SetField(utilitybill.FieldWaterCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWaterCarbon(); ok {
		_spec.AddField(utilitybill.FieldWaterCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GasCarbon(); ok {
		_spec.SetField(utilitybill.FieldGasCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGasCarbon(); ok {
		_spec.AddField(utilitybill.FieldGasCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCarbon(); ok {
		_spec.SetField(utilitybill.FieldTotalCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCarbon(); ok {
		_spec.AddField(utilitybill.FieldTotalCarbon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputMethod(); ok {
		_spec.SetField(utilitybill.FieldInputMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(utilitybill.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(utilitybill.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(utilitybill.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.OcrRawText(); ok {
		_spec.SetField(utilitybill.FieldOcrRawText, field.TypeString, value)
	}
	if _u.mutation.OcrRawTextCleared() {
		_spec.ClearField(utilitybill.FieldOcrRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(utilitybill.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(utilitybill.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(utilitybill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(utilitybill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   utilitybill.ProfileTable,
			Columns: []string{utilitybill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   utilitybill.ProfileTable,
			Columns: []string{utilitybill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UtilityBill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utilitybill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
