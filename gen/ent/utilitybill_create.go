// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/profile"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/utilitybill"
	"github.com/google/uuid"
)

// UtilityBillCreate is the builder for creating a UtilityBill entity.
type UtilityBillCreate struct {
	config
	mutation *UtilityBillMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *UtilityBillCreate) SetProfileID(v uuid.UUID) *UtilityBillCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *UtilityBillCreate) SetPeriodStart(v time.Time) *UtilityBillCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillablePeriodStart(v *time.Time) *UtilityBillCreate {
	if v != nil {
		_c.SetPeriodStart(*v)
	}
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *UtilityBillCreate) SetPeriodEnd(v time.Time) *UtilityBillCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillablePeriodEnd(v *time.Time) *UtilityBillCreate {
	if v != nil {
		_c.SetPeriodEnd(*v)
	}
	return _c
}

// SetElectricityUsage sets the "electricity_usage" field.
func (_c *UtilityBillCreate) SetElectricityUsage(v float64) *UtilityBillCreate {
	_c.mutation.SetElectricityUsage(v)
	return _c
}

// SetNillableElectricityUsage sets the "electricity_usage" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableElectricityUsage(v *float64) *UtilityBillCreate {
	if v != nil {
		_c.SetElectricityUsage(*v)
	}
	return _c
}

// SetWaterUsage sets the "water_usage" field.
func (_c *UtilityBillCreate) SetWaterUsage(v float64) *UtilityBillCreate {
	_c.mutation.SetWaterUsage(v)
	return _c
}

// SetNillableWaterUsage sets the "water_usage" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableWaterUsage(v *float64) *UtilityBillCreate {
	if v != nil {
		_c.SetWaterUsage(*v)
	}
	return _c
}

// SetGasUsage sets the "gas_usage" field.
func (_c *UtilityBillCreate) SetGasUsage(v float64) *UtilityBillCreate {
	_c.mutation.SetGasUsage(v)
	return _c
}

// SetNillableGasUsage sets the "gas_usage" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableGasUsage(v *float64) *UtilityBillCreate {
	if v != nil {
		_c.SetGasUsage(*v)
	}
	return _c
}

// SetElectricityCarbon sets the "electricity_carbon" field.
func (_c *UtilityBillCreate) SetElectricityCarbon(v float64) *UtilityBillCreate {
	_c.mutation.SetElectricityCarbon(v)
	return _c
}

// SetNillableElectricityCarbon sets the "electricity_carbon" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableElectricityCarbon(v *float64) *UtilityBillCreate {
	if v != nil {
		_c.SetElectricityCarbon(*v)
	}
	return _c
}

// SetWaterCarbon sets the "water_carbon" field.
func (_c *UtilityBillCreate) SetWaterCarbon(v float64) *UtilityBillCreate {
	_c.mutation.SetWaterCarbon(v)
	return _c
}

// SetNillableWaterCarbon sets the "water_carbon" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableWaterCarbon(v *float64) *UtilityBillCreate {
	if v != nil {
		_c.SetWaterCarbon(*v)
	}
	return _c
}

// SetGasCarbon sets the "gas_carbon" field.
func (_c *UtilityBillCreate) SetGasCarbon(v float64) *UtilityBillCreate {
	_c.mutation.SetGasCarbon(v)
	return _c
}

// SetNillableGasCarbon sets the "gas_carbon" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableGasCarbon(v *float64) *UtilityBillCreate {
	if v != nil {
		_c.SetGasCarbon(*v)
	}
	return _c
}

// SetTotalCarbon sets the "total_carbon" field.
func (_c *UtilityBillCreate) SetTotalCarbon(v float64) *UtilityBillCreate {
	_c.mutation.SetTotalCarbon(v)
	return _c
}

// SetNillableTotalCarbon sets the "total_carbon" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableTotalCarbon(v *float64) *UtilityBillCreate {
	if v != nil {
		_c.SetTotalCarbon(*v)
	}
	return _c
}

// SetInputMethod sets the "input_method" field.
func (_c *UtilityBillCreate) SetInputMethod(v string) *UtilityBillCreate {
	_c.mutation.SetInputMethod(v)
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *UtilityBillCreate) SetOcrConfidence(v float32) *UtilityBillCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableOcrConfidence(v *float32) *UtilityBillCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetOcrRawText sets the "ocr_raw_text" field.
func (_c *UtilityBillCreate) SetOcrRawText(v string) *UtilityBillCreate {
	_c.mutation.SetOcrRawText(v)
	return _c
}

// SetNillableOcrRawText sets the "ocr_raw_text" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableOcrRawText(v *string) *UtilityBillCreate {
	if v != nil {
		_c.SetOcrRawText(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *UtilityBillCreate) SetNotes(v string) *UtilityBillCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableNotes(v *string) *UtilityBillCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UtilityBillCreate) SetCreatedAt(v time.Time) *UtilityBillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableCreatedAt(v *time.Time) *UtilityBillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UtilityBillCreate) SetUpdatedAt(v time.Time) *UtilityBillCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableUpdatedAt(v *time.Time) *UtilityBillCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UtilityBillCreate) SetID(v uuid.UUID) *UtilityBillCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UtilityBillCreate) SetNillableID(v *uuid.UUID) *UtilityBillCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *UtilityBillCreate) SetProfile(v *Profile) *UtilityBillCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the UtilityBillMutation object of the builder.
func (_c *UtilityBillCreate) Mutation() *UtilityBillMutation {
	return _c.mutation
}

// Save creates the UtilityBill in the database.
func (_c *UtilityBillCreate) Save(ctx context.Context) (*UtilityBill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UtilityBillCreate) SaveX(ctx context.Context) *UtilityBill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtilityBillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtilityBillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UtilityBillCreate) defaults() {
	if _, ok := _c.mutation.ElectricityCarbon(); !ok {
		v := utilitybill.DefaultElectricityCarbon
		_c.mutation.SetElectricityCarbon(v)
	}
	if _, ok := _c.mutation.WaterCarbon(); !ok {
		v := utilitybill.DefaultWaterCarbon
		_c.mutation.SetWaterCarbon(v)
	}
	if _, ok := _c.mutation.GasCarbon(); !ok {
		v := utilitybill.DefaultGasCarbon
		_c.mutation.SetGasCarbon(v)
	}
	if _, ok := _c.mutation.TotalCarbon(); !ok {
		v := utilitybill.DefaultTotalCarbon
		_c.mutation.SetTotalCarbon(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := utilitybill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := utilitybill.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := utilitybill.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UtilityBillCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "UtilityBill.profile_id"`)}
	}
	if _, ok := _c.mutation.ElectricityCarbon(); !ok {
		return &ValidationError{Name: "electricity_carbon", err: errors.New(`ent: missing required field "UtilityBill.electricity_carbon"`)}
	}
	if _, ok := _c.mutation.WaterCarbon(); !ok {
		return &ValidationError{Name: "water_carbon", err: errors.New(`ent: missing required field "UtilityBill.water_carbon"`)}
	}
	if _, ok := _c.mutation.GasCarbon(); !ok {
		return &ValidationError{Name: "gas_carbon", err: errors.New(`ent: missing required field "UtilityBill.gas_carbon"`)}
	}
	if _, ok := _c.mutation.TotalCarbon(); !ok {
		return &ValidationError{Name: "total_carbon", err: errors.New(`ent: missing required field "UtilityBill.total_carbon"`)}
	}
	if _, ok := _c.mutation.InputMethod(); !ok {
		return &ValidationError{Name: "input_method", err: errors.New(`ent: missing required field "UtilityBill.input_method"`)}
	}
	if v, ok := _c.mutation.InputMethod(); ok {
		if err := utilitybill.InputMethodValidator(v); err != nil {
			return &ValidationError{Name: "input_method", err: fmt.Errorf(`ent: validator failed for field "UtilityBill.input_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UtilityBill.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UtilityBill.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "UtilityBill.profile"`)}
	}
	return nil
}

func (_c *UtilityBillCreate) sqlSave(ctx context.Context) (*UtilityBill, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UtilityBillCreate) createSpec() (*UtilityBill, *sqlgraph.CreateSpec) {
	var (
		_node = &UtilityBill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(utilitybill.Table, sqlgraph.NewFieldSpec(utilitybill.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(utilitybill.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = &value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(utilitybill.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = &value
	}
	if value, ok := _c.mutation.ElectricityUsage(); ok {
		_spec.SetField(utilitybill.FieldElectricityUsage, field.TypeFloat64, value)
		_node.ElectricityUsage = &value
	}
	if value, ok := _c.mutation.WaterUsage(); ok {
		_spec.SetField(utilitybill.FieldWaterUsage, field.TypeFloat64, value)
		_node.WaterUsage = &value
	}
	if value, ok := _c.mutation.GasUsage(); ok {
		_spec.SetField(utilitybill.FieldGasUsage, field.TypeFloat64, value)
		_node.GasUsage = &value
	}
	if value, ok := _c.mutation.ElectricityCarbon(); ok {
		_spec.SetField(utilitybill.FieldElectricityCarbon, field.TypeFloat64, value)
		_node.ElectricityCarbon = value
	}
	if value, ok := _c.mutation.WaterCarbon(); ok {
		_spec.SetField(utilitybill.FieldWaterCarbon, field.TypeFloat64, value)
		_node.WaterCarbon = value
	}
	if value, ok := _c.mutation.GasCarbon(); ok {
		_spec.SetField(utilitybill.FieldGasCarbon, field.TypeFloat64, value)
		_node.GasCarbon = value
	}
	if value, ok := _c.mutation.TotalCarbon(); ok {
		_spec.SetField(utilitybill.FieldTotalCarbon, field.TypeFloat64, value)
		_node.TotalCarbon = value
	}
	if value, ok := _c.mutation.InputMethod(); ok {
		_spec.SetField(utilitybill.FieldInputMethod, field.TypeString, value)
		_node.InputMethod = value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(utilitybill.FieldOcrConfidence, field.TypeFloat32, value)
		_node.OcrConfidence = &value
	}
	if value, ok := _c.mutation.OcrRawText(); ok {
		_spec.SetField(utilitybill.FieldOcrRawText, field.TypeString, value)
		_node.OcrRawText = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(utilitybill.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(utilitybill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(utilitybill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UtilityBillCreateBulk is the builder for creating many UtilityBill entities in bulk.
type UtilityBillCreateBulk struct {
	config
	err      error
	builders []*UtilityBillCreate
}

// Save creates the UtilityBill entities in the database.
func (_c *UtilityBillCreateBulk) Save(ctx context.Context) ([]*UtilityBill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UtilityBill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UtilityBillMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UtilityBillCreateBulk) SaveX(ctx context.Context) []*UtilityBill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtilityBillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtilityBillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
