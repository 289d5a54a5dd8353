// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/predicate"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/utilitybill"
)

// UtilityBillDelete is the builder for deleting a UtilityBill entity.
type UtilityBillDelete struct {
	config
	hooks    []Hook
	mutation *UtilityBillMutation
}

// Where appends a list predicates to the UtilityBillDelete builder.
func (_d *UtilityBillDelete) Where(ps ...predicate.UtilityBill) *UtilityBillDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UtilityBillDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UtilityBillDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UtilityBillDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(utilitybill.Table, sqlgraph.NewFieldSpec(utilitybill.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UtilityBillDeleteOne is the builder for deleting a single UtilityBill entity.
type UtilityBillDeleteOne struct {
	_d *UtilityBillDelete
}

// Where appends a list predicates to the UtilityBillDelete builder.
func (_d *UtilityBillDeleteOne) Where(ps ...predicate.UtilityBill) *UtilityBillDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UtilityBillDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{utilitybill.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UtilityBillDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
