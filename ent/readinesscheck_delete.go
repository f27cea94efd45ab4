// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edforge/readypath/ent/predicate"
	"github.com/edforge/readypath/ent/readinesscheck"
)

// ReadinessCheckDelete is the builder for deleting a ReadinessCheck entity.
type ReadinessCheckDelete struct {
	config
	hooks    []Hook
	mutation *ReadinessCheckMutation
}

// Where appends a list predicates to the ReadinessCheckDelete builder.
func (_d *ReadinessCheckDelete) Where(ps ...predicate.ReadinessCheck) *ReadinessCheckDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReadinessCheckDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReadinessCheckDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReadinessCheckDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(readinesscheck.Table, sqlgraph.NewFieldSpec(readinesscheck.FieldID, field.TypeInt))
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

// ReadinessCheckDeleteOne is the builder for deleting a single ReadinessCheck entity.
type ReadinessCheckDeleteOne struct {
	_d *ReadinessCheckDelete
}

// Where appends a list predicates to the ReadinessCheckDelete builder.
func (_d *ReadinessCheckDeleteOne) Where(ps ...predicate.ReadinessCheck) *ReadinessCheckDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReadinessCheckDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{readinesscheck.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReadinessCheckDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
