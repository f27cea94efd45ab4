// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/edforge/readypath/ent/assessment"
	"github.com/edforge/readypath/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssessmentUpdate) SetTitle(v string) *AssessmentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTitle(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTargetObjectiveID sets the "target_objective_id" field.
func (_u *AssessmentUpdate) SetTargetObjectiveID(v string) *AssessmentUpdate {
	_u.mutation.SetTargetObjectiveID(v)
	return _u
}

// SetNillableTargetObjectiveID sets the "target_objective_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTargetObjectiveID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetTargetObjectiveID(*v)
	}
	return _u
}

// SetTargetCells sets the "target_cells" field.
func (_u *AssessmentUpdate) SetTargetCells(v []string) *AssessmentUpdate {
	_u.mutation.SetTargetCells(v)
	return _u
}

// AppendTargetCells appends value to the "target_cells" field.
func (_u *AssessmentUpdate) AppendTargetCells(v []string) *AssessmentUpdate {
	_u.mutation.AppendTargetCells(v)
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := assessment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assessment.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetObjectiveID(); ok {
		if err := assessment.TargetObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "target_objective_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.target_objective_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetObjectiveID(); ok {
		_spec.SetField(assessment.FieldTargetObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetCells(); ok {
		_spec.SetField(assessment.FieldTargetCells, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetCells(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldTargetCells, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetTitle sets the "title" field.
func (_u *AssessmentUpdateOne) SetTitle(v string) *AssessmentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTitle(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTargetObjectiveID sets the "target_objective_id" field.
func (_u *AssessmentUpdateOne) SetTargetObjectiveID(v string) *AssessmentUpdateOne {
	_u.mutation.SetTargetObjectiveID(v)
	return _u
}

// SetNillableTargetObjectiveID sets the "target_objective_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTargetObjectiveID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTargetObjectiveID(*v)
	}
	return _u
}

// SetTargetCells sets the "target_cells" field.
func (_u *AssessmentUpdateOne) SetTargetCells(v []string) *AssessmentUpdateOne {
	_u.mutation.SetTargetCells(v)
	return _u
}

// AppendTargetCells appends value to the "target_cells" field.
func (_u *AssessmentUpdateOne) AppendTargetCells(v []string) *AssessmentUpdateOne {
	_u.mutation.AppendTargetCells(v)
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := assessment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assessment.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetObjectiveID(); ok {
		if err := assessment.TargetObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "target_objective_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.target_objective_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetObjectiveID(); ok {
		_spec.SetField(assessment.FieldTargetObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetCells(); ok {
		_spec.SetField(assessment.FieldTargetCells, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetCells(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldTargetCells, value)
		})
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
