// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edforge/readypath/ent/assessment"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentCreate) SetAssessmentID(v string) *AssessmentCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AssessmentCreate) SetTitle(v string) *AssessmentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTargetObjectiveID sets the "target_objective_id" field.
func (_c *AssessmentCreate) SetTargetObjectiveID(v string) *AssessmentCreate {
	_c.mutation.SetTargetObjectiveID(v)
	return _c
}

// SetTargetCells sets the "target_cells" field.
func (_c *AssessmentCreate) SetTargetCells(v []string) *AssessmentCreate {
	_c.mutation.SetTargetCells(v)
	return _c
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "Assessment.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Assessment.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := assessment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assessment.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetObjectiveID(); !ok {
		return &ValidationError{Name: "target_objective_id", err: errors.New(`ent: missing required field "Assessment.target_objective_id"`)}
	}
	if v, ok := _c.mutation.TargetObjectiveID(); ok {
		if err := assessment.TargetObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "target_objective_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.target_objective_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetCells(); !ok {
		return &ValidationError{Name: "target_cells", err: errors.New(`ent: missing required field "Assessment.target_cells"`)}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TargetObjectiveID(); ok {
		_spec.SetField(assessment.FieldTargetObjectiveID, field.TypeString, value)
		_node.TargetObjectiveID = value
	}
	if value, ok := _c.mutation.TargetCells(); ok {
		_spec.SetField(assessment.FieldTargetCells, field.TypeJSON, value)
		_node.TargetCells = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Assessment.Create().
//		SetAssessmentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssessmentUpsert) {
//			SetAssessmentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssessmentCreate) OnConflict(opts ...sql.ConflictOption) *AssessmentUpsertOne {
	_c.conflict = opts
	return &AssessmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Assessment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssessmentCreate) OnConflictColumns(columns ...string) *AssessmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssessmentUpsertOne{
		create: _c,
	}
}

type (
	// AssessmentUpsertOne is the builder for "upsert"-ing
	//  one Assessment node.
	AssessmentUpsertOne struct {
		create *AssessmentCreate
	}

	// AssessmentUpsert is the "OnConflict" setter.
	AssessmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *AssessmentUpsert) SetTitle(v string) *AssessmentUpsert {
	u.Set(assessment.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AssessmentUpsert) UpdateTitle() *AssessmentUpsert {
	u.SetExcluded(assessment.FieldTitle)
	return u
}

// SetTargetObjectiveID sets the "target_objective_id" field.
func (u *AssessmentUpsert) SetTargetObjectiveID(v string) *AssessmentUpsert {
	u.Set(assessment.FieldTargetObjectiveID, v)
	return u
}

// UpdateTargetObjectiveID sets the "target_objective_id" field to the value that was provided on create.
func (u *AssessmentUpsert) UpdateTargetObjectiveID() *AssessmentUpsert {
	u.SetExcluded(assessment.FieldTargetObjectiveID)
	return u
}

// SetTargetCells sets the "target_cells" field.
func (u *AssessmentUpsert) SetTargetCells(v []string) *AssessmentUpsert {
	u.Set(assessment.FieldTargetCells, v)
	return u
}

// UpdateTargetCells sets the "target_cells" field to the value that was provided on create.
func (u *AssessmentUpsert) UpdateTargetCells() *AssessmentUpsert {
	u.SetExcluded(assessment.FieldTargetCells)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Assessment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AssessmentUpsertOne) UpdateNewValues() *AssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.AssessmentID(); exists {
			s.SetIgnore(assessment.FieldAssessmentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Assessment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AssessmentUpsertOne) Ignore() *AssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssessmentUpsertOne) DoNothing() *AssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssessmentCreate.OnConflict
// documentation for more info.
func (u *AssessmentUpsertOne) Update(set func(*AssessmentUpsert)) *AssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssessmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *AssessmentUpsertOne) SetTitle(v string) *AssessmentUpsertOne {
	return u.Update(func(s *AssessmentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AssessmentUpsertOne) UpdateTitle() *AssessmentUpsertOne {
	return u.Update(func(s *AssessmentUpsert) {
		s.UpdateTitle()
	})
}

// SetTargetObjectiveID sets the "target_objective_id" field.
func (u *AssessmentUpsertOne) SetTargetObjectiveID(v string) *AssessmentUpsertOne {
	return u.Update(func(s *AssessmentUpsert) {
		s.SetTargetObjectiveID(v)
	})
}

// UpdateTargetObjectiveID sets the "target_objective_id" field to the value that was provided on create.
func (u *AssessmentUpsertOne) UpdateTargetObjectiveID() *AssessmentUpsertOne {
	return u.Update(func(s *AssessmentUpsert) {
		s.UpdateTargetObjectiveID()
	})
}

// SetTargetCells sets the "target_cells" field.
func (u *AssessmentUpsertOne) SetTargetCells(v []string) *AssessmentUpsertOne {
	return u.Update(func(s *AssessmentUpsert) {
		s.SetTargetCells(v)
	})
}

// UpdateTargetCells sets the "target_cells" field to the value that was provided on create.
func (u *AssessmentUpsertOne) UpdateTargetCells() *AssessmentUpsertOne {
	return u.Update(func(s *AssessmentUpsert) {
		s.UpdateTargetCells()
	})
}

// Exec executes the query.
func (u *AssessmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssessmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssessmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AssessmentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AssessmentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Assessment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssessmentUpsert) {
//			SetAssessmentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssessmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AssessmentUpsertBulk {
	_c.conflict = opts
	return &AssessmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Assessment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssessmentCreateBulk) OnConflictColumns(columns ...string) *AssessmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssessmentUpsertBulk{
		create: _c,
	}
}

// AssessmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Assessment nodes.
type AssessmentUpsertBulk struct {
	create *AssessmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Assessment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AssessmentUpsertBulk) UpdateNewValues() *AssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.AssessmentID(); exists {
				s.SetIgnore(assessment.FieldAssessmentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Assessment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AssessmentUpsertBulk) Ignore() *AssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssessmentUpsertBulk) DoNothing() *AssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssessmentCreateBulk.OnConflict
// documentation for more info.
func (u *AssessmentUpsertBulk) Update(set func(*AssessmentUpsert)) *AssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssessmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *AssessmentUpsertBulk) SetTitle(v string) *AssessmentUpsertBulk {
	return u.Update(func(s *AssessmentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AssessmentUpsertBulk) UpdateTitle() *AssessmentUpsertBulk {
	return u.Update(func(s *AssessmentUpsert) {
		s.UpdateTitle()
	})
}

// SetTargetObjectiveID sets the "target_objective_id" field.
func (u *AssessmentUpsertBulk) SetTargetObjectiveID(v string) *AssessmentUpsertBulk {
	return u.Update(func(s *AssessmentUpsert) {
		s.SetTargetObjectiveID(v)
	})
}

// UpdateTargetObjectiveID sets the "target_objective_id" field to the value that was provided on create.
func (u *AssessmentUpsertBulk) UpdateTargetObjectiveID() *AssessmentUpsertBulk {
	return u.Update(func(s *AssessmentUpsert) {
		s.UpdateTargetObjectiveID()
	})
}

// SetTargetCells sets the "target_cells" field.
func (u *AssessmentUpsertBulk) SetTargetCells(v []string) *AssessmentUpsertBulk {
	return u.Update(func(s *AssessmentUpsert) {
		s.SetTargetCells(v)
	})
}

// UpdateTargetCells sets the "target_cells" field to the value that was provided on create.
func (u *AssessmentUpsertBulk) UpdateTargetCells() *AssessmentUpsertBulk {
	return u.Update(func(s *AssessmentUpsert) {
		s.UpdateTargetCells()
	})
}

// Exec executes the query.
func (u *AssessmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AssessmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssessmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssessmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
