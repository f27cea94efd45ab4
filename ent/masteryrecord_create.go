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
	"github.com/edforge/readypath/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *MasteryRecordCreate) SetLearnerID(v string) *MasteryRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetObjectiveID sets the "objective_id" field.
func (_c *MasteryRecordCreate) SetObjectiveID(v string) *MasteryRecordCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetCellCode sets the "cell_code" field.
func (_c *MasteryRecordCreate) SetCellCode(v string) *MasteryRecordCreate {
	_c.mutation.SetCellCode(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MasteryRecordCreate) SetScore(v float64) *MasteryRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetStreak sets the "streak" field.
func (_c *MasteryRecordCreate) SetStreak(v int) *MasteryRecordCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableStreak(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryRecordCreate) SetUpdatedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableUpdatedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.Streak(); !ok {
		v := masteryrecord.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := masteryrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MasteryRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "MasteryRecord.objective_id"`)}
	}
	if v, ok := _c.mutation.ObjectiveID(); ok {
		if err := masteryrecord.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.objective_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CellCode(); !ok {
		return &ValidationError{Name: "cell_code", err: errors.New(`ent: missing required field "MasteryRecord.cell_code"`)}
	}
	if v, ok := _c.mutation.CellCode(); ok {
		if err := masteryrecord.CellCodeValidator(v); err != nil {
			return &ValidationError{Name: "cell_code", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.cell_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MasteryRecord.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := masteryrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "MasteryRecord.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := masteryrecord.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MasteryRecord.updated_at"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(masteryrecord.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.CellCode(); ok {
		_spec.SetField(masteryrecord.FieldCellCode, field.TypeString, value)
		_node.CellCode = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(masteryrecord.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryRecordCreate) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertOne {
	_c.conflict = opts
	return &MasteryRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryRecordCreate) OnConflictColumns(columns ...string) *MasteryRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertOne{
		create: _c,
	}
}

type (
	// MasteryRecordUpsertOne is the builder for "upsert"-ing
	//  one MasteryRecord node.
	MasteryRecordUpsertOne struct {
		create *MasteryRecordCreate
	}

	// MasteryRecordUpsert is the "OnConflict" setter.
	MasteryRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetCellCode sets the "cell_code" field.
func (u *MasteryRecordUpsert) SetCellCode(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldCellCode, v)
	return u
}

// UpdateCellCode sets the "cell_code" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateCellCode() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldCellCode)
	return u
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsert) SetScore(v float64) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateScore() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsert) AddScore(v float64) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldScore, v)
	return u
}

// SetStreak sets the "streak" field.
func (u *MasteryRecordUpsert) SetStreak(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldStreak, v)
	return u
}

// UpdateStreak sets the "streak" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateStreak() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldStreak)
	return u
}

// AddStreak adds v to the "streak" field.
func (u *MasteryRecordUpsert) AddStreak(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldStreak, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryRecordUpsert) SetUpdatedAt(v time.Time) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateUpdatedAt() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertOne) UpdateNewValues() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.LearnerID(); exists {
			s.SetIgnore(masteryrecord.FieldLearnerID)
		}
		if _, exists := u.create.mutation.ObjectiveID(); exists {
			s.SetIgnore(masteryrecord.FieldObjectiveID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MasteryRecordUpsertOne) Ignore() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertOne) DoNothing() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreate.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertOne) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetCellCode sets the "cell_code" field.
func (u *MasteryRecordUpsertOne) SetCellCode(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetCellCode(v)
	})
}

// UpdateCellCode sets the "cell_code" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateCellCode() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateCellCode()
	})
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsertOne) SetScore(v float64) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsertOne) AddScore(v float64) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateScore() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateScore()
	})
}

// SetStreak sets the "streak" field.
func (u *MasteryRecordUpsertOne) SetStreak(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetStreak(v)
	})
}

// AddStreak adds v to the "streak" field.
func (u *MasteryRecordUpsertOne) AddStreak(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddStreak(v)
	})
}

// UpdateStreak sets the "streak" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateStreak() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateStreak()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryRecordUpsertOne) SetUpdatedAt(v time.Time) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateUpdatedAt() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MasteryRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertBulk {
	_c.conflict = opts
	return &MasteryRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryRecordCreateBulk) OnConflictColumns(columns ...string) *MasteryRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertBulk{
		create: _c,
	}
}

// MasteryRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of MasteryRecord nodes.
type MasteryRecordUpsertBulk struct {
	create *MasteryRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) UpdateNewValues() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.LearnerID(); exists {
				s.SetIgnore(masteryrecord.FieldLearnerID)
			}
			if _, exists := b.mutation.ObjectiveID(); exists {
				s.SetIgnore(masteryrecord.FieldObjectiveID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) Ignore() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertBulk) DoNothing() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreateBulk.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertBulk) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetCellCode sets the "cell_code" field.
func (u *MasteryRecordUpsertBulk) SetCellCode(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetCellCode(v)
	})
}

// UpdateCellCode sets the "cell_code" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateCellCode() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateCellCode()
	})
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsertBulk) SetScore(v float64) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsertBulk) AddScore(v float64) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateScore() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateScore()
	})
}

// SetStreak sets the "streak" field.
func (u *MasteryRecordUpsertBulk) SetStreak(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetStreak(v)
	})
}

// AddStreak adds v to the "streak" field.
func (u *MasteryRecordUpsertBulk) AddStreak(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddStreak(v)
	})
}

// UpdateStreak sets the "streak" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateStreak() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateStreak()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryRecordUpsertBulk) SetUpdatedAt(v time.Time) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateUpdatedAt() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MasteryRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
