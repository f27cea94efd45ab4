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
	"github.com/edforge/readypath/ent/readinesscheck"
	"github.com/edforge/readypath/ent/schema"
)

// ReadinessCheckCreate is the builder for creating a ReadinessCheck entity.
type ReadinessCheckCreate struct {
	config
	mutation *ReadinessCheckMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCheckID sets the "check_id" field.
func (_c *ReadinessCheckCreate) SetCheckID(v string) *ReadinessCheckCreate {
	_c.mutation.SetCheckID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ReadinessCheckCreate) SetLearnerID(v string) *ReadinessCheckCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *ReadinessCheckCreate) SetAssessmentID(v string) *ReadinessCheckCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *ReadinessCheckCreate) SetQuestions(v []schema.QuestionData) *ReadinessCheckCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ReadinessCheckCreate) SetDifficulty(v int) *ReadinessCheckCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_c *ReadinessCheckCreate) SetTimeLimitSecs(v int) *ReadinessCheckCreate {
	_c.mutation.SetTimeLimitSecs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReadinessCheckCreate) SetCreatedAt(v time.Time) *ReadinessCheckCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReadinessCheckCreate) SetNillableCreatedAt(v *time.Time) *ReadinessCheckCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ReadinessCheckCreate) SetExpiresAt(v time.Time) *ReadinessCheckCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// Mutation returns the ReadinessCheckMutation object of the builder.
func (_c *ReadinessCheckCreate) Mutation() *ReadinessCheckMutation {
	return _c.mutation
}

// Save creates the ReadinessCheck in the database.
func (_c *ReadinessCheckCreate) Save(ctx context.Context) (*ReadinessCheck, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReadinessCheckCreate) SaveX(ctx context.Context) *ReadinessCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadinessCheckCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadinessCheckCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReadinessCheckCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := readinesscheck.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReadinessCheckCreate) check() error {
	if _, ok := _c.mutation.CheckID(); !ok {
		return &ValidationError{Name: "check_id", err: errors.New(`ent: missing required field "ReadinessCheck.check_id"`)}
	}
	if v, ok := _c.mutation.CheckID(); ok {
		if err := readinesscheck.CheckIDValidator(v); err != nil {
			return &ValidationError{Name: "check_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.check_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReadinessCheck.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := readinesscheck.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "ReadinessCheck.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := readinesscheck.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "ReadinessCheck.questions"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ReadinessCheck.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := readinesscheck.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeLimitSecs(); !ok {
		return &ValidationError{Name: "time_limit_secs", err: errors.New(`ent: missing required field "ReadinessCheck.time_limit_secs"`)}
	}
	if v, ok := _c.mutation.TimeLimitSecs(); ok {
		if err := readinesscheck.TimeLimitSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_secs", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.time_limit_secs": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReadinessCheck.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ReadinessCheck.expires_at"`)}
	}
	return nil
}

func (_c *ReadinessCheckCreate) sqlSave(ctx context.Context) (*ReadinessCheck, error) {
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

func (_c *ReadinessCheckCreate) createSpec() (*ReadinessCheck, *sqlgraph.CreateSpec) {
	var (
		_node = &ReadinessCheck{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(readinesscheck.Table, sqlgraph.NewFieldSpec(readinesscheck.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CheckID(); ok {
		_spec.SetField(readinesscheck.FieldCheckID, field.TypeString, value)
		_node.CheckID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(readinesscheck.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(readinesscheck.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(readinesscheck.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(readinesscheck.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.TimeLimitSecs(); ok {
		_spec.SetField(readinesscheck.FieldTimeLimitSecs, field.TypeInt, value)
		_node.TimeLimitSecs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(readinesscheck.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(readinesscheck.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReadinessCheck.Create().
//		SetCheckID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReadinessCheckUpsert) {
//			SetCheckID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReadinessCheckCreate) OnConflict(opts ...sql.ConflictOption) *ReadinessCheckUpsertOne {
	_c.conflict = opts
	return &ReadinessCheckUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReadinessCheck.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReadinessCheckCreate) OnConflictColumns(columns ...string) *ReadinessCheckUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReadinessCheckUpsertOne{
		create: _c,
	}
}

type (
	// ReadinessCheckUpsertOne is the builder for "upsert"-ing
	//  one ReadinessCheck node.
	ReadinessCheckUpsertOne struct {
		create *ReadinessCheckCreate
	}

	// ReadinessCheckUpsert is the "OnConflict" setter.
	ReadinessCheckUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *ReadinessCheckUpsert) SetLearnerID(v string) *ReadinessCheckUpsert {
	u.Set(readinesscheck.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReadinessCheckUpsert) UpdateLearnerID() *ReadinessCheckUpsert {
	u.SetExcluded(readinesscheck.FieldLearnerID)
	return u
}

// SetAssessmentID sets the "assessment_id" field.
func (u *ReadinessCheckUpsert) SetAssessmentID(v string) *ReadinessCheckUpsert {
	u.Set(readinesscheck.FieldAssessmentID, v)
	return u
}

// UpdateAssessmentID sets the "assessment_id" field to the value that was provided on create.
func (u *ReadinessCheckUpsert) UpdateAssessmentID() *ReadinessCheckUpsert {
	u.SetExcluded(readinesscheck.FieldAssessmentID)
	return u
}

// SetQuestions sets the "questions" field.
func (u *ReadinessCheckUpsert) SetQuestions(v []schema.QuestionData) *ReadinessCheckUpsert {
	u.Set(readinesscheck.FieldQuestions, v)
	return u
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *ReadinessCheckUpsert) UpdateQuestions() *ReadinessCheckUpsert {
	u.SetExcluded(readinesscheck.FieldQuestions)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *ReadinessCheckUpsert) SetDifficulty(v int) *ReadinessCheckUpsert {
	u.Set(readinesscheck.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ReadinessCheckUpsert) UpdateDifficulty() *ReadinessCheckUpsert {
	u.SetExcluded(readinesscheck.FieldDifficulty)
	return u
}

// AddDifficulty adds v to the "difficulty" field.
func (u *ReadinessCheckUpsert) AddDifficulty(v int) *ReadinessCheckUpsert {
	u.Add(readinesscheck.FieldDifficulty, v)
	return u
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (u *ReadinessCheckUpsert) SetTimeLimitSecs(v int) *ReadinessCheckUpsert {
	u.Set(readinesscheck.FieldTimeLimitSecs, v)
	return u
}

// UpdateTimeLimitSecs sets the "time_limit_secs" field to the value that was provided on create.
func (u *ReadinessCheckUpsert) UpdateTimeLimitSecs() *ReadinessCheckUpsert {
	u.SetExcluded(readinesscheck.FieldTimeLimitSecs)
	return u
}

// AddTimeLimitSecs adds v to the "time_limit_secs" field.
func (u *ReadinessCheckUpsert) AddTimeLimitSecs(v int) *ReadinessCheckUpsert {
	u.Add(readinesscheck.FieldTimeLimitSecs, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ReadinessCheckUpsert) SetExpiresAt(v time.Time) *ReadinessCheckUpsert {
	u.Set(readinesscheck.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ReadinessCheckUpsert) UpdateExpiresAt() *ReadinessCheckUpsert {
	u.SetExcluded(readinesscheck.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReadinessCheck.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReadinessCheckUpsertOne) UpdateNewValues() *ReadinessCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CheckID(); exists {
			s.SetIgnore(readinesscheck.FieldCheckID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(readinesscheck.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReadinessCheck.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReadinessCheckUpsertOne) Ignore() *ReadinessCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReadinessCheckUpsertOne) DoNothing() *ReadinessCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReadinessCheckCreate.OnConflict
// documentation for more info.
func (u *ReadinessCheckUpsertOne) Update(set func(*ReadinessCheckUpsert)) *ReadinessCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReadinessCheckUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *ReadinessCheckUpsertOne) SetLearnerID(v string) *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReadinessCheckUpsertOne) UpdateLearnerID() *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateLearnerID()
	})
}

// SetAssessmentID sets the "assessment_id" field.
func (u *ReadinessCheckUpsertOne) SetAssessmentID(v string) *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetAssessmentID(v)
	})
}

// UpdateAssessmentID sets the "assessment_id" field to the value that was provided on create.
func (u *ReadinessCheckUpsertOne) UpdateAssessmentID() *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateAssessmentID()
	})
}

// SetQuestions sets the "questions" field.
func (u *ReadinessCheckUpsertOne) SetQuestions(v []schema.QuestionData) *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *ReadinessCheckUpsertOne) UpdateQuestions() *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateQuestions()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *ReadinessCheckUpsertOne) SetDifficulty(v int) *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetDifficulty(v)
	})
}

// AddDifficulty adds v to the "difficulty" field.
func (u *ReadinessCheckUpsertOne) AddDifficulty(v int) *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.AddDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ReadinessCheckUpsertOne) UpdateDifficulty() *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateDifficulty()
	})
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (u *ReadinessCheckUpsertOne) SetTimeLimitSecs(v int) *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetTimeLimitSecs(v)
	})
}

// AddTimeLimitSecs adds v to the "time_limit_secs" field.
func (u *ReadinessCheckUpsertOne) AddTimeLimitSecs(v int) *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.AddTimeLimitSecs(v)
	})
}

// UpdateTimeLimitSecs sets the "time_limit_secs" field to the value that was provided on create.
func (u *ReadinessCheckUpsertOne) UpdateTimeLimitSecs() *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateTimeLimitSecs()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ReadinessCheckUpsertOne) SetExpiresAt(v time.Time) *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ReadinessCheckUpsertOne) UpdateExpiresAt() *ReadinessCheckUpsertOne {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *ReadinessCheckUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReadinessCheckCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReadinessCheckUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReadinessCheckUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReadinessCheckUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReadinessCheckCreateBulk is the builder for creating many ReadinessCheck entities in bulk.
type ReadinessCheckCreateBulk struct {
	config
	err      error
	builders []*ReadinessCheckCreate
	conflict []sql.ConflictOption
}

// Save creates the ReadinessCheck entities in the database.
func (_c *ReadinessCheckCreateBulk) Save(ctx context.Context) ([]*ReadinessCheck, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReadinessCheck, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReadinessCheckMutation)
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
func (_c *ReadinessCheckCreateBulk) SaveX(ctx context.Context) []*ReadinessCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadinessCheckCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadinessCheckCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReadinessCheck.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReadinessCheckUpsert) {
//			SetCheckID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReadinessCheckCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReadinessCheckUpsertBulk {
	_c.conflict = opts
	return &ReadinessCheckUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReadinessCheck.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReadinessCheckCreateBulk) OnConflictColumns(columns ...string) *ReadinessCheckUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReadinessCheckUpsertBulk{
		create: _c,
	}
}

// ReadinessCheckUpsertBulk is the builder for "upsert"-ing
// a bulk of ReadinessCheck nodes.
type ReadinessCheckUpsertBulk struct {
	create *ReadinessCheckCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReadinessCheck.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReadinessCheckUpsertBulk) UpdateNewValues() *ReadinessCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CheckID(); exists {
				s.SetIgnore(readinesscheck.FieldCheckID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(readinesscheck.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReadinessCheck.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReadinessCheckUpsertBulk) Ignore() *ReadinessCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReadinessCheckUpsertBulk) DoNothing() *ReadinessCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReadinessCheckCreateBulk.OnConflict
// documentation for more info.
func (u *ReadinessCheckUpsertBulk) Update(set func(*ReadinessCheckUpsert)) *ReadinessCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReadinessCheckUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *ReadinessCheckUpsertBulk) SetLearnerID(v string) *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReadinessCheckUpsertBulk) UpdateLearnerID() *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateLearnerID()
	})
}

// SetAssessmentID sets the "assessment_id" field.
func (u *ReadinessCheckUpsertBulk) SetAssessmentID(v string) *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetAssessmentID(v)
	})
}

// UpdateAssessmentID sets the "assessment_id" field to the value that was provided on create.
func (u *ReadinessCheckUpsertBulk) UpdateAssessmentID() *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateAssessmentID()
	})
}

// SetQuestions sets the "questions" field.
func (u *ReadinessCheckUpsertBulk) SetQuestions(v []schema.QuestionData) *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *ReadinessCheckUpsertBulk) UpdateQuestions() *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateQuestions()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *ReadinessCheckUpsertBulk) SetDifficulty(v int) *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetDifficulty(v)
	})
}

// AddDifficulty adds v to the "difficulty" field.
func (u *ReadinessCheckUpsertBulk) AddDifficulty(v int) *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.AddDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ReadinessCheckUpsertBulk) UpdateDifficulty() *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateDifficulty()
	})
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (u *ReadinessCheckUpsertBulk) SetTimeLimitSecs(v int) *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetTimeLimitSecs(v)
	})
}

// AddTimeLimitSecs adds v to the "time_limit_secs" field.
func (u *ReadinessCheckUpsertBulk) AddTimeLimitSecs(v int) *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.AddTimeLimitSecs(v)
	})
}

// UpdateTimeLimitSecs sets the "time_limit_secs" field to the value that was provided on create.
func (u *ReadinessCheckUpsertBulk) UpdateTimeLimitSecs() *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateTimeLimitSecs()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ReadinessCheckUpsertBulk) SetExpiresAt(v time.Time) *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ReadinessCheckUpsertBulk) UpdateExpiresAt() *ReadinessCheckUpsertBulk {
	return u.Update(func(s *ReadinessCheckUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *ReadinessCheckUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReadinessCheckCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReadinessCheckCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReadinessCheckUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
