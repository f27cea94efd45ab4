// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/edforge/readypath/ent/predicate"
	"github.com/edforge/readypath/ent/readinesscheck"
	"github.com/edforge/readypath/ent/schema"
)

// ReadinessCheckUpdate is the builder for updating ReadinessCheck entities.
type ReadinessCheckUpdate struct {
	config
	hooks    []Hook
	mutation *ReadinessCheckMutation
}

// Where appends a list predicates to the ReadinessCheckUpdate builder.
func (_u *ReadinessCheckUpdate) Where(ps ...predicate.ReadinessCheck) *ReadinessCheckUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReadinessCheckUpdate) SetLearnerID(v string) *ReadinessCheckUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReadinessCheckUpdate) SetNillableLearnerID(v *string) *ReadinessCheckUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ReadinessCheckUpdate) SetAssessmentID(v string) *ReadinessCheckUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ReadinessCheckUpdate) SetNillableAssessmentID(v *string) *ReadinessCheckUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ReadinessCheckUpdate) SetQuestions(v []schema.QuestionData) *ReadinessCheckUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ReadinessCheckUpdate) AppendQuestions(v []schema.QuestionData) *ReadinessCheckUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReadinessCheckUpdate) SetDifficulty(v int) *ReadinessCheckUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReadinessCheckUpdate) SetNillableDifficulty(v *int) *ReadinessCheckUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReadinessCheckUpdate) AddDifficulty(v int) *ReadinessCheckUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_u *ReadinessCheckUpdate) SetTimeLimitSecs(v int) *ReadinessCheckUpdate {
	_u.mutation.ResetTimeLimitSecs()
	_u.mutation.SetTimeLimitSecs(v)
	return _u
}

// SetNillableTimeLimitSecs sets the "time_limit_secs" field if the given value is not nil.
func (_u *ReadinessCheckUpdate) SetNillableTimeLimitSecs(v *int) *ReadinessCheckUpdate {
	if v != nil {
		_u.SetTimeLimitSecs(*v)
	}
	return _u
}

// AddTimeLimitSecs adds value to the "time_limit_secs" field.
func (_u *ReadinessCheckUpdate) AddTimeLimitSecs(v int) *ReadinessCheckUpdate {
	_u.mutation.AddTimeLimitSecs(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReadinessCheckUpdate) SetExpiresAt(v time.Time) *ReadinessCheckUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReadinessCheckUpdate) SetNillableExpiresAt(v *time.Time) *ReadinessCheckUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ReadinessCheckMutation object of the builder.
func (_u *ReadinessCheckUpdate) Mutation() *ReadinessCheckMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReadinessCheckUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadinessCheckUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReadinessCheckUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadinessCheckUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadinessCheckUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := readinesscheck.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := readinesscheck.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := readinesscheck.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimitSecs(); ok {
		if err := readinesscheck.TimeLimitSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_secs", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.time_limit_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadinessCheckUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readinesscheck.Table, readinesscheck.Columns, sqlgraph.NewFieldSpec(readinesscheck.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(readinesscheck.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(readinesscheck.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(readinesscheck.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, readinesscheck.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(readinesscheck.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(readinesscheck.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeLimitSecs(); ok {
		_spec.SetField(readinesscheck.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitSecs(); ok {
		_spec.AddField(readinesscheck.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(readinesscheck.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readinesscheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReadinessCheckUpdateOne is the builder for updating a single ReadinessCheck entity.
type ReadinessCheckUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReadinessCheckMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReadinessCheckUpdateOne) SetLearnerID(v string) *ReadinessCheckUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReadinessCheckUpdateOne) SetNillableLearnerID(v *string) *ReadinessCheckUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ReadinessCheckUpdateOne) SetAssessmentID(v string) *ReadinessCheckUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ReadinessCheckUpdateOne) SetNillableAssessmentID(v *string) *ReadinessCheckUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ReadinessCheckUpdateOne) SetQuestions(v []schema.QuestionData) *ReadinessCheckUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ReadinessCheckUpdateOne) AppendQuestions(v []schema.QuestionData) *ReadinessCheckUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReadinessCheckUpdateOne) SetDifficulty(v int) *ReadinessCheckUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReadinessCheckUpdateOne) SetNillableDifficulty(v *int) *ReadinessCheckUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReadinessCheckUpdateOne) AddDifficulty(v int) *ReadinessCheckUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_u *ReadinessCheckUpdateOne) SetTimeLimitSecs(v int) *ReadinessCheckUpdateOne {
	_u.mutation.ResetTimeLimitSecs()
	_u.mutation.SetTimeLimitSecs(v)
	return _u
}

// SetNillableTimeLimitSecs sets the "time_limit_secs" field if the given value is not nil.
func (_u *ReadinessCheckUpdateOne) SetNillableTimeLimitSecs(v *int) *ReadinessCheckUpdateOne {
	if v != nil {
		_u.SetTimeLimitSecs(*v)
	}
	return _u
}

// AddTimeLimitSecs adds value to the "time_limit_secs" field.
func (_u *ReadinessCheckUpdateOne) AddTimeLimitSecs(v int) *ReadinessCheckUpdateOne {
	_u.mutation.AddTimeLimitSecs(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReadinessCheckUpdateOne) SetExpiresAt(v time.Time) *ReadinessCheckUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReadinessCheckUpdateOne) SetNillableExpiresAt(v *time.Time) *ReadinessCheckUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ReadinessCheckMutation object of the builder.
func (_u *ReadinessCheckUpdateOne) Mutation() *ReadinessCheckMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReadinessCheckUpdate builder.
func (_u *ReadinessCheckUpdateOne) Where(ps ...predicate.ReadinessCheck) *ReadinessCheckUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReadinessCheckUpdateOne) Select(field string, fields ...string) *ReadinessCheckUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReadinessCheck entity.
func (_u *ReadinessCheckUpdateOne) Save(ctx context.Context) (*ReadinessCheck, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadinessCheckUpdateOne) SaveX(ctx context.Context) *ReadinessCheck {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReadinessCheckUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadinessCheckUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadinessCheckUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := readinesscheck.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := readinesscheck.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := readinesscheck.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimitSecs(); ok {
		if err := readinesscheck.TimeLimitSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_secs", err: fmt.Errorf(`ent: validator failed for field "ReadinessCheck.time_limit_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadinessCheckUpdateOne) sqlSave(ctx context.Context) (_node *ReadinessCheck, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readinesscheck.Table, readinesscheck.Columns, sqlgraph.NewFieldSpec(readinesscheck.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReadinessCheck.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, readinesscheck.FieldID)
		for _, f := range fields {
			if !readinesscheck.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != readinesscheck.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(readinesscheck.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(readinesscheck.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(readinesscheck.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, readinesscheck.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(readinesscheck.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(readinesscheck.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeLimitSecs(); ok {
		_spec.SetField(readinesscheck.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitSecs(); ok {
		_spec.AddField(readinesscheck.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(readinesscheck.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &ReadinessCheck{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readinesscheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
