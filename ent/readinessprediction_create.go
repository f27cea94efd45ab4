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
	"github.com/edforge/readypath/ent/readinessprediction"
)

// ReadinessPredictionCreate is the builder for creating a ReadinessPrediction entity.
type ReadinessPredictionCreate struct {
	config
	mutation *ReadinessPredictionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *ReadinessPredictionCreate) SetLearnerID(v string) *ReadinessPredictionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *ReadinessPredictionCreate) SetAssessmentID(v string) *ReadinessPredictionCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetPredictedScore sets the "predicted_score" field.
func (_c *ReadinessPredictionCreate) SetPredictedScore(v float64) *ReadinessPredictionCreate {
	_c.mutation.SetPredictedScore(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ReadinessPredictionCreate) SetConfidence(v float64) *ReadinessPredictionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ReadinessPredictionCreate) SetLevel(v string) *ReadinessPredictionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetAvgMastery sets the "avg_mastery" field.
func (_c *ReadinessPredictionCreate) SetAvgMastery(v float64) *ReadinessPredictionCreate {
	_c.mutation.SetAvgMastery(v)
	return _c
}

// SetRecentSuccessRate sets the "recent_success_rate" field.
func (_c *ReadinessPredictionCreate) SetRecentSuccessRate(v float64) *ReadinessPredictionCreate {
	_c.mutation.SetRecentSuccessRate(v)
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *ReadinessPredictionCreate) SetPracticeCount(v int) *ReadinessPredictionCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetWeakObjectives sets the "weak_objectives" field.
func (_c *ReadinessPredictionCreate) SetWeakObjectives(v []string) *ReadinessPredictionCreate {
	_c.mutation.SetWeakObjectives(v)
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *ReadinessPredictionCreate) SetRecommendation(v string) *ReadinessPredictionCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetPrepMinutes sets the "prep_minutes" field.
func (_c *ReadinessPredictionCreate) SetPrepMinutes(v int) *ReadinessPredictionCreate {
	_c.mutation.SetPrepMinutes(v)
	return _c
}

// SetNillablePrepMinutes sets the "prep_minutes" field if the given value is not nil.
func (_c *ReadinessPredictionCreate) SetNillablePrepMinutes(v *int) *ReadinessPredictionCreate {
	if v != nil {
		_c.SetPrepMinutes(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *ReadinessPredictionCreate) SetGeneratedAt(v time.Time) *ReadinessPredictionCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *ReadinessPredictionCreate) SetNillableGeneratedAt(v *time.Time) *ReadinessPredictionCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// Mutation returns the ReadinessPredictionMutation object of the builder.
func (_c *ReadinessPredictionCreate) Mutation() *ReadinessPredictionMutation {
	return _c.mutation
}

// Save creates the ReadinessPrediction in the database.
func (_c *ReadinessPredictionCreate) Save(ctx context.Context) (*ReadinessPrediction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReadinessPredictionCreate) SaveX(ctx context.Context) *ReadinessPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadinessPredictionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadinessPredictionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReadinessPredictionCreate) defaults() {
	if _, ok := _c.mutation.PrepMinutes(); !ok {
		v := readinessprediction.DefaultPrepMinutes
		_c.mutation.SetPrepMinutes(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := readinessprediction.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReadinessPredictionCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReadinessPrediction.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := readinessprediction.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "ReadinessPrediction.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := readinessprediction.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PredictedScore(); !ok {
		return &ValidationError{Name: "predicted_score", err: errors.New(`ent: missing required field "ReadinessPrediction.predicted_score"`)}
	}
	if v, ok := _c.mutation.PredictedScore(); ok {
		if err := readinessprediction.PredictedScoreValidator(v); err != nil {
			return &ValidationError{Name: "predicted_score", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.predicted_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ReadinessPrediction.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := readinessprediction.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ReadinessPrediction.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := readinessprediction.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvgMastery(); !ok {
		return &ValidationError{Name: "avg_mastery", err: errors.New(`ent: missing required field "ReadinessPrediction.avg_mastery"`)}
	}
	if _, ok := _c.mutation.RecentSuccessRate(); !ok {
		return &ValidationError{Name: "recent_success_rate", err: errors.New(`ent: missing required field "ReadinessPrediction.recent_success_rate"`)}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "ReadinessPrediction.practice_count"`)}
	}
	if v, ok := _c.mutation.PracticeCount(); ok {
		if err := readinessprediction.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.practice_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recommendation(); !ok {
		return &ValidationError{Name: "recommendation", err: errors.New(`ent: missing required field "ReadinessPrediction.recommendation"`)}
	}
	if _, ok := _c.mutation.PrepMinutes(); !ok {
		return &ValidationError{Name: "prep_minutes", err: errors.New(`ent: missing required field "ReadinessPrediction.prep_minutes"`)}
	}
	if v, ok := _c.mutation.PrepMinutes(); ok {
		if err := readinessprediction.PrepMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_minutes", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.prep_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "ReadinessPrediction.generated_at"`)}
	}
	return nil
}

func (_c *ReadinessPredictionCreate) sqlSave(ctx context.Context) (*ReadinessPrediction, error) {
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

func (_c *ReadinessPredictionCreate) createSpec() (*ReadinessPrediction, *sqlgraph.CreateSpec) {
	var (
		_node = &ReadinessPrediction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(readinessprediction.Table, sqlgraph.NewFieldSpec(readinessprediction.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(readinessprediction.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(readinessprediction.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.PredictedScore(); ok {
		_spec.SetField(readinessprediction.FieldPredictedScore, field.TypeFloat64, value)
		_node.PredictedScore = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(readinessprediction.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(readinessprediction.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.AvgMastery(); ok {
		_spec.SetField(readinessprediction.FieldAvgMastery, field.TypeFloat64, value)
		_node.AvgMastery = value
	}
	if value, ok := _c.mutation.RecentSuccessRate(); ok {
		_spec.SetField(readinessprediction.FieldRecentSuccessRate, field.TypeFloat64, value)
		_node.RecentSuccessRate = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(readinessprediction.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.WeakObjectives(); ok {
		_spec.SetField(readinessprediction.FieldWeakObjectives, field.TypeJSON, value)
		_node.WeakObjectives = value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(readinessprediction.FieldRecommendation, field.TypeString, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.PrepMinutes(); ok {
		_spec.SetField(readinessprediction.FieldPrepMinutes, field.TypeInt, value)
		_node.PrepMinutes = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(readinessprediction.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReadinessPrediction.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReadinessPredictionUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReadinessPredictionCreate) OnConflict(opts ...sql.ConflictOption) *ReadinessPredictionUpsertOne {
	_c.conflict = opts
	return &ReadinessPredictionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReadinessPrediction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReadinessPredictionCreate) OnConflictColumns(columns ...string) *ReadinessPredictionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReadinessPredictionUpsertOne{
		create: _c,
	}
}

type (
	// ReadinessPredictionUpsertOne is the builder for "upsert"-ing
	//  one ReadinessPrediction node.
	ReadinessPredictionUpsertOne struct {
		create *ReadinessPredictionCreate
	}

	// ReadinessPredictionUpsert is the "OnConflict" setter.
	ReadinessPredictionUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *ReadinessPredictionUpsert) SetLearnerID(v string) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateLearnerID() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldLearnerID)
	return u
}

// SetAssessmentID sets the "assessment_id" field.
func (u *ReadinessPredictionUpsert) SetAssessmentID(v string) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldAssessmentID, v)
	return u
}

// UpdateAssessmentID sets the "assessment_id" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateAssessmentID() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldAssessmentID)
	return u
}

// SetPredictedScore sets the "predicted_score" field.
func (u *ReadinessPredictionUpsert) SetPredictedScore(v float64) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldPredictedScore, v)
	return u
}

// UpdatePredictedScore sets the "predicted_score" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdatePredictedScore() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldPredictedScore)
	return u
}

// AddPredictedScore adds v to the "predicted_score" field.
func (u *ReadinessPredictionUpsert) AddPredictedScore(v float64) *ReadinessPredictionUpsert {
	u.Add(readinessprediction.FieldPredictedScore, v)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ReadinessPredictionUpsert) SetConfidence(v float64) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateConfidence() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ReadinessPredictionUpsert) AddConfidence(v float64) *ReadinessPredictionUpsert {
	u.Add(readinessprediction.FieldConfidence, v)
	return u
}

// SetLevel sets the "level" field.
func (u *ReadinessPredictionUpsert) SetLevel(v string) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateLevel() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldLevel)
	return u
}

// SetAvgMastery sets the "avg_mastery" field.
func (u *ReadinessPredictionUpsert) SetAvgMastery(v float64) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldAvgMastery, v)
	return u
}

// UpdateAvgMastery sets the "avg_mastery" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateAvgMastery() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldAvgMastery)
	return u
}

// AddAvgMastery adds v to the "avg_mastery" field.
func (u *ReadinessPredictionUpsert) AddAvgMastery(v float64) *ReadinessPredictionUpsert {
	u.Add(readinessprediction.FieldAvgMastery, v)
	return u
}

// SetRecentSuccessRate sets the "recent_success_rate" field.
func (u *ReadinessPredictionUpsert) SetRecentSuccessRate(v float64) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldRecentSuccessRate, v)
	return u
}

// UpdateRecentSuccessRate sets the "recent_success_rate" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateRecentSuccessRate() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldRecentSuccessRate)
	return u
}

// AddRecentSuccessRate adds v to the "recent_success_rate" field.
func (u *ReadinessPredictionUpsert) AddRecentSuccessRate(v float64) *ReadinessPredictionUpsert {
	u.Add(readinessprediction.FieldRecentSuccessRate, v)
	return u
}

// SetPracticeCount sets the "practice_count" field.
func (u *ReadinessPredictionUpsert) SetPracticeCount(v int) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldPracticeCount, v)
	return u
}

// UpdatePracticeCount sets the "practice_count" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdatePracticeCount() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldPracticeCount)
	return u
}

// AddPracticeCount adds v to the "practice_count" field.
func (u *ReadinessPredictionUpsert) AddPracticeCount(v int) *ReadinessPredictionUpsert {
	u.Add(readinessprediction.FieldPracticeCount, v)
	return u
}

// SetWeakObjectives sets the "weak_objectives" field.
func (u *ReadinessPredictionUpsert) SetWeakObjectives(v []string) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldWeakObjectives, v)
	return u
}

// UpdateWeakObjectives sets the "weak_objectives" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateWeakObjectives() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldWeakObjectives)
	return u
}

// ClearWeakObjectives clears the value of the "weak_objectives" field.
func (u *ReadinessPredictionUpsert) ClearWeakObjectives() *ReadinessPredictionUpsert {
	u.SetNull(readinessprediction.FieldWeakObjectives)
	return u
}

// SetRecommendation sets the "recommendation" field.
func (u *ReadinessPredictionUpsert) SetRecommendation(v string) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldRecommendation, v)
	return u
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateRecommendation() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldRecommendation)
	return u
}

// SetPrepMinutes sets the "prep_minutes" field.
func (u *ReadinessPredictionUpsert) SetPrepMinutes(v int) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldPrepMinutes, v)
	return u
}

// UpdatePrepMinutes sets the "prep_minutes" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdatePrepMinutes() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldPrepMinutes)
	return u
}

// AddPrepMinutes adds v to the "prep_minutes" field.
func (u *ReadinessPredictionUpsert) AddPrepMinutes(v int) *ReadinessPredictionUpsert {
	u.Add(readinessprediction.FieldPrepMinutes, v)
	return u
}

// SetGeneratedAt sets the "generated_at" field.
func (u *ReadinessPredictionUpsert) SetGeneratedAt(v time.Time) *ReadinessPredictionUpsert {
	u.Set(readinessprediction.FieldGeneratedAt, v)
	return u
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *ReadinessPredictionUpsert) UpdateGeneratedAt() *ReadinessPredictionUpsert {
	u.SetExcluded(readinessprediction.FieldGeneratedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReadinessPrediction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReadinessPredictionUpsertOne) UpdateNewValues() *ReadinessPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReadinessPrediction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReadinessPredictionUpsertOne) Ignore() *ReadinessPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReadinessPredictionUpsertOne) DoNothing() *ReadinessPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReadinessPredictionCreate.OnConflict
// documentation for more info.
func (u *ReadinessPredictionUpsertOne) Update(set func(*ReadinessPredictionUpsert)) *ReadinessPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReadinessPredictionUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *ReadinessPredictionUpsertOne) SetLearnerID(v string) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateLearnerID() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateLearnerID()
	})
}

// SetAssessmentID sets the "assessment_id" field.
func (u *ReadinessPredictionUpsertOne) SetAssessmentID(v string) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetAssessmentID(v)
	})
}

// UpdateAssessmentID sets the "assessment_id" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateAssessmentID() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateAssessmentID()
	})
}

// SetPredictedScore sets the "predicted_score" field.
func (u *ReadinessPredictionUpsertOne) SetPredictedScore(v float64) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetPredictedScore(v)
	})
}

// AddPredictedScore adds v to the "predicted_score" field.
func (u *ReadinessPredictionUpsertOne) AddPredictedScore(v float64) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddPredictedScore(v)
	})
}

// UpdatePredictedScore sets the "predicted_score" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdatePredictedScore() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdatePredictedScore()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ReadinessPredictionUpsertOne) SetConfidence(v float64) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ReadinessPredictionUpsertOne) AddConfidence(v float64) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateConfidence() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateConfidence()
	})
}

// SetLevel sets the "level" field.
func (u *ReadinessPredictionUpsertOne) SetLevel(v string) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateLevel() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateLevel()
	})
}

// SetAvgMastery sets the "avg_mastery" field.
func (u *ReadinessPredictionUpsertOne) SetAvgMastery(v float64) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetAvgMastery(v)
	})
}

// AddAvgMastery adds v to the "avg_mastery" field.
func (u *ReadinessPredictionUpsertOne) AddAvgMastery(v float64) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddAvgMastery(v)
	})
}

// UpdateAvgMastery sets the "avg_mastery" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateAvgMastery() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateAvgMastery()
	})
}

// SetRecentSuccessRate sets the "recent_success_rate" field.
func (u *ReadinessPredictionUpsertOne) SetRecentSuccessRate(v float64) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetRecentSuccessRate(v)
	})
}

// AddRecentSuccessRate adds v to the "recent_success_rate" field.
func (u *ReadinessPredictionUpsertOne) AddRecentSuccessRate(v float64) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddRecentSuccessRate(v)
	})
}

// UpdateRecentSuccessRate sets the "recent_success_rate" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateRecentSuccessRate() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateRecentSuccessRate()
	})
}

// SetPracticeCount sets the "practice_count" field.
func (u *ReadinessPredictionUpsertOne) SetPracticeCount(v int) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetPracticeCount(v)
	})
}

// AddPracticeCount adds v to the "practice_count" field.
func (u *ReadinessPredictionUpsertOne) AddPracticeCount(v int) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddPracticeCount(v)
	})
}

// UpdatePracticeCount sets the "practice_count" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdatePracticeCount() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdatePracticeCount()
	})
}

// SetWeakObjectives sets the "weak_objectives" field.
func (u *ReadinessPredictionUpsertOne) SetWeakObjectives(v []string) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetWeakObjectives(v)
	})
}

// UpdateWeakObjectives sets the "weak_objectives" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateWeakObjectives() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateWeakObjectives()
	})
}

// ClearWeakObjectives clears the value of the "weak_objectives" field.
func (u *ReadinessPredictionUpsertOne) ClearWeakObjectives() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.ClearWeakObjectives()
	})
}

// SetRecommendation sets the "recommendation" field.
func (u *ReadinessPredictionUpsertOne) SetRecommendation(v string) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetRecommendation(v)
	})
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateRecommendation() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateRecommendation()
	})
}

// SetPrepMinutes sets the "prep_minutes" field.
func (u *ReadinessPredictionUpsertOne) SetPrepMinutes(v int) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetPrepMinutes(v)
	})
}

// AddPrepMinutes adds v to the "prep_minutes" field.
func (u *ReadinessPredictionUpsertOne) AddPrepMinutes(v int) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddPrepMinutes(v)
	})
}

// UpdatePrepMinutes sets the "prep_minutes" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdatePrepMinutes() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdatePrepMinutes()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *ReadinessPredictionUpsertOne) SetGeneratedAt(v time.Time) *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertOne) UpdateGeneratedAt() *ReadinessPredictionUpsertOne {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateGeneratedAt()
	})
}

// Exec executes the query.
func (u *ReadinessPredictionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReadinessPredictionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReadinessPredictionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReadinessPredictionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReadinessPredictionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReadinessPredictionCreateBulk is the builder for creating many ReadinessPrediction entities in bulk.
type ReadinessPredictionCreateBulk struct {
	config
	err      error
	builders []*ReadinessPredictionCreate
	conflict []sql.ConflictOption
}

// Save creates the ReadinessPrediction entities in the database.
func (_c *ReadinessPredictionCreateBulk) Save(ctx context.Context) ([]*ReadinessPrediction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReadinessPrediction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReadinessPredictionMutation)
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
func (_c *ReadinessPredictionCreateBulk) SaveX(ctx context.Context) []*ReadinessPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadinessPredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadinessPredictionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReadinessPrediction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReadinessPredictionUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReadinessPredictionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReadinessPredictionUpsertBulk {
	_c.conflict = opts
	return &ReadinessPredictionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReadinessPrediction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReadinessPredictionCreateBulk) OnConflictColumns(columns ...string) *ReadinessPredictionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReadinessPredictionUpsertBulk{
		create: _c,
	}
}

// ReadinessPredictionUpsertBulk is the builder for "upsert"-ing
// a bulk of ReadinessPrediction nodes.
type ReadinessPredictionUpsertBulk struct {
	create *ReadinessPredictionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReadinessPrediction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReadinessPredictionUpsertBulk) UpdateNewValues() *ReadinessPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReadinessPrediction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReadinessPredictionUpsertBulk) Ignore() *ReadinessPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReadinessPredictionUpsertBulk) DoNothing() *ReadinessPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReadinessPredictionCreateBulk.OnConflict
// documentation for more info.
func (u *ReadinessPredictionUpsertBulk) Update(set func(*ReadinessPredictionUpsert)) *ReadinessPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReadinessPredictionUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *ReadinessPredictionUpsertBulk) SetLearnerID(v string) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateLearnerID() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateLearnerID()
	})
}

// SetAssessmentID sets the "assessment_id" field.
func (u *ReadinessPredictionUpsertBulk) SetAssessmentID(v string) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetAssessmentID(v)
	})
}

// UpdateAssessmentID sets the "assessment_id" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateAssessmentID() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateAssessmentID()
	})
}

// SetPredictedScore sets the "predicted_score" field.
func (u *ReadinessPredictionUpsertBulk) SetPredictedScore(v float64) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetPredictedScore(v)
	})
}

// AddPredictedScore adds v to the "predicted_score" field.
func (u *ReadinessPredictionUpsertBulk) AddPredictedScore(v float64) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddPredictedScore(v)
	})
}

// UpdatePredictedScore sets the "predicted_score" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdatePredictedScore() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdatePredictedScore()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ReadinessPredictionUpsertBulk) SetConfidence(v float64) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ReadinessPredictionUpsertBulk) AddConfidence(v float64) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateConfidence() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateConfidence()
	})
}

// SetLevel sets the "level" field.
func (u *ReadinessPredictionUpsertBulk) SetLevel(v string) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateLevel() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateLevel()
	})
}

// SetAvgMastery sets the "avg_mastery" field.
func (u *ReadinessPredictionUpsertBulk) SetAvgMastery(v float64) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetAvgMastery(v)
	})
}

// AddAvgMastery adds v to the "avg_mastery" field.
func (u *ReadinessPredictionUpsertBulk) AddAvgMastery(v float64) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddAvgMastery(v)
	})
}

// UpdateAvgMastery sets the "avg_mastery" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateAvgMastery() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateAvgMastery()
	})
}

// SetRecentSuccessRate sets the "recent_success_rate" field.
func (u *ReadinessPredictionUpsertBulk) SetRecentSuccessRate(v float64) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetRecentSuccessRate(v)
	})
}

// AddRecentSuccessRate adds v to the "recent_success_rate" field.
func (u *ReadinessPredictionUpsertBulk) AddRecentSuccessRate(v float64) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddRecentSuccessRate(v)
	})
}

// UpdateRecentSuccessRate sets the "recent_success_rate" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateRecentSuccessRate() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateRecentSuccessRate()
	})
}

// SetPracticeCount sets the "practice_count" field.
func (u *ReadinessPredictionUpsertBulk) SetPracticeCount(v int) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetPracticeCount(v)
	})
}

// AddPracticeCount adds v to the "practice_count" field.
func (u *ReadinessPredictionUpsertBulk) AddPracticeCount(v int) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddPracticeCount(v)
	})
}

// UpdatePracticeCount sets the "practice_count" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdatePracticeCount() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdatePracticeCount()
	})
}

// SetWeakObjectives sets the "weak_objectives" field.
func (u *ReadinessPredictionUpsertBulk) SetWeakObjectives(v []string) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetWeakObjectives(v)
	})
}

// UpdateWeakObjectives sets the "weak_objectives" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateWeakObjectives() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateWeakObjectives()
	})
}

// ClearWeakObjectives clears the value of the "weak_objectives" field.
func (u *ReadinessPredictionUpsertBulk) ClearWeakObjectives() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.ClearWeakObjectives()
	})
}

// SetRecommendation sets the "recommendation" field.
func (u *ReadinessPredictionUpsertBulk) SetRecommendation(v string) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetRecommendation(v)
	})
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateRecommendation() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateRecommendation()
	})
}

// SetPrepMinutes sets the "prep_minutes" field.
func (u *ReadinessPredictionUpsertBulk) SetPrepMinutes(v int) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetPrepMinutes(v)
	})
}

// AddPrepMinutes adds v to the "prep_minutes" field.
func (u *ReadinessPredictionUpsertBulk) AddPrepMinutes(v int) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.AddPrepMinutes(v)
	})
}

// UpdatePrepMinutes sets the "prep_minutes" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdatePrepMinutes() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdatePrepMinutes()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *ReadinessPredictionUpsertBulk) SetGeneratedAt(v time.Time) *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *ReadinessPredictionUpsertBulk) UpdateGeneratedAt() *ReadinessPredictionUpsertBulk {
	return u.Update(func(s *ReadinessPredictionUpsert) {
		s.UpdateGeneratedAt()
	})
}

// Exec executes the query.
func (u *ReadinessPredictionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReadinessPredictionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReadinessPredictionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReadinessPredictionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
