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
	"github.com/edforge/readypath/ent/readinessprediction"
)

// ReadinessPredictionUpdate is the builder for updating ReadinessPrediction entities.
type ReadinessPredictionUpdate struct {
	config
	hooks    []Hook
	mutation *ReadinessPredictionMutation
}

// Where appends a list predicates to the ReadinessPredictionUpdate builder.
func (_u *ReadinessPredictionUpdate) Where(ps ...predicate.ReadinessPrediction) *ReadinessPredictionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReadinessPredictionUpdate) SetLearnerID(v string) *ReadinessPredictionUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillableLearnerID(v *string) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ReadinessPredictionUpdate) SetAssessmentID(v string) *ReadinessPredictionUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillableAssessmentID(v *string) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetPredictedScore sets the "predicted_score" field.
func (_u *ReadinessPredictionUpdate) SetPredictedScore(v float64) *ReadinessPredictionUpdate {
	_u.mutation.ResetPredictedScore()
	_u.mutation.SetPredictedScore(v)
	return _u
}

// SetNillablePredictedScore sets the "predicted_score" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillablePredictedScore(v *float64) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetPredictedScore(*v)
	}
	return _u
}

// AddPredictedScore adds value to the "predicted_score" field.
func (_u *ReadinessPredictionUpdate) AddPredictedScore(v float64) *ReadinessPredictionUpdate {
	_u.mutation.AddPredictedScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ReadinessPredictionUpdate) SetConfidence(v float64) *ReadinessPredictionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillableConfidence(v *float64) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ReadinessPredictionUpdate) AddConfidence(v float64) *ReadinessPredictionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ReadinessPredictionUpdate) SetLevel(v string) *ReadinessPredictionUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillableLevel(v *string) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAvgMastery sets the "avg_mastery" field.
func (_u *ReadinessPredictionUpdate) SetAvgMastery(v float64) *ReadinessPredictionUpdate {
	_u.mutation.ResetAvgMastery()
	_u.mutation.SetAvgMastery(v)
	return _u
}

// SetNillableAvgMastery sets the "avg_mastery" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillableAvgMastery(v *float64) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetAvgMastery(*v)
	}
	return _u
}

// AddAvgMastery adds value to the "avg_mastery" field.
func (_u *ReadinessPredictionUpdate) AddAvgMastery(v float64) *ReadinessPredictionUpdate {
	_u.mutation.AddAvgMastery(v)
	return _u
}

// SetRecentSuccessRate sets the "recent_success_rate" field.
func (_u *ReadinessPredictionUpdate) SetRecentSuccessRate(v float64) *ReadinessPredictionUpdate {
	_u.mutation.ResetRecentSuccessRate()
	_u.mutation.SetRecentSuccessRate(v)
	return _u
}

// SetNillableRecentSuccessRate sets the "recent_success_rate" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillableRecentSuccessRate(v *float64) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetRecentSuccessRate(*v)
	}
	return _u
}

// AddRecentSuccessRate adds value to the "recent_success_rate" field.
func (_u *ReadinessPredictionUpdate) AddRecentSuccessRate(v float64) *ReadinessPredictionUpdate {
	_u.mutation.AddRecentSuccessRate(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *ReadinessPredictionUpdate) SetPracticeCount(v int) *ReadinessPredictionUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillablePracticeCount(v *int) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *ReadinessPredictionUpdate) AddPracticeCount(v int) *ReadinessPredictionUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetWeakObjectives sets the "weak_objectives" field.
func (_u *ReadinessPredictionUpdate) SetWeakObjectives(v []string) *ReadinessPredictionUpdate {
	_u.mutation.SetWeakObjectives(v)
	return _u
}

// AppendWeakObjectives appends value to the "weak_objectives" field.
func (_u *ReadinessPredictionUpdate) AppendWeakObjectives(v []string) *ReadinessPredictionUpdate {
	_u.mutation.AppendWeakObjectives(v)
	return _u
}

// ClearWeakObjectives clears the value of the "weak_objectives" field.
func (_u *ReadinessPredictionUpdate) ClearWeakObjectives() *ReadinessPredictionUpdate {
	_u.mutation.ClearWeakObjectives()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *ReadinessPredictionUpdate) SetRecommendation(v string) *ReadinessPredictionUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillableRecommendation(v *string) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetPrepMinutes sets the "prep_minutes" field.
func (_u *ReadinessPredictionUpdate) SetPrepMinutes(v int) *ReadinessPredictionUpdate {
	_u.mutation.ResetPrepMinutes()
	_u.mutation.SetPrepMinutes(v)
	return _u
}

// SetNillablePrepMinutes sets the "prep_minutes" field if the given value is not nil.
func (_u *ReadinessPredictionUpdate) SetNillablePrepMinutes(v *int) *ReadinessPredictionUpdate {
	if v != nil {
		_u.SetPrepMinutes(*v)
	}
	return _u
}

// AddPrepMinutes adds value to the "prep_minutes" field.
func (_u *ReadinessPredictionUpdate) AddPrepMinutes(v int) *ReadinessPredictionUpdate {
	_u.mutation.AddPrepMinutes(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *ReadinessPredictionUpdate) SetGeneratedAt(v time.Time) *ReadinessPredictionUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// Mutation returns the ReadinessPredictionMutation object of the builder.
func (_u *ReadinessPredictionUpdate) Mutation() *ReadinessPredictionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReadinessPredictionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadinessPredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReadinessPredictionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadinessPredictionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReadinessPredictionUpdate) defaults() {
	if _, ok := _u.mutation.GeneratedAt(); !ok {
		v := readinessprediction.UpdateDefaultGeneratedAt()
		_u.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadinessPredictionUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := readinessprediction.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := readinessprediction.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PredictedScore(); ok {
		if err := readinessprediction.PredictedScoreValidator(v); err != nil {
			return &ValidationError{Name: "predicted_score", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.predicted_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := readinessprediction.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := readinessprediction.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := readinessprediction.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.practice_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrepMinutes(); ok {
		if err := readinessprediction.PrepMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_minutes", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.prep_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadinessPredictionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readinessprediction.Table, readinessprediction.Columns, sqlgraph.NewFieldSpec(readinessprediction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(readinessprediction.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(readinessprediction.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedScore(); ok {
		_spec.SetField(readinessprediction.FieldPredictedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPredictedScore(); ok {
		_spec.AddField(readinessprediction.FieldPredictedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(readinessprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(readinessprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(readinessprediction.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvgMastery(); ok {
		_spec.SetField(readinessprediction.FieldAvgMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgMastery(); ok {
		_spec.AddField(readinessprediction.FieldAvgMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentSuccessRate(); ok {
		_spec.SetField(readinessprediction.FieldRecentSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecentSuccessRate(); ok {
		_spec.AddField(readinessprediction.FieldRecentSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(readinessprediction.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(readinessprediction.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakObjectives(); ok {
		_spec.SetField(readinessprediction.FieldWeakObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, readinessprediction.FieldWeakObjectives, value)
		})
	}
	if _u.mutation.WeakObjectivesCleared() {
		_spec.ClearField(readinessprediction.FieldWeakObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(readinessprediction.FieldRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrepMinutes(); ok {
		_spec.SetField(readinessprediction.FieldPrepMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrepMinutes(); ok {
		_spec.AddField(readinessprediction.FieldPrepMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(readinessprediction.FieldGeneratedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readinessprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReadinessPredictionUpdateOne is the builder for updating a single ReadinessPrediction entity.
type ReadinessPredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReadinessPredictionMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReadinessPredictionUpdateOne) SetLearnerID(v string) *ReadinessPredictionUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillableLearnerID(v *string) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ReadinessPredictionUpdateOne) SetAssessmentID(v string) *ReadinessPredictionUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillableAssessmentID(v *string) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetPredictedScore sets the "predicted_score" field.
func (_u *ReadinessPredictionUpdateOne) SetPredictedScore(v float64) *ReadinessPredictionUpdateOne {
	_u.mutation.ResetPredictedScore()
	_u.mutation.SetPredictedScore(v)
	return _u
}

// SetNillablePredictedScore sets the "predicted_score" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillablePredictedScore(v *float64) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetPredictedScore(*v)
	}
	return _u
}

// AddPredictedScore adds value to the "predicted_score" field.
func (_u *ReadinessPredictionUpdateOne) AddPredictedScore(v float64) *ReadinessPredictionUpdateOne {
	_u.mutation.AddPredictedScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ReadinessPredictionUpdateOne) SetConfidence(v float64) *ReadinessPredictionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillableConfidence(v *float64) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ReadinessPredictionUpdateOne) AddConfidence(v float64) *ReadinessPredictionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ReadinessPredictionUpdateOne) SetLevel(v string) *ReadinessPredictionUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillableLevel(v *string) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAvgMastery sets the "avg_mastery" field.
func (_u *ReadinessPredictionUpdateOne) SetAvgMastery(v float64) *ReadinessPredictionUpdateOne {
	_u.mutation.ResetAvgMastery()
	_u.mutation.SetAvgMastery(v)
	return _u
}

// SetNillableAvgMastery sets the "avg_mastery" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillableAvgMastery(v *float64) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetAvgMastery(*v)
	}
	return _u
}

// AddAvgMastery adds value to the "avg_mastery" field.
func (_u *ReadinessPredictionUpdateOne) AddAvgMastery(v float64) *ReadinessPredictionUpdateOne {
	_u.mutation.AddAvgMastery(v)
	return _u
}

// SetRecentSuccessRate sets the "recent_success_rate" field.
func (_u *ReadinessPredictionUpdateOne) SetRecentSuccessRate(v float64) *ReadinessPredictionUpdateOne {
	_u.mutation.ResetRecentSuccessRate()
	_u.mutation.SetRecentSuccessRate(v)
	return _u
}

// SetNillableRecentSuccessRate sets the "recent_success_rate" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillableRecentSuccessRate(v *float64) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetRecentSuccessRate(*v)
	}
	return _u
}

// AddRecentSuccessRate adds value to the "recent_success_rate" field.
func (_u *ReadinessPredictionUpdateOne) AddRecentSuccessRate(v float64) *ReadinessPredictionUpdateOne {
	_u.mutation.AddRecentSuccessRate(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *ReadinessPredictionUpdateOne) SetPracticeCount(v int) *ReadinessPredictionUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillablePracticeCount(v *int) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *ReadinessPredictionUpdateOne) AddPracticeCount(v int) *ReadinessPredictionUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetWeakObjectives sets the "weak_objectives" field.
func (_u *ReadinessPredictionUpdateOne) SetWeakObjectives(v []string) *ReadinessPredictionUpdateOne {
	_u.mutation.SetWeakObjectives(v)
	return _u
}

// AppendWeakObjectives appends value to the "weak_objectives" field.
func (_u *ReadinessPredictionUpdateOne) AppendWeakObjectives(v []string) *ReadinessPredictionUpdateOne {
	_u.mutation.AppendWeakObjectives(v)
	return _u
}

// ClearWeakObjectives clears the value of the "weak_objectives" field.
func (_u *ReadinessPredictionUpdateOne) ClearWeakObjectives() *ReadinessPredictionUpdateOne {
	_u.mutation.ClearWeakObjectives()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *ReadinessPredictionUpdateOne) SetRecommendation(v string) *ReadinessPredictionUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillableRecommendation(v *string) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetPrepMinutes sets the "prep_minutes" field.
func (_u *ReadinessPredictionUpdateOne) SetPrepMinutes(v int) *ReadinessPredictionUpdateOne {
	_u.mutation.ResetPrepMinutes()
	_u.mutation.SetPrepMinutes(v)
	return _u
}

// SetNillablePrepMinutes sets the "prep_minutes" field if the given value is not nil.
func (_u *ReadinessPredictionUpdateOne) SetNillablePrepMinutes(v *int) *ReadinessPredictionUpdateOne {
	if v != nil {
		_u.SetPrepMinutes(*v)
	}
	return _u
}

// AddPrepMinutes adds value to the "prep_minutes" field.
func (_u *ReadinessPredictionUpdateOne) AddPrepMinutes(v int) *ReadinessPredictionUpdateOne {
	_u.mutation.AddPrepMinutes(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *ReadinessPredictionUpdateOne) SetGeneratedAt(v time.Time) *ReadinessPredictionUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// Mutation returns the ReadinessPredictionMutation object of the builder.
func (_u *ReadinessPredictionUpdateOne) Mutation() *ReadinessPredictionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReadinessPredictionUpdate builder.
func (_u *ReadinessPredictionUpdateOne) Where(ps ...predicate.ReadinessPrediction) *ReadinessPredictionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReadinessPredictionUpdateOne) Select(field string, fields ...string) *ReadinessPredictionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReadinessPrediction entity.
func (_u *ReadinessPredictionUpdateOne) Save(ctx context.Context) (*ReadinessPrediction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadinessPredictionUpdateOne) SaveX(ctx context.Context) *ReadinessPrediction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReadinessPredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadinessPredictionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReadinessPredictionUpdateOne) defaults() {
	if _, ok := _u.mutation.GeneratedAt(); !ok {
		v := readinessprediction.UpdateDefaultGeneratedAt()
		_u.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadinessPredictionUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := readinessprediction.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := readinessprediction.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PredictedScore(); ok {
		if err := readinessprediction.PredictedScoreValidator(v); err != nil {
			return &ValidationError{Name: "predicted_score", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.predicted_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := readinessprediction.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := readinessprediction.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := readinessprediction.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.practice_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrepMinutes(); ok {
		if err := readinessprediction.PrepMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_minutes", err: fmt.Errorf(`ent: validator failed for field "ReadinessPrediction.prep_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadinessPredictionUpdateOne) sqlSave(ctx context.Context) (_node *ReadinessPrediction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readinessprediction.Table, readinessprediction.Columns, sqlgraph.NewFieldSpec(readinessprediction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReadinessPrediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, readinessprediction.FieldID)
		for _, f := range fields {
			if !readinessprediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != readinessprediction.FieldID {
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
		_spec.SetField(readinessprediction.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(readinessprediction.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedScore(); ok {
		_spec.SetField(readinessprediction.FieldPredictedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPredictedScore(); ok {
		_spec.AddField(readinessprediction.FieldPredictedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(readinessprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(readinessprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(readinessprediction.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvgMastery(); ok {
		_spec.SetField(readinessprediction.FieldAvgMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgMastery(); ok {
		_spec.AddField(readinessprediction.FieldAvgMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentSuccessRate(); ok {
		_spec.SetField(readinessprediction.FieldRecentSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecentSuccessRate(); ok {
		_spec.AddField(readinessprediction.FieldRecentSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(readinessprediction.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(readinessprediction.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakObjectives(); ok {
		_spec.SetField(readinessprediction.FieldWeakObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, readinessprediction.FieldWeakObjectives, value)
		})
	}
	if _u.mutation.WeakObjectivesCleared() {
		_spec.ClearField(readinessprediction.FieldWeakObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(readinessprediction.FieldRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrepMinutes(); ok {
		_spec.SetField(readinessprediction.FieldPrepMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrepMinutes(); ok {
		_spec.AddField(readinessprediction.FieldPrepMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(readinessprediction.FieldGeneratedAt, field.TypeTime, value)
	}
	_node = &ReadinessPrediction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readinessprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
