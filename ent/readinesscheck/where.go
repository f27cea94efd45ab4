// Code generated by ent, DO NOT EDIT.

package readinesscheck

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edforge/readypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLTE(FieldID, id))
}

// CheckID applies equality check predicate on the "check_id" field. It's identical to CheckIDEQ.
func CheckID(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldCheckID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldLearnerID, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldAssessmentID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldDifficulty, v))
}

// TimeLimitSecs applies equality check predicate on the "time_limit_secs" field. It's identical to TimeLimitSecsEQ.
func TimeLimitSecs(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldTimeLimitSecs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldExpiresAt, v))
}

// CheckIDEQ applies the EQ predicate on the "check_id" field.
func CheckIDEQ(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldCheckID, v))
}

// CheckIDNEQ applies the NEQ predicate on the "check_id" field.
func CheckIDNEQ(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNEQ(FieldCheckID, v))
}

// CheckIDIn applies the In predicate on the "check_id" field.
func CheckIDIn(vs ...string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldIn(FieldCheckID, vs...))
}

// CheckIDNotIn applies the NotIn predicate on the "check_id" field.
func CheckIDNotIn(vs ...string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNotIn(FieldCheckID, vs...))
}

// CheckIDGT applies the GT predicate on the "check_id" field.
func CheckIDGT(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGT(FieldCheckID, v))
}

// CheckIDGTE applies the GTE predicate on the "check_id" field.
func CheckIDGTE(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGTE(FieldCheckID, v))
}

// CheckIDLT applies the LT predicate on the "check_id" field.
func CheckIDLT(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLT(FieldCheckID, v))
}

// CheckIDLTE applies the LTE predicate on the "check_id" field.
func CheckIDLTE(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLTE(FieldCheckID, v))
}

// CheckIDContains applies the Contains predicate on the "check_id" field.
func CheckIDContains(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldContains(FieldCheckID, v))
}

// CheckIDHasPrefix applies the HasPrefix predicate on the "check_id" field.
func CheckIDHasPrefix(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldHasPrefix(FieldCheckID, v))
}

// CheckIDHasSuffix applies the HasSuffix predicate on the "check_id" field.
func CheckIDHasSuffix(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldHasSuffix(FieldCheckID, v))
}

// CheckIDEqualFold applies the EqualFold predicate on the "check_id" field.
func CheckIDEqualFold(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEqualFold(FieldCheckID, v))
}

// CheckIDContainsFold applies the ContainsFold predicate on the "check_id" field.
func CheckIDContainsFold(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldContainsFold(FieldCheckID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldContainsFold(FieldLearnerID, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldContainsFold(FieldAssessmentID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLTE(FieldDifficulty, v))
}

// TimeLimitSecsEQ applies the EQ predicate on the "time_limit_secs" field.
func TimeLimitSecsEQ(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldTimeLimitSecs, v))
}

// TimeLimitSecsNEQ applies the NEQ predicate on the "time_limit_secs" field.
func TimeLimitSecsNEQ(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNEQ(FieldTimeLimitSecs, v))
}

// TimeLimitSecsIn applies the In predicate on the "time_limit_secs" field.
func TimeLimitSecsIn(vs ...int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldIn(FieldTimeLimitSecs, vs...))
}

// TimeLimitSecsNotIn applies the NotIn predicate on the "time_limit_secs" field.
func TimeLimitSecsNotIn(vs ...int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNotIn(FieldTimeLimitSecs, vs...))
}

// TimeLimitSecsGT applies the GT predicate on the "time_limit_secs" field.
func TimeLimitSecsGT(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGT(FieldTimeLimitSecs, v))
}

// TimeLimitSecsGTE applies the GTE predicate on the "time_limit_secs" field.
func TimeLimitSecsGTE(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGTE(FieldTimeLimitSecs, v))
}

// TimeLimitSecsLT applies the LT predicate on the "time_limit_secs" field.
func TimeLimitSecsLT(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLT(FieldTimeLimitSecs, v))
}

// TimeLimitSecsLTE applies the LTE predicate on the "time_limit_secs" field.
func TimeLimitSecsLTE(v int) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLTE(FieldTimeLimitSecs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReadinessCheck) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReadinessCheck) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReadinessCheck) predicate.ReadinessCheck {
	return predicate.ReadinessCheck(sql.NotPredicates(p))
}
