// Code generated by ent, DO NOT EDIT.

package readinessprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edforge/readypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldLearnerID, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldAssessmentID, v))
}

// PredictedScore applies equality check predicate on the "predicted_score" field. It's identical to PredictedScoreEQ.
func PredictedScore(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldPredictedScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldConfidence, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldLevel, v))
}

// AvgMastery applies equality check predicate on the "avg_mastery" field. It's identical to AvgMasteryEQ.
func AvgMastery(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldAvgMastery, v))
}

// RecentSuccessRate applies equality check predicate on the "recent_success_rate" field. It's identical to RecentSuccessRateEQ.
func RecentSuccessRate(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldRecentSuccessRate, v))
}

// PracticeCount applies equality check predicate on the "practice_count" field. It's identical to PracticeCountEQ.
func PracticeCount(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldPracticeCount, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldRecommendation, v))
}

// PrepMinutes applies equality check predicate on the "prep_minutes" field. It's identical to PrepMinutesEQ.
func PrepMinutes(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldPrepMinutes, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldGeneratedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldContainsFold(FieldLearnerID, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldContainsFold(FieldAssessmentID, v))
}

// PredictedScoreEQ applies the EQ predicate on the "predicted_score" field.
func PredictedScoreEQ(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldPredictedScore, v))
}

// PredictedScoreNEQ applies the NEQ predicate on the "predicted_score" field.
func PredictedScoreNEQ(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldPredictedScore, v))
}

// PredictedScoreIn applies the In predicate on the "predicted_score" field.
func PredictedScoreIn(vs ...float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldPredictedScore, vs...))
}

// PredictedScoreNotIn applies the NotIn predicate on the "predicted_score" field.
func PredictedScoreNotIn(vs ...float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldPredictedScore, vs...))
}

// PredictedScoreGT applies the GT predicate on the "predicted_score" field.
func PredictedScoreGT(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldPredictedScore, v))
}

// PredictedScoreGTE applies the GTE predicate on the "predicted_score" field.
func PredictedScoreGTE(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldPredictedScore, v))
}

// PredictedScoreLT applies the LT predicate on the "predicted_score" field.
func PredictedScoreLT(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldPredictedScore, v))
}

// PredictedScoreLTE applies the LTE predicate on the "predicted_score" field.
func PredictedScoreLTE(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldPredictedScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldConfidence, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldContainsFold(FieldLevel, v))
}

// AvgMasteryEQ applies the EQ predicate on the "avg_mastery" field.
func AvgMasteryEQ(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldAvgMastery, v))
}

// AvgMasteryNEQ applies the NEQ predicate on the "avg_mastery" field.
func AvgMasteryNEQ(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldAvgMastery, v))
}

// AvgMasteryIn applies the In predicate on the "avg_mastery" field.
func AvgMasteryIn(vs ...float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldAvgMastery, vs...))
}

// AvgMasteryNotIn applies the NotIn predicate on the "avg_mastery" field.
func AvgMasteryNotIn(vs ...float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldAvgMastery, vs...))
}

// AvgMasteryGT applies the GT predicate on the "avg_mastery" field.
func AvgMasteryGT(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldAvgMastery, v))
}

// AvgMasteryGTE applies the GTE predicate on the "avg_mastery" field.
func AvgMasteryGTE(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldAvgMastery, v))
}

// AvgMasteryLT applies the LT predicate on the "avg_mastery" field.
func AvgMasteryLT(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldAvgMastery, v))
}

// AvgMasteryLTE applies the LTE predicate on the "avg_mastery" field.
func AvgMasteryLTE(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldAvgMastery, v))
}

// RecentSuccessRateEQ applies the EQ predicate on the "recent_success_rate" field.
func RecentSuccessRateEQ(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldRecentSuccessRate, v))
}

// RecentSuccessRateNEQ applies the NEQ predicate on the "recent_success_rate" field.
func RecentSuccessRateNEQ(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldRecentSuccessRate, v))
}

// RecentSuccessRateIn applies the In predicate on the "recent_success_rate" field.
func RecentSuccessRateIn(vs ...float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldRecentSuccessRate, vs...))
}

// RecentSuccessRateNotIn applies the NotIn predicate on the "recent_success_rate" field.
func RecentSuccessRateNotIn(vs ...float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldRecentSuccessRate, vs...))
}

// RecentSuccessRateGT applies the GT predicate on the "recent_success_rate" field.
func RecentSuccessRateGT(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldRecentSuccessRate, v))
}

// RecentSuccessRateGTE applies the GTE predicate on the "recent_success_rate" field.
func RecentSuccessRateGTE(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldRecentSuccessRate, v))
}

// RecentSuccessRateLT applies the LT predicate on the "recent_success_rate" field.
func RecentSuccessRateLT(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldRecentSuccessRate, v))
}

// RecentSuccessRateLTE applies the LTE predicate on the "recent_success_rate" field.
func RecentSuccessRateLTE(v float64) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldRecentSuccessRate, v))
}

// PracticeCountEQ applies the EQ predicate on the "practice_count" field.
func PracticeCountEQ(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldPracticeCount, v))
}

// PracticeCountNEQ applies the NEQ predicate on the "practice_count" field.
func PracticeCountNEQ(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldPracticeCount, v))
}

// PracticeCountIn applies the In predicate on the "practice_count" field.
func PracticeCountIn(vs ...int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldPracticeCount, vs...))
}

// PracticeCountNotIn applies the NotIn predicate on the "practice_count" field.
func PracticeCountNotIn(vs ...int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldPracticeCount, vs...))
}

// PracticeCountGT applies the GT predicate on the "practice_count" field.
func PracticeCountGT(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldPracticeCount, v))
}

// PracticeCountGTE applies the GTE predicate on the "practice_count" field.
func PracticeCountGTE(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldPracticeCount, v))
}

// PracticeCountLT applies the LT predicate on the "practice_count" field.
func PracticeCountLT(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldPracticeCount, v))
}

// PracticeCountLTE applies the LTE predicate on the "practice_count" field.
func PracticeCountLTE(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldPracticeCount, v))
}

// WeakObjectivesIsNil applies the IsNil predicate on the "weak_objectives" field.
func WeakObjectivesIsNil() predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIsNull(FieldWeakObjectives))
}

// WeakObjectivesNotNil applies the NotNil predicate on the "weak_objectives" field.
func WeakObjectivesNotNil() predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotNull(FieldWeakObjectives))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldContainsFold(FieldRecommendation, v))
}

// PrepMinutesEQ applies the EQ predicate on the "prep_minutes" field.
func PrepMinutesEQ(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldPrepMinutes, v))
}

// PrepMinutesNEQ applies the NEQ predicate on the "prep_minutes" field.
func PrepMinutesNEQ(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldPrepMinutes, v))
}

// PrepMinutesIn applies the In predicate on the "prep_minutes" field.
func PrepMinutesIn(vs ...int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldPrepMinutes, vs...))
}

// PrepMinutesNotIn applies the NotIn predicate on the "prep_minutes" field.
func PrepMinutesNotIn(vs ...int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldPrepMinutes, vs...))
}

// PrepMinutesGT applies the GT predicate on the "prep_minutes" field.
func PrepMinutesGT(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldPrepMinutes, v))
}

// PrepMinutesGTE applies the GTE predicate on the "prep_minutes" field.
func PrepMinutesGTE(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldPrepMinutes, v))
}

// PrepMinutesLT applies the LT predicate on the "prep_minutes" field.
func PrepMinutesLT(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldPrepMinutes, v))
}

// PrepMinutesLTE applies the LTE predicate on the "prep_minutes" field.
func PrepMinutesLTE(v int) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldPrepMinutes, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.FieldLTE(FieldGeneratedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReadinessPrediction) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReadinessPrediction) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReadinessPrediction) predicate.ReadinessPrediction {
	return predicate.ReadinessPrediction(sql.NotPredicates(p))
}
