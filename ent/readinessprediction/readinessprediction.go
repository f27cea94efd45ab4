// Code generated by ent, DO NOT EDIT.

package readinessprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the readinessprediction type in the database.
	Label = "readiness_prediction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldPredictedScore holds the string denoting the predicted_score field in the database.
	FieldPredictedScore = "predicted_score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldAvgMastery holds the string denoting the avg_mastery field in the database.
	FieldAvgMastery = "avg_mastery"
	// FieldRecentSuccessRate holds the string denoting the recent_success_rate field in the database.
	FieldRecentSuccessRate = "recent_success_rate"
	// FieldPracticeCount holds the string denoting the practice_count field in the database.
	FieldPracticeCount = "practice_count"
	// FieldWeakObjectives holds the string denoting the weak_objectives field in the database.
	FieldWeakObjectives = "weak_objectives"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldPrepMinutes holds the string denoting the prep_minutes field in the database.
	FieldPrepMinutes = "prep_minutes"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// Table holds the table name of the readinessprediction in the database.
	Table = "readiness_predictions"
)

// Columns holds all SQL columns for readinessprediction fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldAssessmentID,
	FieldPredictedScore,
	FieldConfidence,
	FieldLevel,
	FieldAvgMastery,
	FieldRecentSuccessRate,
	FieldPracticeCount,
	FieldWeakObjectives,
	FieldRecommendation,
	FieldPrepMinutes,
	FieldGeneratedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
	// PredictedScoreValidator is a validator for the "predicted_score" field. It is called by the builders before save.
	PredictedScoreValidator func(float64) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	PracticeCountValidator func(int) error
	// DefaultPrepMinutes holds the default value on creation for the "prep_minutes" field.
	DefaultPrepMinutes int
	// PrepMinutesValidator is a validator for the "prep_minutes" field. It is called by the builders before save.
	PrepMinutesValidator func(int) error
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
	// UpdateDefaultGeneratedAt holds the default value on update for the "generated_at" field.
	UpdateDefaultGeneratedAt func() time.Time
)

// OrderOption defines the ordering options for the ReadinessPrediction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByPredictedScore orders the results by the predicted_score field.
func ByPredictedScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByAvgMastery orders the results by the avg_mastery field.
func ByAvgMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgMastery, opts...).ToFunc()
}

// ByRecentSuccessRate orders the results by the recent_success_rate field.
func ByRecentSuccessRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecentSuccessRate, opts...).ToFunc()
}

// ByPracticeCount orders the results by the practice_count field.
func ByPracticeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCount, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// ByPrepMinutes orders the results by the prep_minutes field.
func ByPrepMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrepMinutes, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}
