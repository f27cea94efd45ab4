// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edforge/readypath/ent/readinessprediction"
)

// ReadinessPrediction is the model entity for the ReadinessPrediction schema.
type ReadinessPrediction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// AssessmentID holds the value of the "assessment_id" field.
	AssessmentID string `json:"assessment_id,omitempty"`
	// Predicted assessment score as a 0.0-1.0 fraction
	PredictedScore float64 `json:"predicted_score,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Categorical readiness: not_ready, needs_practice, almost_ready, ready
	Level string `json:"level,omitempty"`
	// Mean mastery score (0-100) across the target cells
	AvgMastery float64 `json:"avg_mastery,omitempty"`
	// Fraction of recent sessions scoring at or above the success floor
	RecentSuccessRate float64 `json:"recent_success_rate,omitempty"`
	// PracticeCount holds the value of the "practice_count" field.
	PracticeCount int `json:"practice_count,omitempty"`
	// WeakObjectives holds the value of the "weak_objectives" field.
	WeakObjectives []string `json:"weak_objectives,omitempty"`
	// Recommendation holds the value of the "recommendation" field.
	Recommendation string `json:"recommendation,omitempty"`
	// PrepMinutes holds the value of the "prep_minutes" field.
	PrepMinutes int `json:"prep_minutes,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt  time.Time `json:"generated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReadinessPrediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case readinessprediction.FieldWeakObjectives:
			values[i] = new([]byte)
		case readinessprediction.FieldPredictedScore, readinessprediction.FieldConfidence, readinessprediction.FieldAvgMastery, readinessprediction.FieldRecentSuccessRate:
			values[i] = new(sql.NullFloat64)
		case readinessprediction.FieldID, readinessprediction.FieldPracticeCount, readinessprediction.FieldPrepMinutes:
			values[i] = new(sql.NullInt64)
		case readinessprediction.FieldLearnerID, readinessprediction.FieldAssessmentID, readinessprediction.FieldLevel, readinessprediction.FieldRecommendation:
			values[i] = new(sql.NullString)
		case readinessprediction.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReadinessPrediction fields.
func (_m *ReadinessPrediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case readinessprediction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case readinessprediction.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case readinessprediction.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case readinessprediction.FieldPredictedScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_score", values[i])
			} else if value.Valid {
				_m.PredictedScore = value.Float64
			}
		case readinessprediction.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case readinessprediction.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case readinessprediction.FieldAvgMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_mastery", values[i])
			} else if value.Valid {
				_m.AvgMastery = value.Float64
			}
		case readinessprediction.FieldRecentSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recent_success_rate", values[i])
			} else if value.Valid {
				_m.RecentSuccessRate = value.Float64
			}
		case readinessprediction.FieldPracticeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_count", values[i])
			} else if value.Valid {
				_m.PracticeCount = int(value.Int64)
			}
		case readinessprediction.FieldWeakObjectives:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_objectives", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakObjectives); err != nil {
					return fmt.Errorf("unmarshal field weak_objectives: %w", err)
				}
			}
		case readinessprediction.FieldRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation", values[i])
			} else if value.Valid {
				_m.Recommendation = value.String
			}
		case readinessprediction.FieldPrepMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prep_minutes", values[i])
			} else if value.Valid {
				_m.PrepMinutes = int(value.Int64)
			}
		case readinessprediction.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReadinessPrediction.
// This includes values selected through modifiers, order, etc.
func (_m *ReadinessPrediction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReadinessPrediction.
// Note that you need to call ReadinessPrediction.Unwrap() before calling this method if this ReadinessPrediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReadinessPrediction) Update() *ReadinessPredictionUpdateOne {
	return NewReadinessPredictionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReadinessPrediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReadinessPrediction) Unwrap() *ReadinessPrediction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReadinessPrediction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReadinessPrediction) String() string {
	var builder strings.Builder
	builder.WriteString("ReadinessPrediction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("predicted_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PredictedScore))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("avg_mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgMastery))
	builder.WriteString(", ")
	builder.WriteString("recent_success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentSuccessRate))
	builder.WriteString(", ")
	builder.WriteString("practice_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCount))
	builder.WriteString(", ")
	builder.WriteString("weak_objectives=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakObjectives))
	builder.WriteString(", ")
	builder.WriteString("recommendation=")
	builder.WriteString(_m.Recommendation)
	builder.WriteString(", ")
	builder.WriteString("prep_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrepMinutes))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReadinessPredictions is a parsable slice of ReadinessPrediction.
type ReadinessPredictions []*ReadinessPrediction
