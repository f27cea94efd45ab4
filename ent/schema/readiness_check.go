package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionData is the stored form of one diagnostic question on a
// readiness check configuration.
type QuestionData struct {
	Text        string   `json:"text"`
	Choices     []string `json:"choices,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	CellCode    string   `json:"cell_code,omitempty"`
	Difficulty  int      `json:"difficulty"`
}

// ReadinessCheck is a persisted diagnostic quiz configuration produced by
// the readiness-check orchestrator.
type ReadinessCheck struct {
	ent.Schema
}

func (ReadinessCheck) Fields() []ent.Field {
	return []ent.Field{
		field.String("check_id").Unique().NotEmpty().Immutable().
			Comment("Caller-visible UUID for the configuration"),
		field.String("learner_id").NotEmpty(),
		field.String("assessment_id").NotEmpty(),
		field.JSON("questions", []QuestionData{}),
		field.Int("difficulty").Range(1, 5),
		field.Int("time_limit_secs").NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("expires_at"),
	}
}

func (ReadinessCheck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "assessment_id"),
		index.Fields("expires_at"),
	}
}
