// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "target_objective_id", Type: field.TypeString},
		{Name: "target_cells", Type: field.TypeJSON},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "cell_code", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_learner_id_objective_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_learner_id_objective_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[2]},
			},
			{
				Name:    "practicesession_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[4]},
			},
		},
	}
	// QuestionEventsColumns holds the columns for the "question_events" table.
	QuestionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// QuestionEventsTable holds the schema information for the "question_events" table.
	QuestionEventsTable = &schema.Table{
		Name:       "question_events",
		Columns:    QuestionEventsColumns,
		PrimaryKey: []*schema.Column{QuestionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[1]},
			},
			{
				Name:    "questionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[2]},
			},
		},
	}
	// ReadinessChecksColumns holds the columns for the "readiness_checks" table.
	ReadinessChecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "check_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "time_limit_secs", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// ReadinessChecksTable holds the schema information for the "readiness_checks" table.
	ReadinessChecksTable = &schema.Table{
		Name:       "readiness_checks",
		Columns:    ReadinessChecksColumns,
		PrimaryKey: []*schema.Column{ReadinessChecksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "readinesscheck_learner_id_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{ReadinessChecksColumns[2], ReadinessChecksColumns[3]},
			},
			{
				Name:    "readinesscheck_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ReadinessChecksColumns[8]},
			},
		},
	}
	// ReadinessPredictionsColumns holds the columns for the "readiness_predictions" table.
	ReadinessPredictionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "predicted_score", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "level", Type: field.TypeString},
		{Name: "avg_mastery", Type: field.TypeFloat64},
		{Name: "recent_success_rate", Type: field.TypeFloat64},
		{Name: "practice_count", Type: field.TypeInt},
		{Name: "weak_objectives", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendation", Type: field.TypeString},
		{Name: "prep_minutes", Type: field.TypeInt, Default: 0},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// ReadinessPredictionsTable holds the schema information for the "readiness_predictions" table.
	ReadinessPredictionsTable = &schema.Table{
		Name:       "readiness_predictions",
		Columns:    ReadinessPredictionsColumns,
		PrimaryKey: []*schema.Column{ReadinessPredictionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "readinessprediction_learner_id_assessment_id",
				Unique:  true,
				Columns: []*schema.Column{ReadinessPredictionsColumns[1], ReadinessPredictionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		MasteryRecordsTable,
		PracticeSessionsTable,
		QuestionEventsTable,
		ReadinessChecksTable,
		ReadinessPredictionsTable,
	}
)

func init() {
}
