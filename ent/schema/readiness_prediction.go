package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReadinessPrediction is the current prediction for one (learner, assessment)
// pair. Upserted on every prediction run; the unique index below is the
// conflict key, so a re-run replaces rather than duplicates.
type ReadinessPrediction struct {
	ent.Schema
}

func (ReadinessPrediction) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("assessment_id").NotEmpty(),
		field.Float("predicted_score").Min(0).Max(1).
			Comment("Predicted assessment score as a 0.0-1.0 fraction"),
		field.Float("confidence").Min(0).Max(1),
		field.String("level").NotEmpty().
			Comment("Categorical readiness: not_ready, needs_practice, almost_ready, ready"),
		field.Float("avg_mastery").
			Comment("Mean mastery score (0-100) across the target cells"),
		field.Float("recent_success_rate").
			Comment("Fraction of recent sessions scoring at or above the success floor"),
		field.Int("practice_count").NonNegative(),
		field.Strings("weak_objectives").Optional(),
		field.String("recommendation"),
		field.Int("prep_minutes").NonNegative().Default(0),
		field.Time("generated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ReadinessPrediction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "assessment_id").Unique(),
	}
}
