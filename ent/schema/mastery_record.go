package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is the latest mastery state for one (learner, objective)
// pair. Written by the (external) practice-completion flow; the engine
// reads latest state only.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty().Immutable(),
		field.String("objective_id").NotEmpty().Immutable(),
		field.String("cell_code").NotEmpty().
			Comment("Taxonomy cell this objective is bound to"),
		field.Float("score").Min(0).Max(100).
			Comment("Proficiency estimate, 0-100"),
		field.Int("streak").NonNegative().Default(0).
			Comment("Consecutive qualifying practice results"),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "objective_id").Unique(),
		index.Fields("learner_id"),
	}
}
