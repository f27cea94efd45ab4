package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession is one completed practice attempt. Immutable once created.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty().Immutable(),
		field.String("objective_id").NotEmpty().Immutable(),
		field.Float("score").Min(0).Max(1).Immutable().
			Comment("Session score as a 0.0-1.0 fraction"),
		field.Time("timestamp").Default(time.Now).Immutable(),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "objective_id"),
		index.Fields("timestamp"),
	}
}
