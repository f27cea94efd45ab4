package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// QuestionEvent records one question-bank LLM request for audit and
// cost tracking.
type QuestionEvent struct {
	ent.Schema
}

func (QuestionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").NotEmpty(),
		field.String("model").NotEmpty(),
		field.String("purpose").Default(""),
		field.Int("input_tokens").Default(0),
		field.Int("output_tokens").Default(0),
		field.Int64("latency_ms").Default(0),
		field.Float("cost_usd").Default(0),
		field.Bool("success"),
		field.String("error_message").Optional(),
	}
}
