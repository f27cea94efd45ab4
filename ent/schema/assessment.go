package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Assessment is an upcoming graded assessment and the objective it targets.
// Rows are authored by the (external) course-management flow; the engine
// only reads them to resolve a prediction's target.
type Assessment struct {
	ent.Schema
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").Unique().NotEmpty().Immutable(),
		field.String("title").NotEmpty(),
		field.String("target_objective_id").NotEmpty(),
		field.Strings("target_cells").
			Comment("Taxonomy cell codes the assessment covers, e.g. [\"1A\", \"1B\"]"),
	}
}
