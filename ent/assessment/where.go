// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"entgo.io/ent/dialect/sql"
	"github.com/edforge/readypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAssessmentID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTitle, v))
}

// TargetObjectiveID applies equality check predicate on the "target_objective_id" field. It's identical to TargetObjectiveIDEQ.
func TargetObjectiveID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTargetObjectiveID, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldAssessmentID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldTitle, v))
}

// TargetObjectiveIDEQ applies the EQ predicate on the "target_objective_id" field.
func TargetObjectiveIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDNEQ applies the NEQ predicate on the "target_objective_id" field.
func TargetObjectiveIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDIn applies the In predicate on the "target_objective_id" field.
func TargetObjectiveIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTargetObjectiveID, vs...))
}

// TargetObjectiveIDNotIn applies the NotIn predicate on the "target_objective_id" field.
func TargetObjectiveIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTargetObjectiveID, vs...))
}

// TargetObjectiveIDGT applies the GT predicate on the "target_objective_id" field.
func TargetObjectiveIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDGTE applies the GTE predicate on the "target_objective_id" field.
func TargetObjectiveIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDLT applies the LT predicate on the "target_objective_id" field.
func TargetObjectiveIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDLTE applies the LTE predicate on the "target_objective_id" field.
func TargetObjectiveIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDContains applies the Contains predicate on the "target_objective_id" field.
func TargetObjectiveIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDHasPrefix applies the HasPrefix predicate on the "target_objective_id" field.
func TargetObjectiveIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDHasSuffix applies the HasSuffix predicate on the "target_objective_id" field.
func TargetObjectiveIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDEqualFold applies the EqualFold predicate on the "target_objective_id" field.
func TargetObjectiveIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldTargetObjectiveID, v))
}

// TargetObjectiveIDContainsFold applies the ContainsFold predicate on the "target_objective_id" field.
func TargetObjectiveIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldTargetObjectiveID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
