// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessment type in the database.
	Label = "assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTargetObjectiveID holds the string denoting the target_objective_id field in the database.
	FieldTargetObjectiveID = "target_objective_id"
	// FieldTargetCells holds the string denoting the target_cells field in the database.
	FieldTargetCells = "target_cells"
	// Table holds the table name of the assessment in the database.
	Table = "assessments"
)

// Columns holds all SQL columns for assessment fields.
var Columns = []string{
	FieldID,
	FieldAssessmentID,
	FieldTitle,
	FieldTargetObjectiveID,
	FieldTargetCells,
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
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// TargetObjectiveIDValidator is a validator for the "target_objective_id" field. It is called by the builders before save.
	TargetObjectiveIDValidator func(string) error
)

// OrderOption defines the ordering options for the Assessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByTargetObjectiveID orders the results by the target_objective_id field.
func ByTargetObjectiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetObjectiveID, opts...).ToFunc()
}
