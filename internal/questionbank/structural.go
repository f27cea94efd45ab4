package questionbank

import (
	"github.com/edforge/readypath/internal/taxonomy"
)

// StructuralValidator checks that required fields are present, within
// length limits, and reference a known taxonomy cell.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text exceeds 500 characters",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	if !taxonomy.ValidCellCode(q.CellCode) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "unknown taxonomy cell " + q.CellCode,
			Retryable: true,
		}
	}
	if len(input.TargetCells) > 0 && !contains(input.TargetCells, q.CellCode) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "cell " + q.CellCode + " is outside the assessment's target cells",
			Retryable: true,
		}
	}
	return nil
}

// ChoiceValidator checks the multiple-choice contract: exactly 4
// distinct options with the answer among them.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choices" }

func (v *ChoiceValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if len(q.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "must have exactly 4 choices",
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(q.Choices))
	answerFound := false
	for _, c := range q.Choices {
		if c == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "empty choice",
				Retryable: true,
			}
		}
		if seen[c] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "duplicate choice " + c,
				Retryable: true,
			}
		}
		seen[c] = true
		if c == q.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer does not match any choice",
			Retryable: true,
		}
	}
	return nil
}

func contains(items []string, target string) bool {
	for _, it := range items {
		if it == target {
			return true
		}
	}
	return false
}
