package questionbank

// Question is one generated multiple-choice diagnostic question.
type Question struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Choices contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Answer is the text of the correct option.
	Answer string

	// Explanation is a brief rationale shown after the learner answers.
	// Always present.
	Explanation string

	// CellCode is the taxonomy cell this question targets, e.g. "3C".
	CellCode string

	// Difficulty is the requested difficulty (1-5), echoed back by the
	// generator. Used for analytics, not for gating.
	Difficulty int
}

// GenerateInput holds all context needed to generate a question set.
type GenerateInput struct {
	// AssessmentTitle names the assessment the check prepares for.
	AssessmentTitle string

	// ObjectiveID is the assessment's target learning objective.
	ObjectiveID string

	// TargetCells are the taxonomy cell codes the questions must cover.
	// Questions are spread across these cells round-robin.
	TargetCells []string

	// Count is the number of questions to generate.
	Count int

	// Difficulty is the requested difficulty level (1-5).
	Difficulty int

	// WeakObjectives lists objectives the learner is weakest on, most
	// severe first. Included in the prompt to bias question selection.
	WeakObjectives []string
}
