package questionbank

import (
	"context"
	"fmt"

	"github.com/edforge/readypath/internal/taxonomy"
)

// StaticBank is a deterministic Bank that builds questions from the
// taxonomy grid's example prompts. Used in tests and when no LLM
// provider is configured.
type StaticBank struct{}

// NewStaticBank creates a StaticBank.
func NewStaticBank() *StaticBank {
	return &StaticBank{}
}

// Generate produces Count placeholder questions spread round-robin over
// the target cells.
func (s *StaticBank) Generate(_ context.Context, input GenerateInput) ([]Question, error) {
	if input.Count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", input.Count)
	}

	cells := input.TargetCells
	if len(cells) == 0 {
		for _, c := range taxonomy.AllCells() {
			cells = append(cells, c.Code)
		}
	}

	questions := make([]Question, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		code := cells[i%len(cells)]
		cell, err := taxonomy.GetCell(code)
		if err != nil {
			return nil, err
		}

		answer := fmt.Sprintf("The %s response", cell.Name)
		questions = append(questions, Question{
			Text: fmt.Sprintf("Q%d (%s): %s for objective %s?",
				i+1, cell.Name, cell.ExamplePrompt, input.ObjectiveID),
			Choices: []string{
				answer,
				"A plausible but incorrect response",
				"A response reflecting a common misconception",
				"An unrelated response",
			},
			Answer:      answer,
			Explanation: fmt.Sprintf("This question checks the %s cell of the grid.", cell.Name),
			CellCode:    code,
			Difficulty:  input.Difficulty,
		})
	}
	return questions, nil
}
