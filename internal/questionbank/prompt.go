package questionbank

import (
	"fmt"
	"strings"

	"github.com/edforge/readypath/internal/taxonomy"
)

const systemPrompt = `You are an assessment designer creating multiple-choice diagnostic questions for a learning platform.

Rules:
- Generate exactly the requested number of questions for the given learning objective and difficulty.
- Each question targets one of the listed taxonomy cells. Spread questions across the cells; do not cluster on one cell.
- Use plain ASCII text. The question text should be clear and self-contained.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misconceptions, not random values.
- The answer field must match the correct option character for character.
- The explanation should state why the correct option is right in one or two sentences.
- When weak areas are listed, prefer question angles that probe those areas.`

// buildUserMessage constructs the user message from GenerateInput.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Assessment: %s\n", input.AssessmentTitle)
	fmt.Fprintf(&b, "Learning objective: %s\n", input.ObjectiveID)
	fmt.Fprintf(&b, "Questions: %d\n", input.Count)
	fmt.Fprintf(&b, "Difficulty: %d (1 easiest, 5 hardest)\n", input.Difficulty)

	b.WriteString("\nTarget taxonomy cells:\n")
	b.WriteString(describeCells(input.TargetCells))

	if len(input.WeakObjectives) > 0 {
		b.WriteString("\nLearner's weakest areas, most severe first:\n")
		for i, id := range input.WeakObjectives {
			fmt.Fprintf(&b, "%d. %s\n", i+1, id)
		}
	}

	return b.String()
}

// describeCells lists the target cells with their names and example prompt
// stems so the model understands the cognitive demand of each cell.
func describeCells(codes []string) string {
	if len(codes) == 0 {
		return "Any cell of the grid\n"
	}

	var b strings.Builder
	for _, code := range codes {
		cell, err := taxonomy.GetCell(code)
		if err != nil {
			// Unknown codes are skipped here and rejected later by the
			// structural validator.
			continue
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", cell.Code, cell.Name, cell.ExamplePrompt)
	}
	return b.String()
}
