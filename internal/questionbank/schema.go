package questionbank

import "github.com/edforge/readypath/internal/llm"

// QuestionSetSchema defines the JSON schema for LLM question generation
// responses. The response is an object wrapping the question array so
// strict structured-output modes accept it.
var QuestionSetSchema = &llm.Schema{
	Name:        "check-questions",
	Description: "A set of multiple-choice diagnostic questions for a readiness check",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner, in plain ASCII text",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options where exactly one is correct",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct option, character-for-character",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A brief rationale for the correct answer",
						},
						"cell_code": map[string]any{
							"type":        "string",
							"description": "The taxonomy cell this question targets, e.g. \"2B\"",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Difficulty from 1 (easy) to 5 (hard)",
						},
					},
					"required":             []any{"text", "choices", "answer", "explanation", "cell_code", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
